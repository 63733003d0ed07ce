// Package controller provides output adapters for reporting schemafix results.
package controller

import (
	m "github.com/mouse-blink/schemafix/internal/model"
)

// Confirmation lines printed after a successful fix.
const (
	FixedMessage   = "✅ Fixed partner_products INSERT statements"
	RemovedMessage = "Removed: rating, rating_count columns and their values"
)

// UI defines the interface for reporting the outcome of a fix.
// Implementations can use different output methods (simple text, styled terminal).
type UI interface {
	// DisplayFixed prints the fixed two-line confirmation.
	DisplayFixed() error
	// DisplayStats prints a per-statement breakdown of the changes.
	DisplayStats(summary m.FixSummary) error
}
