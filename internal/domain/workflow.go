// Package domain implements the schemafix repair: it loads a SQL dump, strips
// the rating and rating_count columns from partner_products INSERT
// statements and writes the result back in place.
package domain

import (
	"fmt"

	"github.com/mouse-blink/schemafix/internal/adapter"
	"github.com/mouse-blink/schemafix/internal/controller"
	m "github.com/mouse-blink/schemafix/internal/model"
)

// DefaultTarget is the file repaired when no other path is given.
const DefaultTarget m.Path = "ALL_MIGRATIONS_AND_DATA.sql"

// FixArgs holds the arguments for a single fix run.
type FixArgs struct {
	Target m.Path
	Stats  bool
}

// Workflow runs the load, rewrite, write and report steps in order.
type Workflow interface {
	Fix(args FixArgs) error
}

type workflow struct {
	files    adapter.SQLFileAdapter
	rewriter Rewriter
	ui       controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(files adapter.SQLFileAdapter, rewriter Rewriter, ui controller.UI) Workflow {
	return &workflow{
		files:    files,
		rewriter: rewriter,
		ui:       ui,
	}
}

// Fix repairs args.Target in place. A load or write failure stops the run
// before anything is reported; finding no statements is not an error and
// the file is still rewritten.
func (w *workflow) Fix(args FixArgs) error {
	target := args.Target
	if target == "" {
		target = DefaultTarget
	}

	content, err := w.files.ReadFile(target)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", target, err)
	}

	doc := m.Document{Path: target, Content: content}

	fixed, summary := w.rewriter.Rewrite(doc.Content)

	if err := w.files.WriteFile(doc.Path, fixed); err != nil {
		return fmt.Errorf("failed to write %s: %w", doc.Path, err)
	}

	if err := w.ui.DisplayFixed(); err != nil {
		return err
	}

	if args.Stats {
		return w.ui.DisplayStats(summary)
	}

	return nil
}
