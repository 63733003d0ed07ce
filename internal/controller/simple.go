package controller

import (
	"fmt"

	m "github.com/mouse-blink/schemafix/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI by writing plain text to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayFixed prints the confirmation lines.
func (s *SimpleUI) DisplayFixed() error {
	s.printf("%s\n", FixedMessage)
	s.printf("%s\n", RemovedMessage)

	return nil
}

// DisplayStats prints the per-statement table.
func (s *SimpleUI) DisplayStats(summary m.FixSummary) error {
	s.printf("\n")

	return renderStats(s.cmd.OutOrStdout(), summary)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
