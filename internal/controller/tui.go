package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/schemafix/internal/model"
	"golang.org/x/term"
)

const maxRuleWidth = 60

// TUI implements UI with lipgloss styling for interactive terminals.
type TUI struct {
	output io.Writer
	width  int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output, width: maxRuleWidth}

	if f, ok := output.(*os.File); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 && width < maxRuleWidth {
			t.width = width
		}
	}

	return t
}

// DisplayFixed prints the confirmation lines, styled.
func (t *TUI) DisplayFixed() error {
	fixedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true)
	removedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	_, err := fmt.Fprintf(t.output, "%s\n%s\n",
		fixedStyle.Render(FixedMessage),
		removedStyle.Render(RemovedMessage),
	)

	return err
}

// DisplayStats prints a rule sized to the terminal followed by the table.
func (t *TUI) DisplayStats(summary m.FixSummary) error {
	ruleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	if _, err := fmt.Fprintln(t.output, ruleStyle.Render(strings.Repeat("─", t.width))); err != nil {
		return err
	}

	return renderStats(t.output, summary)
}
