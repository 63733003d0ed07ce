package controller

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	m "github.com/mouse-blink/schemafix/internal/model"
	"github.com/olekukonko/tablewriter"
)

const noStatementsMessage = "No partner_products INSERT statements found"

func renderStats(w io.Writer, summary m.FixSummary) error {
	if summary.Matched() == 0 {
		_, err := fmt.Fprintln(w, noStatementsMessage)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Statement", "Line", "Columns removed", "Lines dropped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, block := range summary.Blocks {
		table.Append([]string{
			fmt.Sprintf("#%d", block.Index+1),
			strconv.Itoa(block.Line),
			strconv.Itoa(block.ColumnsRemoved),
			strconv.Itoa(block.LinesDropped),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", summary.Matched()),
		"",
		strconv.Itoa(summary.ColumnsRemoved()),
		strconv.Itoa(summary.LinesDropped()),
	})

	table.Render()

	_, err := io.Copy(w, &tableBuffer)

	return err
}
