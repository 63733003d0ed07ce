package model

// BlockChange records what the rewriter did to one InsertBlock.
type BlockChange struct {
	Index int
	// Line is the 1-based line on which the statement starts.
	Line           int
	ColumnsRemoved int
	LinesDropped   int
}

// FixSummary collects per-block changes for a whole document.
type FixSummary struct {
	Blocks []BlockChange
}

// Matched returns the number of INSERT statements that were rewritten.
func (s FixSummary) Matched() int {
	return len(s.Blocks)
}

// ColumnsRemoved returns the total number of column tokens removed.
func (s FixSummary) ColumnsRemoved() int {
	total := 0
	for _, b := range s.Blocks {
		total += b.ColumnsRemoved
	}

	return total
}

// LinesDropped returns the total number of lines dropped by the line filter.
func (s FixSummary) LinesDropped() int {
	total := 0
	for _, b := range s.Blocks {
		total += b.LinesDropped
	}

	return total
}
