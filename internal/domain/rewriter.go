package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/schemafix/internal/model"
)

const (
	ratingToken      = "rating,"
	ratingCountToken = "rating_count,"
)

var (
	// insertPattern matches a partner_products INSERT statement. The negated
	// classes also match newlines, so pretty-printed statements are found.
	insertPattern = regexp.MustCompile(`INSERT INTO partner_products \(([^)]+)\) VALUES \(([^)]+)\);`)

	// RE2's \s omits \v, so the whitespace class is spelled out.
	ratingColumn      = regexp.MustCompile(`,?[\t\n\v\f\r ]*rating,`)
	ratingCountColumn = regexp.MustCompile(`,?[\t\n\v\f\r ]*rating_count,`)

	// bareNumber matches a line holding only an integer or decimal literal
	// with an optional trailing comma.
	bareNumber = regexp.MustCompile(`^[\t\n\v\f\r ]*\d+\.?\d*,?[\t\n\v\f\r ]*$`)
)

// Rewriter removes the rating and rating_count columns from partner_products
// INSERT statements.
type Rewriter interface {
	// Rewrite returns content with every matched statement rewritten and a
	// summary of the changes. Text outside matched statements is untouched.
	Rewrite(content string) (string, m.FixSummary)
}

type rewriter struct{}

// NewRewriter creates a Rewriter.
func NewRewriter() Rewriter {
	return &rewriter{}
}

func (r *rewriter) Rewrite(content string) (string, m.FixSummary) {
	summary := m.FixSummary{}

	locs := insertPattern.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return content, summary
	}

	var out strings.Builder

	out.Grow(len(content))

	last := 0
	line := 1

	for i, loc := range locs {
		line += strings.Count(content[last:loc[0]], "\n")

		block, change := RewriteBlock(m.InsertBlock{
			Start:    loc[0],
			End:      loc[1],
			Original: content[loc[0]:loc[1]],
		})
		change.Index = i
		change.Line = line

		out.WriteString(content[last:loc[0]])
		out.WriteString(block.Rewritten)

		line += strings.Count(block.Original, "\n")
		last = loc[1]

		summary.Blocks = append(summary.Blocks, change)
	}

	out.WriteString(content[last:])

	return out.String(), summary
}

// RewriteBlock strips the rating and rating_count column tokens from the
// block, then runs the line filter over the result.
func RewriteBlock(block m.InsertBlock) (m.InsertBlock, m.BlockChange) {
	text := block.Original
	change := m.BlockChange{}

	change.ColumnsRemoved += len(ratingColumn.FindAllStringIndex(text, -1))
	text = ratingColumn.ReplaceAllLiteralString(text, "")

	change.ColumnsRemoved += len(ratingCountColumn.FindAllStringIndex(text, -1))
	text = ratingCountColumn.ReplaceAllLiteralString(text, "")

	lines := strings.Split(text, "\n")
	kept := FilterLines(lines)
	change.LinesDropped = len(lines) - len(kept)

	block.Rewritten = strings.Join(kept, "\n")

	return block, change
}

// FilterLines drops lines that declare a removed column, and the line right
// after such a declaration when it holds only a numeric literal.
//
// Only the immediately following line is considered. A value that sits on
// the same line as its column, or two or more lines away, is kept, which
// leaves the column and value lists out of step.
func FilterLines(lines []string) []string {
	kept := make([]string, 0, len(lines))

	for i, line := range lines {
		if declaresRemovedColumn(line) {
			continue
		}

		if i > 0 && declaresRemovedColumn(lines[i-1]) && bareNumber.MatchString(line) {
			continue
		}

		kept = append(kept, line)
	}

	return kept
}

func declaresRemovedColumn(line string) bool {
	return strings.Contains(line, ratingToken) || strings.Contains(line, ratingCountToken)
}
