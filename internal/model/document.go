package model

// Path represents a file system path.
type Path string

// Document is the full text of a SQL file, read once and written once.
type Document struct {
	Path    Path
	Content string
}

// InsertBlock is a single matched partner_products INSERT statement.
// Start and End are byte offsets into the Document content.
type InsertBlock struct {
	Start     int
	End       int
	Original  string
	Rewritten string
}
