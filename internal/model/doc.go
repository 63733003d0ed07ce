// Package model holds the plain data types shared by the schemafix layers:
// the document being repaired, the statements matched inside it and the
// summary of what was changed.
package model
