// Package adapter contains the infrastructure adapters used by schemafix.
package adapter

import (
	"io"
	"os"

	m "github.com/mouse-blink/schemafix/internal/model"
)

const sqlFilePerm os.FileMode = 0o644

// SQLFileAdapter abstracts the file access the domain layer needs to repair
// a SQL file in place. It hides direct `os` access so the workflow can be
// tested without touching the disk.
type SQLFileAdapter interface {
	// ReadFile loads the whole file at path as text.
	ReadFile(path m.Path) (string, error)

	// WriteFile truncates the file at path and writes content to it.
	// No backup of the previous content is kept.
	WriteFile(path m.Path, content string) error
}

// LocalSQLFileAdapter is the os-backed SQLFileAdapter.
type LocalSQLFileAdapter struct{}

// NewLocalSQLFileAdapter constructs a LocalSQLFileAdapter.
func NewLocalSQLFileAdapter() *LocalSQLFileAdapter {
	return &LocalSQLFileAdapter{}
}

// ReadFile opens path, reads all of it and closes it on every exit path.
func (a *LocalSQLFileAdapter) ReadFile(path m.Path) (string, error) {
	// #nosec G304 - path is the operator-selected dump file
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return string(content), nil
}

// WriteFile truncates path and writes content in a single call.
func (a *LocalSQLFileAdapter) WriteFile(path m.Path, content string) (err error) {
	// #nosec G304 - path is the operator-selected dump file
	f, err := os.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, sqlFilePerm)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.WriteString(f, content)

	return err
}
