package source

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Options tunes how a table file is read.
type Options struct {
	// Sheet selects the XLSX worksheet by name. Empty means the first sheet.
	Sheet string
	// Delimiter for CSV. If 0, picked from the extension (',' or '\t').
	Delimiter rune
}

// Reader loads a tabular file into rows of cells, header row first.
type Reader interface {
	CanRead(filename string) bool
	ReadRows(path string, opt Options) ([][]string, error)
}

var registry []Reader

// Register adds a reader implementation to the registry.
func Register(r Reader) {
	registry = append(registry, r)
}

// ReadFile selects a reader based on filename and returns every row.
func ReadFile(path string, opt Options) ([][]string, error) {
	for _, r := range registry {
		if r.CanRead(path) {
			return r.ReadRows(path, opt)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(path))
}

func init() {
	Register(csvReader{})
	Register(xlsxReader{})
}

// ErrUnsupported indicates a table format is not supported.
var ErrUnsupported = errors.New("unsupported table format")
