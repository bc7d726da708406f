// File path: internal/kb/sources.go
package kb

import (
	"fmt"
	"io"
	"os"
)

// OpenFunc supplies the raw bytes of a dataset. Production sources read
// from disk via FileOpener; tests inject in-memory readers.
type OpenFunc func() (io.ReadCloser, error)

// FileOpener returns an OpenFunc reading the file at path.
func FileOpener(path string) OpenFunc {
	return func() (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		return f, nil
	}
}

func loadRows(open OpenFunc) ([]csvRow, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return readCSVRows(rc)
}
