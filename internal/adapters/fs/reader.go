// Package fs implements filesystem access for the rewriter.
package fs

import (
	"io"
	"os"

	"go.trai.ch/fixdep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileReader = (*Reader)(nil)

// Reader reads whole files into memory. Open, stat and read failures are all
// fatal to a run; the error carries the path and the underlying system error.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile returns the full contents of the file at path.
func (r *Reader) ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	info, err := f.Stat()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return buf, nil
}
