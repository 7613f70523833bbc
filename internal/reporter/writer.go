package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// IndexFileName is the name of the artifact written into the scanned directory
const IndexFileName = "index.json"

// WriteError is returned when the index cannot be written
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", filepath.Base(e.Path), e.Err)
}

// Unwrap returns the underlying error
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Encode writes idx as indented JSON. Non-ASCII text and HTML characters
// are written literally.
func Encode(w io.Writer, idx *Index) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(idx)
}

// WriteIndex writes idx to index.json inside dir and returns the output path.
// The document goes to a temporary file first and is renamed into place, so
// an existing index is either fully replaced or left untouched.
func WriteIndex(dir string, idx *Index) (string, error) {
	outputPath := filepath.Join(dir, IndexFileName)

	tmp, err := os.CreateTemp(dir, "."+IndexFileName+"-*.tmp")
	if err != nil {
		return outputPath, &WriteError{Path: outputPath, Err: err}
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := Encode(tmp, idx); err != nil {
		return outputPath, &WriteError{Path: outputPath, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return outputPath, &WriteError{Path: outputPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return outputPath, &WriteError{Path: outputPath, Err: err}
	}
	// CreateTemp uses 0600
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return outputPath, &WriteError{Path: outputPath, Err: err}
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		return outputPath, &WriteError{Path: outputPath, Err: err}
	}

	committed = true
	return outputPath, nil
}
