// Package extract turns input files into plain text for the reading engine.
// Formats register themselves by extension; anything unrecognized falls back
// to a plain-text read. The fallback is deliberate: it lets the tool read
// extensionless notes and logs, at the cost of happily tokenizing binary
// garbage into nonsense words.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format defines a file format reader for extracting text.
type Format interface {
	Name() string
	Extensions() []string
	Extract(filename string) (string, error)
}

// ExtractionError reports a failed extraction. The session keeps its prior
// state when one is returned; the user can retry with another file.
type ExtractionError struct {
	File string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.File, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

var registry []Format

// Register adds a format reader to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

// Text extracts text from a file, dispatching on the file extension to a
// registered format, or reading the file as plain text when no format
// claims the extension. Failures are wrapped in *ExtractionError.
func Text(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				text, err := f.Extract(filename)
				if err != nil {
					return "", &ExtractionError{File: filename, Err: err}
				}
				return text, nil
			}
		}
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", &ExtractionError{File: filename, Err: err}
	}
	return string(data), nil
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	return out
}
