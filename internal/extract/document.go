package extract

import (
	"fmt"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/docx"
	"github.com/tsawler/tabula/reader"
)

// PDFFormat implements Format for PDF files using tabula, which sorts the
// positioned text fragments of each page into top-to-bottom, left-to-right
// reading order (same-line fragments grouped within a small vertical
// tolerance) before assembling text.
type PDFFormat struct{}

func init() {
	Register(&PDFFormat{})
}

func (f *PDFFormat) Name() string         { return "PDF" }
func (f *PDFFormat) Extensions() []string { return []string{".pdf"} }

func (f *PDFFormat) Extract(filename string) (string, error) {
	r, err := reader.Open(filename)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer r.Close()

	text, _, err := tabula.FromReader(r).Text()
	if err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	return text, nil
}

// DocxFormat implements Format for Word documents.
type DocxFormat struct{}

func init() {
	Register(&DocxFormat{})
}

func (f *DocxFormat) Name() string         { return "Word" }
func (f *DocxFormat) Extensions() []string { return []string{".docx"} }

func (f *DocxFormat) Extract(filename string) (string, error) {
	d, err := docx.Open(filename)
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}
	defer d.Close()

	text, err := d.Text()
	if err != nil {
		return "", fmt.Errorf("reading docx text: %w", err)
	}
	return text, nil
}
