package extraction

import (
	"context"
	"path/filepath"
	"strings"
)

// Source is one document input that can be normalized to plain text.
// Implementations exist per declared kind (PDF, plain text, Word document,
// CSV, Google Doc, Google Sheet); callers pick the variant once at the
// boundary instead of inspecting filenames downstream.
type Source interface {
	// Extract returns the normalized plain-text form of the document.
	// An empty result is legitimate for empty documents; rejecting empty
	// input is the analysis stage's responsibility.
	Extract(ctx context.Context) (string, error)
	// Describe returns the source descriptor persisted with the BRD
	// (original filename for uploads, a remote-source tag otherwise).
	Describe() string
}

// ForUpload selects the extraction variant for an uploaded file by its
// declared extension. Extensions accepted at the HTTP boundary but lacking
// a local variant (.doc, .xls, .xlsx) fail with UnsupportedFormatError
// carrying a conversion instruction.
func ForUpload(path, filename string) (Source, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return &PDFSource{Path: path, Filename: filename}, nil
	case "txt":
		return &TextSource{Path: path, Filename: filename}, nil
	case "docx":
		return &WordSource{Path: path, Filename: filename}, nil
	case "doc":
		return nil, &UnsupportedFormatError{
			Format:  ext,
			Message: "legacy .doc format is not supported, please convert to .docx",
		}
	case "csv":
		return &CSVSource{Path: path, Filename: filename}, nil
	case "xls", "xlsx":
		return nil, &UnsupportedFormatError{
			Format:  ext,
			Message: "Excel workbooks are not supported, please export as .csv or use a Google Sheet",
		}
	default:
		return nil, &UnsupportedFormatError{Format: ext, Message: "no extraction variant for this file type"}
	}
}
