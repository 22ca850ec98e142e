package extraction

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextSource reads a plain-text file verbatim as UTF-8.
type TextSource struct {
	Path     string
	Filename string
}

// Describe returns the original filename as the source descriptor
func (s *TextSource) Describe() string {
	return s.Filename
}

// Extract returns the full file content decoded as UTF-8 text.
func (s *TextSource) Extract(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", &ExtractionError{Message: fmt.Sprintf("failed to read %s", s.Filename), Cause: err}
	}
	return string(data), nil
}

// WordSource extracts paragraph text from a .docx document.
// A .docx file is a zip archive whose main part is word/document.xml.
type WordSource struct {
	Path     string
	Filename string
}

// Describe returns the original filename as the source descriptor
func (s *WordSource) Describe() string {
	return s.Filename
}

// Extract concatenates paragraph texts in document order, newline-separated.
func (s *WordSource) Extract(_ context.Context) (string, error) {
	zr, err := zip.OpenReader(s.Path)
	if err != nil {
		return "", &ExtractionError{Message: fmt.Sprintf("failed to open %s as a docx archive", s.Filename), Cause: err}
	}
	defer func() { _ = zr.Close() }()

	var docPart *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docPart = f
			break
		}
	}
	if docPart == nil {
		return "", &ExtractionError{Message: fmt.Sprintf("%s has no word/document.xml part", s.Filename)}
	}

	rc, err := docPart.Open()
	if err != nil {
		return "", &ExtractionError{Message: fmt.Sprintf("failed to open document part of %s", s.Filename), Cause: err}
	}
	defer func() { _ = rc.Close() }()

	text, err := parseDocumentXML(rc)
	if err != nil {
		return "", &ExtractionError{Message: fmt.Sprintf("failed to parse document part of %s", s.Filename), Cause: err}
	}
	return text, nil
}

// parseDocumentXML walks the WordprocessingML token stream collecting the
// character data of w:t runs, one output line per w:p paragraph.
func parseDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inTextRun := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inTextRun = true
			case "tab":
				current.WriteByte('\t')
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inTextRun {
				current.Write(el)
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
