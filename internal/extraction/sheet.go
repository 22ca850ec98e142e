package extraction

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CSVSource extracts a locally uploaded CSV file using the same textual grid
// rendering as remote spreadsheets, so downstream analysis sees one format.
type CSVSource struct {
	Path     string
	Filename string
}

// Describe returns the original filename as the source descriptor
func (s *CSVSource) Describe() string {
	return s.Filename
}

// Extract renders the CSV as a single-sheet grid titled after the filename.
func (s *CSVSource) Extract(_ context.Context) (string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return "", &ExtractionError{Message: fmt.Sprintf("failed to open %s", s.Filename), Cause: err}
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &ExtractionError{Message: fmt.Sprintf("failed to parse %s", s.Filename), Cause: err}
		}
		rows = append(rows, record)
	}

	title := strings.TrimSuffix(s.Filename, filepath.Ext(s.Filename))
	return strings.Join(renderGrid(title, rows), "\n"), nil
}

// renderGrid produces the textual rendering shared by local CSV files and
// remote spreadsheet sheets: a title marker line, one comma-joined line per
// row, then a blank separator line.
func renderGrid(title string, rows [][]string) []string {
	lines := []string{fmt.Sprintf("Sheet: %s", title)}
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	lines = append(lines, "\n")
	return lines
}
