// Package observability provides formatted output utilities for verbose mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/brd-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxValueChars caps how much of a category value is shown
	maxValueChars = 40
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of the analysis record.
func (p *Printer) PrintAnalysis(record types.AnalysisRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	for _, category := range types.AnalysisCategories {
		value, ok := record[category]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-24s %s\n", category+":", summarize(value)))
	}
	if extra := extraKeys(record, types.AnalysisCategories); len(extra) > 0 {
		sb.WriteString(fmt.Sprintf("+%d additional categories: %s\n", len(extra), strings.Join(extra, ", ")))
	}

	p.printBox("Document Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintBRD outputs a per-section population summary of the generated BRD.
func (p *Printer) PrintBRD(brd types.BRDRecord) {
	if brd == nil {
		return
	}

	var sb strings.Builder
	populated := 0
	for _, section := range types.BRDSections {
		marker := " "
		if value, ok := brd[section]; ok && !isEmptyValue(value) {
			marker = "x"
			populated++
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", marker, section))
	}
	sb.WriteString(fmt.Sprintf("\n%d/%d sections populated", populated, len(types.BRDSections)))

	p.printBox("Business Requirements Document", sb.String())
}

// summarize renders any category value as a single truncated line
func summarize(value any) string {
	text := strings.ReplaceAll(fmt.Sprint(value), "\n", " ")
	if len(text) > maxValueChars {
		return text[:maxValueChars-3] + "..."
	}
	return text
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

func extraKeys(record map[string]any, known []string) []string {
	knownSet := make(map[string]bool, len(known))
	for _, k := range known {
		knownSet[k] = true
	}
	var extra []string
	for k := range record {
		if !knownSet[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return extra
}
