// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobmarket-insights/internal/dataset"
	"github.com/jonathan/jobmarket-insights/internal/pipeline"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

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

// PrintDatasetHighlights outputs the dataset vocabulary and size.
func (p *Printer) PrintDatasetHighlights(ds *dataset.Dataset) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Records:  %d\n\n", ds.Len()))
	sb.WriteString(fmt.Sprintf("Experience Levels:\n  %s\n\n", strings.Join(pipeline.HighlightLevels, ", ")))
	sb.WriteString("Job Roles:\n")
	for _, role := range pipeline.HighlightRoles {
		sb.WriteString(fmt.Sprintf("  • %s\n", role))
	}

	p.printBox("DATASET HIGHLIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQueryContext outputs what the pipeline detected and computed for
// a question before the model was called.
func (p *Printer) PrintQueryContext(qc *pipeline.QueryContext) {
	if qc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Intent:   %s\n", qc.Intent))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", orNone(qc.Role)))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", orNone(qc.Level)))
	if qc.Statistic != "" {
		sb.WriteString("\nStatistic:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", qc.Statistic))
	}

	p.printBox("QUERY CONTEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExampleQuestions outputs the canned example questions.
func (p *Printer) PrintExampleQuestions() {
	var sb strings.Builder
	for _, q := range pipeline.ExampleQuestions {
		sb.WriteString(fmt.Sprintf("• %s\n", q))
	}
	p.printBox("EXAMPLE QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
