// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hitesh/warehouse-pipeline/internal/artifact"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResolvedArtifact outputs which file a handoff resolved to and how
// fresh it is.
func (p *Printer) PrintResolvedArtifact(kind string, res *artifact.Resolved) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Path:     %s\n", res.Path))
	sb.WriteString(fmt.Sprintf("Modified: %s", res.ModTime.Format(time.RFC3339)))

	p.printBox("RESOLVED "+strings.ToUpper(kind)+" ARTIFACT", sb.String())
}

// PrintStagePlan outputs the ordered stage list before a run (or for a dry
// run). Rows are "name" and "detail" pairs.
func (p *Printer) PrintStagePlan(rows [][2]string) {
	if len(rows) == 0 {
		return
	}

	var sb strings.Builder
	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, row[0]))
		if row[1] != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", row[1]))
		}
	}

	p.printBox("STAGE PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs the final state of a run and its active artifacts.
func (p *Printer) PrintRunSummary(runID, state, layout, motion, scene string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:    %s\n", runID))
	sb.WriteString(fmt.Sprintf("State:  %s\n", state))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Layout: %s\n", orUnset(layout)))
	sb.WriteString(fmt.Sprintf("Motion: %s\n", orUnset(motion)))
	sb.WriteString(fmt.Sprintf("Scene:  %s", orUnset(scene)))

	p.printBox("PIPELINE RUN SUMMARY", sb.String())
}

func orUnset(path string) string {
	if path == "" {
		return "(not resolved)"
	}
	return path
}
