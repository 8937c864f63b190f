// Package report renders an energy history for the console.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pressim/internal/analysis"
)

const (
	Title = "=== Verification: Informational Pressure Law ==="

	interpretation = `Interpretation:
- Energy decreases as pressure equalizes distribution.
- Information flows from high-density to low-density regions.
This confirms the informational pressure law.`
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Head returns at most n leading values.
func Head(history []float64, n int) []float64 {
	if n > len(history) {
		n = len(history)
	}
	return history[:n]
}

// Tail returns at most n trailing values.
func Tail(history []float64, n int) []float64 {
	if n > len(history) {
		n = len(history)
	}
	return history[len(history)-n:]
}

// FormatValues renders values as a bracketed, comma-separated list using the
// shortest representation that round-trips.
func FormatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Print writes the verification report: the first head and last tail energy
// values followed by the interpretation block. Labels count the values
// actually printed.
func Print(w io.Writer, history []float64, head, tail int) error {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render(Title) + "\n\n")
	first, last := Head(history, head), Tail(history, tail)
	fmt.Fprintf(&b, "First %d energy values: %s\n", len(first), FormatValues(first))
	fmt.Fprintf(&b, "Last %d energy values: %s\n", len(last), FormatValues(last))
	b.WriteString("\n" + interpretation + "\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Summary writes the analysis of the trace.
func Summary(w io.Writer, history []float64) error {
	s := analysis.Summarize(history)
	rows := []struct {
		label string
		value string
	}{
		{"steps", strconv.Itoa(s.Steps)},
		{"initial", fmt.Sprintf("%.6g", s.Initial)},
		{"final", fmt.Sprintf("%.6g", s.Final)},
		{"min", fmt.Sprintf("%.6g", s.Min)},
		{"max", fmt.Sprintf("%.6g", s.Max)},
		{"change", fmt.Sprintf("%+.3f%%", 100*s.RelativeChange)},
		{"decreasing", fmt.Sprintf("%.1f%% of steps", 100*s.DecreasingFraction)},
		{"trend", analysis.Trend(history)},
	}

	var b strings.Builder
	b.WriteString("summary:\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-11s", r.label)), r.value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Plot draws the energy trace. Histories shorter than two points are skipped.
func Plot(w io.Writer, history []float64) error {
	if len(history) < 2 {
		return nil
	}
	graph := asciigraph.Plot(history,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("energy vs step"),
	)
	_, err := fmt.Fprintln(w, graph+"\n")
	return err
}
