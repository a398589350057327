package display

import (
	"bufio"
	"fmt"
	"io"

	"github.com/harrison/minigrep/internal/search"
)

// Modes selects how Printer renders the selected lines.
type Modes struct {
	// LineNumbers prefixes every line with "N:" using the 1-based number.
	LineNumbers bool

	// Count suppresses the lines and prints only how many were selected.
	Count bool
}

// Printer writes selected lines to a destination writer.
// Output is buffered per Print call; a failed write is reported instead of
// silently truncating the results.
type Printer struct {
	writer io.Writer
	modes  Modes
}

// NewPrinter creates a Printer that renders to w.
func NewPrinter(w io.Writer, modes Modes) *Printer {
	return &Printer{
		writer: w,
		modes:  modes,
	}
}

// Print renders matches according to the configured modes.
// Count mode prints a single integer. Otherwise every match is written
// verbatim on its own line, prefixed with "N:" when line numbers are on.
func (p *Printer) Print(matches []search.Match) error {
	bw := bufio.NewWriter(p.writer)

	if p.modes.Count {
		if _, err := fmt.Fprintf(bw, "%d\n", len(matches)); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
		return flush(bw)
	}

	for _, match := range matches {
		var err error
		if p.modes.LineNumbers {
			_, err = fmt.Fprintf(bw, "%d:%s\n", match.Number, match.Text)
		} else {
			_, err = fmt.Fprintf(bw, "%s\n", match.Text)
		}
		if err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}

	return flush(bw)
}

func flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

// PrintBanner writes the informational header naming the query and the file.
func PrintBanner(w io.Writer, query, filename string) {
	fmt.Fprintf(w, "Searching for %s\n", query)
	fmt.Fprintf(w, "In file %s\n", filename)
}
