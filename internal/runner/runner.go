// Package runner executes a resolved search: read the file, select the
// lines, render them.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/minigrep/internal/config"
	"github.com/harrison/minigrep/internal/display"
	"github.com/harrison/minigrep/internal/logger"
	"github.com/harrison/minigrep/internal/search"
)

// Logger receives execution diagnostics on the side channel.
// logger.ConsoleLogger and logger.NoOpLogger both satisfy it.
type Logger interface {
	LogDebug(message string)
}

// Runner owns the result destination and executes searches against it.
type Runner struct {
	out io.Writer
	log Logger
}

// New creates a Runner writing results to out and diagnostics to log.
// A nil log disables diagnostics.
func New(out io.Writer, log Logger) *Runner {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Runner{
		out: out,
		log: log,
	}
}

// Run performs the search described by cfg and writes the selected lines.
// The whole file is read into memory up front; matching happens on the
// in-memory contents. Zero selected lines is a normal outcome, not an
// error. A file that cannot be read is reported as a FileReadError.
func (r *Runner) Run(cfg config.Config) error {
	data, err := os.ReadFile(cfg.Filename)
	if err != nil {
		return NewFileReadError(cfg.Filename, err)
	}

	r.log.LogDebug(fmt.Sprintf("read %d bytes from %s", len(data), cfg.Filename))

	matches := search.Search(cfg.Query, string(data), search.Options{
		CaseSensitive: cfg.CaseSensitive,
		Invert:        cfg.Invert,
	})

	r.log.LogDebug(fmt.Sprintf("selected %d lines", len(matches)))

	printer := display.NewPrinter(r.out, display.Modes{
		LineNumbers: cfg.LineNumbers,
		Count:       cfg.Count,
	})

	return printer.Print(matches)
}
