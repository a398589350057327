package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/harrison/minigrep/internal/search"
)

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Modes{})

	matches := []search.Match{
		{Number: 2, Text: "safe, fast, productive."},
		{Number: 4, Text: "Trust me."},
	}

	if err := p.Print(matches); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	want := "safe, fast, productive.\nTrust me.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_LineNumbers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Modes{LineNumbers: true})

	matches := []search.Match{
		{Number: 2, Text: "safe, fast, productive."},
		{Number: 4, Text: "Trust me."},
	}

	if err := p.Print(matches); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	want := "2:safe, fast, productive.\n4:Trust me.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_Count(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Modes{Count: true})

	matches := []search.Match{
		{Number: 1, Text: "one"},
		{Number: 2, Text: "two"},
		{Number: 3, Text: "three"},
	}

	if err := p.Print(matches); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	if buf.String() != "3\n" {
		t.Errorf("output = %q, want %q", buf.String(), "3\n")
	}
}

func TestPrinter_CountWinsOverLineNumbers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Modes{Count: true, LineNumbers: true})

	matches := []search.Match{
		{Number: 7, Text: "seven"},
	}

	if err := p.Print(matches); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	if buf.String() != "1\n" {
		t.Errorf("output = %q, want %q", buf.String(), "1\n")
	}
}

func TestPrinter_NoMatches(t *testing.T) {
	t.Run("plain mode prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, Modes{})

		if err := p.Print(nil); err != nil {
			t.Fatalf("Print() error = %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("output = %q, want empty", buf.String())
		}
	})

	t.Run("count mode prints zero", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, Modes{Count: true})

		if err := p.Print(nil); err != nil {
			t.Fatalf("Print() error = %v", err)
		}
		if buf.String() != "0\n" {
			t.Errorf("output = %q, want %q", buf.String(), "0\n")
		}
	})
}

func TestPrinter_VerbatimText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Modes{})

	// Whitespace inside a line must survive untouched.
	matches := []search.Match{
		{Number: 1, Text: "\tindented\t and  spaced   "},
	}

	if err := p.Print(matches); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	want := "\tindented\t and  spaced   \n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_WriteError(t *testing.T) {
	p := NewPrinter(failingWriter{}, Modes{})

	err := p.Print([]search.Match{{Number: 1, Text: "anything"}})
	if err == nil {
		t.Fatal("Print() expected error for failing writer, got nil")
	}
	if !strings.Contains(err.Error(), "failed to write results") {
		t.Errorf("Print() error = %q, want it to mention the write failure", err.Error())
	}
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer

	PrintBanner(&buf, "needle", "haystack.txt")

	want := "Searching for needle\nIn file haystack.txt\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
