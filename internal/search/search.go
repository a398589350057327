// Package search implements the line-matching engine behind minigrep.
//
// The engine is a pure function over in-memory file contents: it splits the
// contents into lines, applies a literal substring test to each line, and
// returns the selected lines in their original order. It performs no I/O and
// never copies line text: every Match references the contents it was sliced
// from.
package search

import "strings"

// Match is a single selected line within the searched contents.
type Match struct {
	Number int    // 1-based line number within the contents
	Text   string // the line exactly as it appears in the contents
}

// Options controls how lines are selected.
type Options struct {
	// CaseSensitive selects verbatim substring matching. When false, the
	// query and each candidate line are lowercased before the containment
	// test; the reported Match.Text keeps the original casing.
	CaseSensitive bool

	// Invert selects the lines that do NOT contain the query.
	Invert bool
}

// Search returns the lines of contents selected by query under opts, in
// original file order. The result is always a subsequence of the input
// lines: no insertions, no reordering, no deduplication, no result limit.
// An empty query matches every line; empty contents yield no matches.
//
// The containment test is literal substring matching with no pattern syntax
// and no escaping. Case folding uses strings.ToLower on both sides, so the
// equivalence Search(q, c, insensitive) == Search(lower(q), lower(c),
// sensitive) holds up to the original casing of the returned text.
func Search(query, contents string, opts Options) []Match {
	if !opts.CaseSensitive {
		// Fold the query once; candidate lines are folded inside the loop.
		query = strings.ToLower(query)
	}

	var matches []Match
	for i, line := range splitLines(contents) {
		candidate := line
		if !opts.CaseSensitive {
			candidate = strings.ToLower(line)
		}

		matched := strings.Contains(candidate, query)
		if opts.Invert {
			matched = !matched
		}
		if matched {
			matches = append(matches, Match{Number: i + 1, Text: line})
		}
	}

	return matches
}

// splitLines splits contents on '\n', dropping the empty fragment a trailing
// newline would otherwise produce and stripping one trailing '\r' per line so
// CRLF input behaves like LF input. A final unterminated line is kept. The
// returned strings are views into contents, not copies.
func splitLines(contents string) []string {
	if contents == "" {
		return nil
	}

	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
