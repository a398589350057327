// Package display renders minigrep's user-facing output.
//
// This package centralizes every shape minigrep writes to stdout so the
// other packages never format results themselves. It provides two main
// categories of functionality:
//
// # Result Printing
//
// Use Printer to render the selected lines:
//
//	printer := display.NewPrinter(os.Stdout, display.Modes{LineNumbers: true})
//	if err := printer.Print(matches); err != nil {
//	    // Handle write error
//	}
//
// # Banner
//
// The informational banner announces what is being searched:
//
//	display.PrintBanner(os.Stdout, query, filename)
//
// All functions accept io.Writer interfaces for testability and flexibility.
// Selected lines are always written verbatim, exactly one per line, so the
// output stays consumable by pipes and scripts.
package display
