package main

import (
	"fmt"
	"os"

	"github.com/harrison/minigrep/internal/cmd"
)

// Version is the current version of the minigrep application
const Version = "1.0.0"

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cmd.Diagnostic(err))
		os.Exit(1)
	}
}
