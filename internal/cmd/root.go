package cmd

import (
	"fmt"
	"os"

	"github.com/harrison/minigrep/internal/config"
	"github.com/harrison/minigrep/internal/display"
	"github.com/harrison/minigrep/internal/logger"
	"github.com/harrison/minigrep/internal/runner"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for minigrep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Search a file for lines containing a query string",
		Long: `Minigrep prints the lines of a file that contain a query string.

The query is matched as a literal substring, never as a regular
expression. Matching is case-sensitive unless the CASE_INSENSITIVE
environment variable is set (any value counts, including empty), a
defaults file asks for folding, or --ignore-case is given.

Defaults are loaded from .minigrep.yaml if present.
CLI flags override both the defaults file and the environment.

Examples:
  # Find lines mentioning frog
  minigrep frog poem.txt

  # Case-insensitive search via the environment toggle
  CASE_INSENSITIVE=1 minigrep body poem.txt

  # Case-insensitive search via flag, with line numbers
  minigrep --ignore-case -n body poem.txt

  # Count the lines that do NOT mention frog
  minigrep -v -c frog poem.txt

  # Suppress the banner for scripting
  minigrep -q frog poem.txt`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// Errors are rendered by main with their diagnostic prefix
		SilenceErrors: true,
		RunE:          runSearch,
	}

	// Add flags
	cmd.Flags().String("config", "", "Path to defaults file (default: .minigrep.yaml)")
	cmd.Flags().BoolP("ignore-case", "i", false, "Match without case distinctions")
	cmd.Flags().Bool("case-sensitive", false, "Match exactly (overrides config and environment)")
	cmd.Flags().BoolP("invert-match", "v", false, "Select lines that do not contain the query")
	cmd.Flags().BoolP("count", "c", false, "Print only a count of selected lines")
	cmd.Flags().BoolP("line-number", "n", false, "Prefix each line with its line number")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress the banner lines")
	cmd.Flags().Bool("verbose", false, "Show execution diagnostics on stderr")

	// Flag parse failures ride the argument-problem path
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.ConfigError{Message: "invalid flags", Err: err}
	})

	return cmd
}

// runSearch implements the search logic
func runSearch(cmd *cobra.Command, args []string) error {
	// Resolve positional arguments and the environment toggle
	argv := append([]string{cmd.Root().Name()}, args...)
	cfg, err := config.Build(argv, os.LookupEnv)
	if err != nil {
		return err
	}

	// Validate conflicting flags
	if cmd.Flags().Changed("ignore-case") && cmd.Flags().Changed("case-sensitive") {
		return &config.ConfigError{Message: "cannot use both --ignore-case and --case-sensitive"}
	}

	// Load defaults from file
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultFileName
	}
	fileCfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	cfg.ApplyFile(fileCfg)

	// Get flag values
	ignoreCaseFlag, _ := cmd.Flags().GetBool("ignore-case")
	caseSensitiveFlag, _ := cmd.Flags().GetBool("case-sensitive")
	invertFlag, _ := cmd.Flags().GetBool("invert-match")
	countFlag, _ := cmd.Flags().GetBool("count")
	lineNumberFlag, _ := cmd.Flags().GetBool("line-number")
	quietFlag, _ := cmd.Flags().GetBool("quiet")

	// Build flag pointers for merge (only values the user set)
	var ignoreCasePtr *bool
	if cmd.Flags().Changed("ignore-case") {
		ignoreCasePtr = &ignoreCaseFlag
	}

	var caseSensitivePtr *bool
	if cmd.Flags().Changed("case-sensitive") {
		caseSensitivePtr = &caseSensitiveFlag
	}

	var invertPtr *bool
	if cmd.Flags().Changed("invert-match") {
		invertPtr = &invertFlag
	}

	var countPtr *bool
	if cmd.Flags().Changed("count") {
		countPtr = &countFlag
	}

	var lineNumberPtr *bool
	if cmd.Flags().Changed("line-number") {
		lineNumberPtr = &lineNumberFlag
	}

	var quietPtr *bool
	if cmd.Flags().Changed("quiet") {
		quietPtr = &quietFlag
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(ignoreCasePtr, caseSensitivePtr, invertPtr, countPtr, lineNumberPtr, quietPtr)

	if !cfg.Quiet {
		display.PrintBanner(cmd.OutOrStdout(), cfg.Query, cfg.Filename)
	}

	// Determine log level: verbose flag enables debug diagnostics
	logLevel := "info"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logLevel = "debug"
	}
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), logLevel)

	r := runner.New(cmd.OutOrStdout(), log)
	return r.Run(cfg)
}

// Diagnostic renders err with the prefix identifying which stage failed.
// Configuration problems are reported as argument parsing failures; every
// later failure is an application error.
func Diagnostic(err error) string {
	if config.IsConfigError(err) {
		return fmt.Sprintf("Problem parsing arguments: %v", err)
	}
	return fmt.Sprintf("Application error: %v", err)
}
