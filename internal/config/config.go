package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CaseEnvVar is the environment variable whose presence (any value, even
// empty) forces case-insensitive search. Only presence is checked; the
// variable's content is never validated.
const CaseEnvVar = "CASE_INSENSITIVE"

// DefaultFileName is the YAML defaults file consulted in the working
// directory when --config is not given.
const DefaultFileName = ".minigrep.yaml"

// EnvLookup reports an environment variable's value and whether it is set.
// os.LookupEnv satisfies it at the process boundary; tests inject fakes so
// resolution never touches the real environment.
type EnvLookup func(key string) (string, bool)

// Config is the resolved execution configuration. It is built once at the
// boundary and passed by value to the runner; nothing mutates it after
// resolution.
type Config struct {
	// Query is the literal substring being searched for.
	Query string

	// Filename is the file whose contents are searched.
	Filename string

	// CaseSensitive selects verbatim matching. It defaults to true and is
	// disabled by the CaseEnvVar toggle, a file default, or a flag.
	CaseSensitive bool

	// Invert selects the lines that do NOT contain the query.
	Invert bool

	// Count prints only the number of selected lines.
	Count bool

	// LineNumbers prefixes each printed line with its 1-based number.
	LineNumbers bool

	// Quiet suppresses the informational banner lines.
	Quiet bool
}

// ConfigError reports a failure to resolve the execution configuration:
// missing arguments, conflicting or unknown flags, or a broken defaults
// file.
type ConfigError struct {
	Message string // human-readable description
	Err     error  // underlying cause, if any
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if the error is or wraps a ConfigError.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Build resolves the core execution configuration from a raw argument
// vector and an environment lookup. argv follows the conventional process
// layout: argv[0] is the program name, argv[1] the query, argv[2] the
// filename. Elements beyond index 2 are ignored; fewer than three elements
// fails with a ConfigError.
//
// The environment toggle is the only side channel and it is read here,
// through the injected lookup, never inside the search engine.
func Build(argv []string, lookup EnvLookup) (Config, error) {
	if len(argv) < 3 {
		return Config{}, &ConfigError{Message: "Some arguments appear to be missing"}
	}

	_, insensitive := lookup(CaseEnvVar)

	return Config{
		Query:         argv[1],
		Filename:      argv[2],
		CaseSensitive: !insensitive,
	}, nil
}

// FileConfig holds the optional YAML defaults consulted below the
// environment toggle and the flags. A missing file is not an error; every
// field simply keeps its zero value.
type FileConfig struct {
	// CaseInsensitive makes searches case-insensitive by default.
	CaseInsensitive bool `yaml:"case_insensitive"`

	// LineNumbers turns on line-number prefixes by default.
	LineNumbers bool `yaml:"line_numbers"`

	// Quiet suppresses the banner by default.
	Quiet bool `yaml:"quiet"`
}

// DefaultFileConfig returns a FileConfig with default values.
func DefaultFileConfig() FileConfig {
	return FileConfig{}
}

// LoadFile loads search defaults from the YAML file at path.
// If the file doesn't exist, returns default values without error.
// If the file exists but can't be read or parsed, returns a ConfigError.
func LoadFile(path string) (FileConfig, error) {
	fc := DefaultFileConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, &ConfigError{Message: fmt.Sprintf("failed to read config file %s", path), Err: err}
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, &ConfigError{Message: fmt.Sprintf("failed to parse config file %s", path), Err: err}
	}

	return fc, nil
}

// ApplyFile folds file defaults into the configuration. The file only ever
// pushes toward the non-default behavior, so it can never mask the
// environment toggle; flags are merged afterwards and override both.
func (c *Config) ApplyFile(fc FileConfig) {
	if fc.CaseInsensitive {
		c.CaseSensitive = false
	}
	if fc.LineNumbers {
		c.LineNumbers = true
	}
	if fc.Quiet {
		c.Quiet = true
	}
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override everything resolved before them (the
// environment toggle and the defaults file); nil means the flag was not
// set on the command line.
func (c *Config) MergeWithFlags(ignoreCase, caseSensitive, invert, count, lineNumbers, quiet *bool) {
	if ignoreCase != nil {
		c.CaseSensitive = !*ignoreCase
	}
	if caseSensitive != nil {
		c.CaseSensitive = *caseSensitive
	}
	if invert != nil {
		c.Invert = *invert
	}
	if count != nil {
		c.Count = *count
	}
	if lineNumbers != nil {
		c.LineNumbers = *lineNumbers
	}
	if quiet != nil {
		c.Quiet = *quiet
	}
}
