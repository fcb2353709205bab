package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

// Options holds everything the command runner needs for one invocation
type Options struct {
	Path        string
	Format      string
	Interactive bool
	Verbose     bool
	ExitCode    bool
}

// DefaultOptions returns the options used when no flags are given
func DefaultOptions() Options {
	return Options{
		Path:        DefaultPath,
		Format:      DefaultFormat,
		Interactive: true,
	}
}

// SupportedFormats lists the accepted values for Options.Format
func SupportedFormats() []string {
	return []string{FormatJSON, FormatYAML, FormatText}
}

// ApplyArgs lets a positional PROJECT_PATH override the --path flag
func (o *Options) ApplyArgs(args []string) {
	if len(args) > 0 && args[0] != "" {
		o.Path = args[0]
	}
}

// Validate normalizes the options and rejects unknown values
func (o *Options) Validate() error {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if !slices.Contains(SupportedFormats(), o.Format) {
		return fmt.Errorf("unsupported format %q (expected one of %s)", o.Format, strings.Join(SupportedFormats(), ", "))
	}
	if o.Path == "" {
		o.Path = DefaultPath
	}
	return nil
}

// UseTUI reports whether the styled, animated output should be used
func (o Options) UseTUI(tty bool) bool {
	return o.Format == FormatText && o.Interactive && tty
}

// IsTerminal reports whether f is an interactive terminal outside CI
func IsTerminal(f *os.File) bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
