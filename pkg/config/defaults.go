package config

// Application identity
const (
	// AppName is the command name shown in usage and version output
	AppName = "solidity-foundry-detector"
)

// Output formats
const (
	// FormatJSON is the machine-readable default understood by detection hosts
	FormatJSON = "json"

	// FormatYAML emits the same document as YAML
	FormatYAML = "yaml"

	// FormatText renders a styled summary for humans
	FormatText = "text"
)

// Default Values
const (
	// DefaultPath is the directory inspected when none is given
	DefaultPath = "."

	// DefaultFormat is the output format used when none is given
	DefaultFormat = FormatJSON
)

// Exit Codes
const (
	// ExitError is returned for usage and runtime errors
	ExitError = 1

	// ExitNotDetected is returned for a Fail verdict when --exit-code is set
	ExitNotDetected = 2
)
