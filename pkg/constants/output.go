package constants

// CLI Output Formatting
//
// These constants control the visual formatting of CLI output.
const (
	// SeparatorWidth is the character width of console separators/dividers.
	// Used between the usage listing and the effective configuration of --cfg.
	SeparatorWidth = 50

	// RedactedValue replaces secrets when the configuration is printed.
	RedactedValue = "***REDACTED***"
)
