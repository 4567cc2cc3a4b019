package constants

// Chunking Defaults
//
// Values applied when neither the command line, the config file nor the
// environment provides one.
const (
	// DefaultBaseName is the output file prefix used when no explicit name is given.
	DefaultBaseName = "x"

	// DefaultSuffixLength is the number of alphabetic characters appended to the base name.
	// Two characters allow 26*26 = 676 chunks.
	DefaultSuffixLength = 2

	// DefaultLines is the line count of a chunk when neither a line nor a byte limit is set.
	DefaultLines = 1000

	// StdinPath is the input path meaning "read standard input".
	StdinPath = "-"
)

// SuffixAlphabet is the ordered set of characters a suffix position may hold.
// The first character is the zero digit of the odometer.
const SuffixAlphabet = "abcdefghijklmnopqrstuvwxyz"
