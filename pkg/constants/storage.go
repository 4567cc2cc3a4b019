package constants

// Size Constants
//
// Standard binary size units (powers of 1024, not 1000).
const (
	// Byte is the base unit (included for completeness).
	Byte = 1

	// KB is one kilobyte (1,024 bytes). Selected by the "k" byte count suffix.
	KB = 1024

	// MB is one megabyte (1,024 kilobytes = 1,048,576 bytes). Selected by the "m" byte count suffix.
	MB = 1024 * KB
)

// Buffer Sizes
//
// These control memory allocation for file operations.
// Larger buffers improve throughput but use more memory.
const (
	// CopyBufferSize is the buffer size for local file copy operations.
	CopyBufferSize = 32 * KB

	// ReadBufferSize is the size of the input buffer owned by one split run.
	ReadBufferSize = 32 * KB
)

// DefaultFilePermission is the permission mode of created chunk files (rw-r--r--).
const DefaultFilePermission = 0644
