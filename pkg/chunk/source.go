package chunk

import (
	"fmt"
	"io"
	"os"

	"github.com/sgaunet/gosplit/pkg/constants"
)

// OpenSource opens the input of a split run. An empty path or "-" selects
// stdin; closing the returned handle then leaves stdin open, since it belongs
// to the caller.
func OpenSource(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == constants.StdinPath {
		if stdin == nil {
			return nil, fmt.Errorf("%w: no standard input", ErrSourceUnavailable)
		}
		return io.NopCloser(stdin), nil
	}
	//nolint:gosec // G304: reading the user supplied input file is the purpose of the tool
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return f, nil
}
