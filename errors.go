package mersennefft

import "errors"

// Sentinel errors returned by transform operations.
var (
	// ErrInvalidLength is returned when the buffer length is not a
	// power of two in [MinSize, MaxSize].
	ErrInvalidLength = errors.New("mersennefft: invalid transform length")
)
