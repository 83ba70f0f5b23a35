package terrain

import "errors"

// Generation errors. Both are contract violations by the caller and are
// returned before any buffer is touched.
var (
	// ErrInvalidConfiguration is returned for non-positive divisions or size,
	// negative max height, or divisions that are not a power of two.
	ErrInvalidConfiguration = errors.New("invalid terrain configuration")

	// ErrPreconditionViolation is returned when a vertex buffer does not
	// match the grid it is supposed to describe.
	ErrPreconditionViolation = errors.New("terrain precondition violated")
)
