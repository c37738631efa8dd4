package costmat

import "errors"

// Sentinel errors for the costmat package. Callers branch with errors.Is;
// these are never wrapped with fmt.Errorf at the definition site.
var (
	// ErrInvalidDimensions indicates a requested matrix size is non-positive.
	ErrInvalidDimensions = errors.New("costmat: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("costmat: index out of range")
)
