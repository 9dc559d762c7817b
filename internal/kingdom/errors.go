package kingdom

import "errors"

// Input errors
var (
	ErrInvalidBoard    = errors.New("invalid board")
	ErrInvalidTile     = errors.New("invalid tile")
	ErrOutOfRange      = errors.New("position out of range")
	ErrInvalidViewport = errors.New("invalid viewport")
)
