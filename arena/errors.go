package arena

import "errors"

var (
	// ErrOutOfBounds signals a handle this arena never issued.
	ErrOutOfBounds = errors.New("arena: handle out of bounds")
	// ErrStaleHandle signals a handle whose slot has been freed.
	ErrStaleHandle = errors.New("arena: stale handle")
)
