package varint

import "errors"

var (
	// ErrInsufficientBytes indicates the buffer is empty or shorter than
	// the encoding class declared by the prefix byte.
	ErrInsufficientBytes = errors.New("varint: insufficient bytes")

	// ErrNonCanonical indicates a value was encoded with a larger prefix
	// class than necessary. Only returned by DecodeCanonical.
	ErrNonCanonical = errors.New("varint: non-canonical encoding")
)
