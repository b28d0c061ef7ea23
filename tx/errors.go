package tx

import "errors"

var (
	// ErrInsufficientBytes indicates the input buffer is shorter than a
	// field declares or requires. Recoverable by the caller: retry with
	// more data or reject the message.
	ErrInsufficientBytes = errors.New("tx: insufficient bytes")

	// ErrInvalidFormat indicates structurally present but malformed
	// data, such as a wrong-length TxID or unparseable hex. Terminal
	// for that input.
	ErrInvalidFormat = errors.New("tx: invalid format")
)
