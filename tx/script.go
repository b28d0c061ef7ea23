package tx

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/bitfsorg/libbtx-go/varint"
)

// Script is an opaque byte payload carried by a transaction input.
// The wire form is a CompactSize length prefix followed by the raw
// bytes. A Script is immutable once constructed.
type Script struct {
	data []byte
}

// NewScript constructs a Script holding a copy of b.
func NewScript(b []byte) Script {
	data := make([]byte, len(b))
	copy(data, b)
	return Script{data: data}
}

// Bytes returns the raw script bytes. The returned slice is a view
// into the Script's storage and must not be modified.
func (s Script) Bytes() []byte {
	return s.data
}

// Len returns the script length in bytes.
func (s Script) Len() int {
	return len(s.data)
}

// Serialize returns the wire encoding: a CompactSize length prefix
// followed by the raw script bytes.
func (s Script) Serialize() []byte {
	buf := make([]byte, 0, varint.Size(uint64(len(s.data)))+len(s.data))
	buf = varint.Append(buf, uint64(len(s.data)))
	return append(buf, s.data...)
}

// DeserializeScript reads a Script from the front of data and returns
// it together with the total number of bytes consumed (length prefix
// plus payload). The declared length is checked against the remaining
// buffer before any allocation, so an absurd length fails cleanly with
// ErrInsufficientBytes.
func DeserializeScript(data []byte) (Script, int, error) {
	length, n, err := varint.Decode(data)
	if err != nil {
		return Script{}, 0, fmt.Errorf("%w: script length prefix", ErrInsufficientBytes)
	}

	if length > uint64(len(data)-n) {
		return Script{}, 0, fmt.Errorf("%w: script declares %d bytes, %d remain", ErrInsufficientBytes, length, len(data)-n)
	}

	total := n + int(length)
	return NewScript(data[n:total]), total, nil
}

// MarshalJSON encodes the script bytes as a lowercase hex string.
func (s Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(s.data))
}

// UnmarshalJSON decodes a hex string into the script bytes.
func (s *Script) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: script: %v", ErrInvalidFormat, err)
	}

	decoded, err := hex.DecodeString(str)
	if err != nil {
		return fmt.Errorf("%w: script hex: %v", ErrInvalidFormat, err)
	}
	*s = NewScript(decoded)
	return nil
}
