package tx

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// TxIDLen is the size of a transaction identifier in bytes.
const TxIDLen = 32

// TxID is a 32-byte transaction identifier stored in wire byte order.
//
// The textual form follows the conventional display order, which is
// the wire order reversed. String and ParseTxID both apply the
// reversal, so the text form round-trips back to the same wire bytes.
type TxID [TxIDLen]byte

// NewTxID constructs a TxID from exactly 32 raw wire-order bytes.
func NewTxID(b []byte) (TxID, error) {
	var id TxID
	if len(b) != TxIDLen {
		return id, fmt.Errorf("%w: TxID must be %d bytes, got %d", ErrInvalidFormat, TxIDLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ParseTxID parses a 64-character display-order hex string into a
// wire-order TxID.
func ParseTxID(s string) (TxID, error) {
	var id TxID

	decoded, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: TxID hex: %v", ErrInvalidFormat, err)
	}
	if len(decoded) != TxIDLen {
		return id, fmt.Errorf("%w: TxID must be %d bytes, got %d", ErrInvalidFormat, TxIDLen, len(decoded))
	}

	for i, b := range decoded {
		id[TxIDLen-1-i] = b
	}
	return id, nil
}

// String returns the TxID as lowercase hex in display order.
func (id TxID) String() string {
	var reversed [TxIDLen]byte
	for i, b := range id {
		reversed[TxIDLen-1-i] = b
	}
	return hex.EncodeToString(reversed[:])
}

// MarshalJSON encodes the TxID as its display-order hex string.
func (id TxID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes a display-order hex string into the TxID.
func (id *TxID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: TxID: %v", ErrInvalidFormat, err)
	}

	parsed, err := ParseTxID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
