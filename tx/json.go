package tx

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EncodeJSON returns the structured JSON representation of the
// transaction: numeric version and lock_time, and inputs as an ordered
// array of objects with the TxID in display-order hex and the script
// bytes as a hex string.
func (t *Transaction) EncodeJSON() ([]byte, error) {
	return json.Marshal(t)
}

// DecodeTransactionJSON parses the structured representation produced
// by EncodeJSON back into a Transaction. Malformed JSON, bad hex, or a
// wrong-length TxID fail with ErrInvalidFormat.
func DecodeTransactionJSON(data []byte) (*Transaction, error) {
	var t Transaction
	if err := json.Unmarshal(data, &t); err != nil {
		if errors.Is(err, ErrInvalidFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &t, nil
}
