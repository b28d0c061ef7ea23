package tx

import (
	"encoding/binary"
	"fmt"
)

// OutPointLen is the serialized size of an OutPoint: a 32-byte TxID
// followed by a 4-byte output index.
const OutPointLen = TxIDLen + 4

// OutPoint references a specific output of a previous transaction.
type OutPoint struct {
	TxID TxID   `json:"txid"`
	Vout uint32 `json:"vout"`
}

// Serialize returns the 36-byte wire encoding: the TxID in wire order
// followed by the little-endian output index.
func (o OutPoint) Serialize() []byte {
	buf := make([]byte, OutPointLen)
	copy(buf[:TxIDLen], o.TxID[:])
	binary.LittleEndian.PutUint32(buf[TxIDLen:], o.Vout)
	return buf
}

// DeserializeOutPoint reads an OutPoint from the front of data and
// returns it together with the number of bytes consumed (36 on
// success).
func DeserializeOutPoint(data []byte) (OutPoint, int, error) {
	var o OutPoint
	if len(data) < OutPointLen {
		return o, 0, fmt.Errorf("%w: outpoint needs %d bytes, have %d", ErrInsufficientBytes, OutPointLen, len(data))
	}

	copy(o.TxID[:], data[:TxIDLen])
	o.Vout = binary.LittleEndian.Uint32(data[TxIDLen:OutPointLen])
	return o, OutPointLen, nil
}
