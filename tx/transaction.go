// Package tx implements the binary codec for a simplified Bitcoin
// transaction format: version, an ordered list of inputs, and a lock
// time. There is no output side and no witness data.
//
// Every Deserialize function is a pure function of a byte slice and
// returns the parsed value together with the number of bytes it
// consumed, so composite decoders advance an explicit offset after
// each child call. Decoded values never alias the input buffer.
package tx

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/bitfsorg/libbtx-go/varint"
)

// Transaction is a simplified Bitcoin transaction carrying only the
// input side.
//
// Wire layout:
//
//	version(4, LE) | count(CompactSize) | input[count] | lockTime(4, LE)
type Transaction struct {
	Version  uint32             `json:"version"`
	Inputs   []TransactionInput `json:"inputs"`
	LockTime uint32             `json:"lock_time"`
}

// Serialize returns the wire encoding of the transaction: little-endian
// version, CompactSize input count, each input in list order, and the
// little-endian lock time.
func (t *Transaction) Serialize() []byte {
	buf := binary.LittleEndian.AppendUint32(nil, t.Version)
	buf = varint.Append(buf, uint64(len(t.Inputs)))
	for _, in := range t.Inputs {
		buf = append(buf, in.Serialize()...)
	}
	return binary.LittleEndian.AppendUint32(buf, t.LockTime)
}

// DeserializeTransaction reads a Transaction from the front of data and
// returns it together with the total number of bytes consumed.
//
// Exactly the declared number of inputs must be present; a short input
// list fails with ErrInsufficientBytes and no partial transaction is
// ever returned. Any sub-decode failure propagates immediately.
func DeserializeTransaction(data []byte) (*Transaction, int, error) {
	offset := 0

	if len(data) < 4 {
		return nil, 0, fmt.Errorf("%w: version needs 4 bytes, have %d", ErrInsufficientBytes, len(data))
	}
	version := binary.LittleEndian.Uint32(data[:4])
	offset += 4

	count, n, err := varint.Decode(data[offset:])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: input count", ErrInsufficientBytes)
	}
	offset += n

	var inputs []TransactionInput
	if count > 0 {
		// Each input occupies at least inputMinLen bytes on the wire, so
		// a count beyond the remaining buffer can never be satisfied.
		// Checking here keeps a hostile count from driving a huge
		// allocation.
		if count > uint64(len(data)-offset)/inputMinLen {
			return nil, 0, fmt.Errorf("%w: input count %d exceeds remaining buffer", ErrInsufficientBytes, count)
		}
		inputs = make([]TransactionInput, 0, count)
	}

	for i := uint64(0); i < count; i++ {
		in, n, err := DeserializeInput(data[offset:])
		if err != nil {
			return nil, 0, fmt.Errorf("input %d: %w", i, err)
		}
		inputs = append(inputs, in)
		offset += n
	}

	if len(data) < offset+4 {
		return nil, 0, fmt.Errorf("%w: lock time needs 4 bytes, have %d", ErrInsufficientBytes, len(data)-offset)
	}
	lockTime := binary.LittleEndian.Uint32(data[offset : offset+4])
	offset += 4

	return &Transaction{
		Version:  version,
		Inputs:   inputs,
		LockTime: lockTime,
	}, offset, nil
}

// String renders a multi-line human-readable report of the
// transaction. The rendering is display-only and does not round-trip.
func (t *Transaction) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Transaction:\n")
	fmt.Fprintf(&b, "  Version: %d\n", t.Version)
	fmt.Fprintf(&b, "  Lock Time: %d\n", t.LockTime)
	fmt.Fprintf(&b, "  Inputs (%d):\n", len(t.Inputs))

	for i, in := range t.Inputs {
		fmt.Fprintf(&b, "    Input %d:\n", i)
		fmt.Fprintf(&b, "      Previous Output TxID: %s\n", in.PreviousOutput.TxID)
		fmt.Fprintf(&b, "      Previous Output Vout: %d\n", in.PreviousOutput.Vout)
		fmt.Fprintf(&b, "      Script Sig Length: %d\n", in.ScriptSig.Len())
		fmt.Fprintf(&b, "      Script Sig: %x\n", in.ScriptSig.Bytes())
		fmt.Fprintf(&b, "      Sequence: 0x%08x\n", in.Sequence)
	}

	return b.String()
}
