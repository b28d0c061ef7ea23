package tx

import (
	"encoding/binary"
	"fmt"
)

// inputMinLen is the smallest possible serialized input: a 36-byte
// outpoint, a one-byte length prefix for an empty script, and a 4-byte
// sequence number.
const inputMinLen = OutPointLen + 1 + 4

// TransactionInput spends a previous output. The wire form is the
// OutPoint, the unlocking script, and a little-endian 4-byte sequence
// number, concatenated without padding.
type TransactionInput struct {
	PreviousOutput OutPoint `json:"previous_output"`
	ScriptSig      Script   `json:"script_sig"`
	Sequence       uint32   `json:"sequence"`
}

// Serialize returns the wire encoding of the input.
func (in TransactionInput) Serialize() []byte {
	script := in.ScriptSig.Serialize()

	buf := make([]byte, 0, OutPointLen+len(script)+4)
	buf = append(buf, in.PreviousOutput.Serialize()...)
	buf = append(buf, script...)
	return binary.LittleEndian.AppendUint32(buf, in.Sequence)
}

// DeserializeInput reads a TransactionInput from the front of data and
// returns it together with the total number of bytes consumed. A
// failure in any segment propagates immediately; no partial input is
// returned.
func DeserializeInput(data []byte) (TransactionInput, int, error) {
	offset := 0

	prev, n, err := DeserializeOutPoint(data)
	if err != nil {
		return TransactionInput{}, 0, err
	}
	offset += n

	script, n, err := DeserializeScript(data[offset:])
	if err != nil {
		return TransactionInput{}, 0, err
	}
	offset += n

	if len(data) < offset+4 {
		return TransactionInput{}, 0, fmt.Errorf("%w: sequence needs 4 bytes, have %d", ErrInsufficientBytes, len(data)-offset)
	}
	sequence := binary.LittleEndian.Uint32(data[offset : offset+4])
	offset += 4

	return TransactionInput{
		PreviousOutput: prev,
		ScriptSig:      script,
		Sequence:       sequence,
	}, offset, nil
}
