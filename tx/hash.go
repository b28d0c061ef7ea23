package tx

import (
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
)

// TxID computes the transaction identifier: the double-SHA256 of the
// serialized transaction, in wire byte order. Use TxID.String for the
// conventional display form.
func (t *Transaction) TxID() TxID {
	var id TxID
	copy(id[:], bsvhash.Sha256d(t.Serialize()))
	return id
}
