package tx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionJSONRoundTrip(t *testing.T) {
	tr := Transaction{
		Version: 1,
		Inputs: []TransactionInput{
			testInput(t, 0xab, 3, []byte{0xde, 0xad, 0xbe, 0xef}, 0xabcdef01),
		},
		LockTime: 999,
	}

	encoded, err := tr.EncodeJSON()
	require.NoError(t, err)

	parsed, err := DecodeTransactionJSON(encoded)
	require.NoError(t, err)
	assert.Equal(t, &tr, parsed)
}

func TestTransactionJSON_FieldNames(t *testing.T) {
	tr := Transaction{
		Version: 1,
		Inputs: []TransactionInput{
			testInput(t, 0xab, 3, []byte{0xde, 0xad, 0xbe, 0xef}, 0xabcdef01),
		},
		LockTime: 999,
	}

	encoded, err := tr.EncodeJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(encoded, &doc))

	assert.Equal(t, float64(1), doc["version"])
	assert.Equal(t, float64(999), doc["lock_time"])

	inputs, ok := doc["inputs"].([]any)
	require.True(t, ok)
	require.Len(t, inputs, 1)

	input, ok := inputs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "deadbeef", input["script_sig"])
	assert.Equal(t, float64(0xabcdef01), input["sequence"])

	prev, ok := input["previous_output"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), prev["vout"])
	assert.Equal(t, tr.Inputs[0].PreviousOutput.TxID.String(), prev["txid"])
}

func TestTransactionJSON_EmptyInputs(t *testing.T) {
	tr := Transaction{Version: 2, LockTime: 0}

	encoded, err := tr.EncodeJSON()
	require.NoError(t, err)

	parsed, err := DecodeTransactionJSON(encoded)
	require.NoError(t, err)
	assert.Equal(t, &tr, parsed)
}

func TestDecodeTransactionJSON_BadTxID(t *testing.T) {
	// 2-byte txid instead of 32.
	doc := `{"version":1,"inputs":[{"previous_output":{"txid":"abcd","vout":0},"script_sig":"","sequence":0}],"lock_time":0}`

	_, err := DecodeTransactionJSON([]byte(doc))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecodeTransactionJSON_BadScriptHex(t *testing.T) {
	doc := `{"version":1,"inputs":[{"previous_output":{"txid":"` +
		dummyTxID(t, 0x01).String() +
		`","vout":0},"script_sig":"zz","sequence":0}],"lock_time":0}`

	_, err := DecodeTransactionJSON([]byte(doc))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecodeTransactionJSON_MalformedDocument(t *testing.T) {
	_, err := DecodeTransactionJSON([]byte(`{"version": `))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestScriptJSON(t *testing.T) {
	s := NewScript([]byte{0x76, 0xa9})

	encoded, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"76a9"`, string(encoded))

	var parsed Script
	require.NoError(t, json.Unmarshal(encoded, &parsed))
	assert.Equal(t, s, parsed)
}

func TestTxIDJSON(t *testing.T) {
	id := dummyTxID(t, 0x01)

	encoded, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"`+id.String()+`"`, string(encoded))

	var parsed TxID
	require.NoError(t, json.Unmarshal(encoded, &parsed))
	assert.Equal(t, id, parsed, "JSON decode must restore wire order")
}
