package varint

import (
	"bytes"
	"testing"
)

// FuzzDecodeNoPanic ensures Decode never panics and that any accepted
// encoding re-encodes to a value that decodes identically.
func FuzzDecodeNoPanic(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xfc})
	f.Add([]byte{0xfd, 0xfd, 0x00})
	f.Add([]byte{0xfd, 0x01})
	f.Add([]byte{0xfe, 0x00, 0x00, 0x01, 0x00})
	f.Add([]byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, n, err := Decode(data)
		if err != nil {
			return
		}
		if n < 1 || n > 9 || n > len(data) {
			t.Fatalf("consumed %d bytes of %d", n, len(data))
		}

		v2, n2, err := Decode(Encode(v))
		if err != nil {
			t.Fatalf("re-decode of canonical encoding failed: %v", err)
		}
		if v2 != v {
			t.Errorf("value changed through re-encode: %d != %d", v2, v)
		}
		if n2 > n {
			t.Errorf("canonical encoding longer than accepted one: %d > %d", n2, n)
		}
	})
}

// FuzzEncodeDecodeRoundTrip verifies decode(encode(v)) == (v, len(encode(v)))
// for arbitrary values.
func FuzzEncodeDecodeRoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(252))
	f.Add(uint64(253))
	f.Add(uint64(65536))
	f.Add(uint64(4294967296))
	f.Add(^uint64(0))

	f.Fuzz(func(t *testing.T, v uint64) {
		encoded := Encode(v)

		decoded, consumed, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(Encode(%d)): %v", v, err)
		}
		if decoded != v {
			t.Errorf("decoded %d, want %d", decoded, v)
		}
		if consumed != len(encoded) {
			t.Errorf("consumed %d, want %d", consumed, len(encoded))
		}

		// Append with a prefix must produce the same encoding after it.
		appended := Append([]byte{0x01, 0x02}, v)
		if !bytes.Equal(appended[2:], encoded) {
			t.Error("Append and Encode disagree")
		}
	})
}
