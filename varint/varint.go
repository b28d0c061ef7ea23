// Package varint implements Bitcoin's CompactSize variable-length
// encoding for unsigned 64-bit integers.
//
// The encoding selects one of four byte-length classes by value
// magnitude. Values up to 0xfc are a single byte; larger values use a
// prefix byte (0xfd, 0xfe or 0xff) followed by the value as a
// little-endian 2-, 4- or 8-byte integer.
package varint

import "encoding/binary"

// Prefix bytes selecting the multi-byte encoding classes.
const (
	prefix2Byte = 0xfd
	prefix4Byte = 0xfe
	prefix8Byte = 0xff
)

// Size returns the number of bytes the canonical encoding of v
// occupies: 1, 3, 5 or 9.
func Size(v uint64) int {
	switch {
	case v <= 0xfc:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// Encode returns the canonical CompactSize encoding of v, using the
// smallest prefix class whose range contains the value.
func Encode(v uint64) []byte {
	return Append(make([]byte, 0, Size(v)), v)
}

// Append appends the canonical CompactSize encoding of v to buf and
// returns the extended slice.
func Append(buf []byte, v uint64) []byte {
	switch {
	case v <= 0xfc:
		return append(buf, byte(v))
	case v <= 0xffff:
		return binary.LittleEndian.AppendUint16(append(buf, prefix2Byte), uint16(v))
	case v <= 0xffffffff:
		return binary.LittleEndian.AppendUint32(append(buf, prefix4Byte), uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(append(buf, prefix8Byte), v)
	}
}

// Decode reads one CompactSize value from the front of data and returns
// the value together with the number of bytes consumed (1, 3, 5 or 9).
// Fails with ErrInsufficientBytes when data is empty or shorter than
// the class selected by the prefix byte.
//
// Decode is permissive: any structurally well-formed prefix/length
// pairing is accepted, even when a smaller class could have held the
// value. This matches Bitcoin wire behavior. Use DecodeCanonical to
// reject oversized encodings.
func Decode(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrInsufficientBytes
	}

	switch prefix := data[0]; prefix {
	case prefix2Byte:
		if len(data) < 3 {
			return 0, 0, ErrInsufficientBytes
		}
		return uint64(binary.LittleEndian.Uint16(data[1:3])), 3, nil
	case prefix4Byte:
		if len(data) < 5 {
			return 0, 0, ErrInsufficientBytes
		}
		return uint64(binary.LittleEndian.Uint32(data[1:5])), 5, nil
	case prefix8Byte:
		if len(data) < 9 {
			return 0, 0, ErrInsufficientBytes
		}
		return binary.LittleEndian.Uint64(data[1:9]), 9, nil
	default:
		return uint64(prefix), 1, nil
	}
}

// DecodeCanonical is like Decode but additionally rejects non-minimal
// encodings with ErrNonCanonical.
func DecodeCanonical(data []byte) (uint64, int, error) {
	v, n, err := Decode(data)
	if err != nil {
		return 0, 0, err
	}
	if Size(v) != n {
		return 0, 0, ErrNonCanonical
	}
	return v, n, nil
}
