package varint

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// widthOf returns the bit width of V.
func widthOf[V constraints.Unsigned]() int { return bits.Len64(uint64(^V(0))) }

// PutUint writes the encoding of a fixed width unsigned integer into dst and returns
// the number of bytes used. The output is byte for byte the same as New(v).Encode.
func PutUint[V constraints.Unsigned](dst []byte, v V) (n int) {
	for v >= 0x80 {
		dst[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	dst[n] = byte(v)
	n++
	return
}

// AppendUint appends the encoding of a fixed width unsigned integer to dst.
func AppendUint[V constraints.Unsigned](dst []byte, v V) []byte {
	var buf [MaxLen]byte
	n := PutUint(buf[:], v)
	return append(dst, buf[:n]...)
}

// PeekUint is Peek limited to the longest encoding of V, MaxLenFor of its width.
func PeekUint[V constraints.Unsigned](b []byte) (n int, ok bool) {
	limit := MaxLenFor(widthOf[V]())
	for i := 0; i < limit && i < len(b); i++ {
		if b[i] < 0x80 {
			return i + 1, true
		}
	}
	return
}

// Uint decodes the encoding at the start of b into a V. Sequences longer than the
// longest encoding of V are ErrInvalidSequence; bits beyond the width of V in the last
// group are dropped.
func Uint[V constraints.Unsigned](b []byte) (v V, n int, err error) {
	limit := MaxLenFor(widthOf[V]())
	for i := 0; i < limit && i < len(b); i++ {
		v |= V(b[i]&0x7f) << (7 * i)
		if b[i] < 0x80 {
			n = i + 1
			return
		}
	}
	v, err = 0, ErrInvalidSequence
	return
}
