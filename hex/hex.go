// Package hex renders and parses hexadecimal byte strings using the SIMD accelerated
// xhex encoder.
package hex

import (
	"encoding/hex"

	"github.com/templexxx/xhex"

	"varuint.lol/chk"
)

var Enc = hex.EncodeToString

// EncAppend appends the lower case hex form of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	b = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(b[l:], src)
	return
}

// DecAppend appends the bytes encoded in the hex string src to dst.
func DecAppend(dst, src []byte) (b []byte, err error) {
	if len(src)%2 != 0 {
		err = hex.ErrLength
		return
	}
	l := len(dst)
	b = append(dst, make([]byte, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); chk.D(err) {
		b = b[:l]
		return
	}
	return
}

// Dec decodes a hex string.
func Dec(s string) (b []byte, err error) { return DecAppend(nil, []byte(s)) }
