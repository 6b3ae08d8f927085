// Package bin frames byte strings with a varint length prefix.
package bin

import (
	"varuint.lol/errorf"
	"varuint.lol/varint"
)

// Size returns the framed length of src.
func Size(src []byte) int { return varint.New(len(src)).Len() + len(src) }

// Append appends the length of src as a varint followed by src itself.
func Append(dst, src []byte) (b []byte) {
	// grow once for both prefix and body.
	if minLen := len(dst) + Size(src); cap(dst) < minLen {
		tmp := make([]byte, 0, minLen)
		dst = append(tmp, dst...)
	}
	b = varint.New(len(src)).Append(dst)
	b = append(b, src...)
	return
}

// Extract decodes one framed string from b and returns it along with what follows it.
// str aliases b.
func Extract(b []byte) (str, rem []byte, err error) {
	read, ok := varint.Peek(b)
	if !ok {
		err = varint.ErrInvalidSequence
		return
	}
	var l varint.T
	if l, _, err = varint.Decode(b[:read]); err != nil {
		return
	}
	if !l.IsUint64() || l.Uint64() > uint64(len(b)-read) {
		err = errorf.E("insufficient data in buffer, require %s have %d",
			l.Add(varint.New(read)), len(b))
		return
	}
	end := read + l.Int()
	str, rem = b[read:end], b[end:]
	return
}
