package varint

import (
	"fmt"

	"github.com/pkg/errors"

	"varuint.lol/codec"
)

var (
	_ codec.Binary = (*T)(nil)
	_ codec.Text   = (*T)(nil)
)

// MarshalBinary returns the varint encoding of t. encoding/gob and other frameworks that
// understand encoding.BinaryMarshaler use it.
func (t T) MarshalBinary() (data []byte, err error) { return t.Bytes(), nil }

// UnmarshalBinary decodes data, which must hold exactly one encoding.
func (t *T) UnmarshalBinary(data []byte) (err error) {
	var v T
	var n int
	if v, n, err = Decode(data); err != nil {
		return
	}
	if n != len(data) {
		return errors.Wrapf(ErrInvalidSequence, "%d trailing bytes after value",
			len(data)-n)
	}
	*t = v
	return
}

// MarshalText renders t in decimal, so encoding/json writes it as a string.
func (t T) MarshalText() (text []byte, err error) { return []byte(t.String()), nil }

// UnmarshalText parses decimal text.
func (t *T) UnmarshalText(text []byte) (err error) {
	var v T
	if v, err = Parse(string(text)); err != nil {
		return
	}
	*t = v
	return
}

// MarshalString appends the decimal form of t to dst.
func (t *T) MarshalString(dst []byte) (b []byte) { return append(dst, t.String()...) }

// UnmarshalString reads a decimal number at the start of b, returning what follows the
// digits.
func (t *T) UnmarshalString(b []byte) (rem []byte, err error) {
	var i int
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}
	if i == 0 {
		err = errors.New("no decimal digits")
		rem = b
		return
	}
	if err = t.UnmarshalText(b[:i]); err != nil {
		rem = b
		return
	}
	rem = b[i:]
	return
}

// Format implements fmt.Formatter with the verbs big.Int supports.
func (t T) Format(s fmt.State, verb rune) { t.Big().Format(s, verb) }
