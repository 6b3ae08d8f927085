// Package varint is a variable length encoding for unsigned integers up to 128 bits wide.
//
// Each byte carries 7 bits of the value, least significant group first, and every byte
// except the last has the high bit (0x80) set. The encoding is self delimiting and
// always minimal, so zero is the single byte 0x00 and the largest 128 bit value takes
// MaxLen (19) bytes. For values that fit in 64 bits the bytes are identical to the
// protobuf and encoding/binary Uvarint forms.
//
// The library this format comes from calls it "zig-zag", but no sign folding is done.
// Only magnitudes are encoded, and a negative signed integer given to New is sign
// extended to 128 bits rather than rejected.
//
// T is a value type wrapping a uint128.Uint128 that carries arithmetic helpers so it
// can stand in for a native integer. Every operator wraps modulo 2^128 as Go's
// unsigned integers do; the Checked variants report overflow instead.
package varint

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// MaxLen is the longest encoding of a 128 bit value, ceil(128/7).
const MaxLen = 19

// MaxLenFor returns the longest encoding of a value of the given bit width.
func MaxLenFor(bits int) int { return (bits + 6) / 7 }

var (
	// ErrInvalidSequence is returned when no terminating byte is found within MaxLen
	// bytes, or the input ends before one is found.
	ErrInvalidSequence = errors.New("invalid byte sequence")
	// ErrOverflow is returned by the Checked operators when the result does not fit
	// in 128 bits.
	ErrOverflow = errors.New("integer overflow")
	// ErrDivideByZero is returned by DivChecked and ModChecked for a zero divisor.
	ErrDivideByZero = errors.New("integer divide by zero")
)

// T is an unsigned integer of up to 128 bits.
type T struct {
	N uint128.Uint128
}

var (
	Zero = T{}
	One  = T{uint128.From64(1)}
	Max  = T{uint128.Max}
)

// New converts any Go integer to a T. Negative values are sign extended, so New(-1)
// is Max: the bit pattern is reinterpreted, not rejected.
func New[V constraints.Integer](v V) (t T) {
	t.N.Lo = uint64(v)
	if v < 0 {
		t.N.Hi = math.MaxUint64
	}
	return
}

// From128 wraps a uint128.Uint128.
func From128(u uint128.Uint128) T { return T{u} }

// FromRaw builds a T from its low and high 64 bit halves.
func FromRaw(lo, hi uint64) T { return T{uint128.New(lo, hi)} }

// To converts t to any Go integer type, truncating to the low bits.
func To[V constraints.Integer](t T) V { return V(t.N.Lo) }

func (t T) Uint128() uint128.Uint128 { return t.N }
func (t T) Uint64() uint64           { return t.N.Lo }
func (t T) Uint32() uint32           { return uint32(t.N.Lo) }
func (t T) Uint16() uint16           { return uint16(t.N.Lo) }
func (t T) Uint8() uint8             { return uint8(t.N.Lo) }
func (t T) Int64() int64             { return int64(t.N.Lo) }
func (t T) Int() int                 { return int(t.N.Lo) }

// IsUint64 reports whether t fits in 64 bits without truncation.
func (t T) IsUint64() bool { return t.N.Hi == 0 }

// Big returns t as a big.Int.
func (t T) Big() *big.Int { return t.N.Big() }

// String renders t in decimal.
func (t T) String() string { return t.N.String() }

var maxBig = new(big.Int).Lsh(big.NewInt(1), 128)

// Parse reads a decimal string, which must be in the range [0, 2^128).
func Parse(s string) (t T, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		err = errors.Errorf("invalid decimal integer %q", s)
		return
	}
	if b.Sign() < 0 || b.Cmp(maxBig) >= 0 {
		err = errors.Wrapf(ErrOverflow, "%s out of range", s)
		return
	}
	return FromBig(b), nil
}

// MustParse is Parse for constants; it panics on error.
func MustParse(s string) (t T) {
	var err error
	if t, err = Parse(s); err != nil {
		panic(err)
	}
	return
}

var mask64 = new(big.Int).SetUint64(math.MaxUint64)

// FromBig converts a non-negative big.Int, keeping only its low 128 bits.
func FromBig(b *big.Int) T {
	lo := new(big.Int).And(b, mask64).Uint64()
	hi := new(big.Int).And(new(big.Int).Rsh(b, 64), mask64).Uint64()
	return FromRaw(lo, hi)
}
