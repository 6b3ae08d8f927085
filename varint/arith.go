package varint

import (
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// The operators wrap modulo 2^128. Div and Mod panic on a zero divisor as Go's
// integer division does.

func (t T) Add(u T) T    { return T{t.N.AddWrap(u.N)} }
func (t T) Sub(u T) T    { return T{t.N.SubWrap(u.N)} }
func (t T) Mul(u T) T    { return T{t.N.MulWrap(u.N)} }
func (t T) And(u T) T    { return T{t.N.And(u.N)} }
func (t T) Or(u T) T     { return T{t.N.Or(u.N)} }
func (t T) Xor(u T) T    { return T{t.N.Xor(u.N)} }
func (t T) AndNot(u T) T { return t.And(u.Not()) }

func (t T) Div(u T) T {
	if u.IsZero() {
		panic(ErrDivideByZero)
	}
	return T{t.N.Div(u.N)}
}

func (t T) Mod(u T) T {
	if u.IsZero() {
		panic(ErrDivideByZero)
	}
	return T{t.N.Mod(u.N)}
}

// Lsh shifts t left by n bits; shifts of 128 or more give zero.
func (t T) Lsh(n uint) T {
	if n >= 128 {
		return Zero
	}
	return T{t.N.Lsh(n)}
}

// Rsh shifts t right by n bits; shifts of 128 or more give zero.
func (t T) Rsh(n uint) T {
	if n >= 128 {
		return Zero
	}
	return T{t.N.Rsh(n)}
}

func (t T) Cmp(u T) int    { return t.N.Cmp(u.N) }
func (t T) Equal(u T) bool { return t.N.Equals(u.N) }
func (t T) Less(u T) bool  { return t.N.Cmp(u.N) < 0 }
func (t T) IsZero() bool   { return t.N.IsZero() }
func (t T) BitLen() int    { return 128 - t.N.LeadingZeros() }
func (t T) OnesCount() int { return t.N.OnesCount() }
func (t T) Inc() T         { return t.Add(One) }
func (t T) Dec() T         { return t.Sub(One) }
func (t T) Not() T         { return T{uint128.New(^t.N.Lo, ^t.N.Hi)} }

// AddChecked returns t+u, or ErrOverflow if the sum exceeds Max.
func (t T) AddChecked(u T) (s T, err error) {
	if s = t.Add(u); s.Less(t) {
		return Zero, ErrOverflow
	}
	return
}

// SubChecked returns t-u, or ErrOverflow if u is greater than t.
func (t T) SubChecked(u T) (d T, err error) {
	if t.Less(u) {
		return Zero, ErrOverflow
	}
	return t.Sub(u), nil
}

// MulChecked returns t*u, or ErrOverflow if the product exceeds Max.
func (t T) MulChecked(u T) (p T, err error) {
	p = t.Mul(u)
	if !t.IsZero() && !p.Div(t).Equal(u) {
		return Zero, ErrOverflow
	}
	return
}

// DivChecked returns t/u, or ErrDivideByZero.
func (t T) DivChecked(u T) (q T, err error) {
	if u.IsZero() {
		return Zero, ErrDivideByZero
	}
	return t.Div(u), nil
}

// ModChecked returns t%u, or ErrDivideByZero.
func (t T) ModChecked(u T) (r T, err error) {
	if u.IsZero() {
		return Zero, ErrDivideByZero
	}
	return t.Mod(u), nil
}

// The N variants take any Go integer as the right hand operand, converted with New, so a
// negative operand is sign extended first.

func AddN[V constraints.Integer](t T, v V) T { return t.Add(New(v)) }
func SubN[V constraints.Integer](t T, v V) T { return t.Sub(New(v)) }
func MulN[V constraints.Integer](t T, v V) T { return t.Mul(New(v)) }
func DivN[V constraints.Integer](t T, v V) T { return t.Div(New(v)) }
func ModN[V constraints.Integer](t T, v V) T { return t.Mod(New(v)) }
func AndN[V constraints.Integer](t T, v V) T { return t.And(New(v)) }
func OrN[V constraints.Integer](t T, v V) T  { return t.Or(New(v)) }
func XorN[V constraints.Integer](t T, v V) T { return t.Xor(New(v)) }

// Sum adds up vs, wrapping on overflow.
func Sum(vs ...T) (s T) {
	for _, v := range vs {
		s = s.Add(v)
	}
	return
}

// Product multiplies vs, wrapping on overflow. The product of nothing is One.
func Product(vs ...T) (p T) {
	p = One
	for _, v := range vs {
		p = p.Mul(v)
	}
	return
}

// SumOf adds up raw integers as T.
func SumOf[V constraints.Integer](vs ...V) (s T) {
	for _, v := range vs {
		s = s.Add(New(v))
	}
	return
}

// ProductOf multiplies raw integers as T.
func ProductOf[V constraints.Integer](vs ...V) (p T) {
	p = One
	for _, v := range vs {
		p = p.Mul(New(v))
	}
	return
}
