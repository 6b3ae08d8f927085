package varint

// Encode writes the minimal encoding of t into dst and returns the number of bytes
// used. dst must have room for t.Len() bytes, MaxLen covers every value; a shorter
// buffer panics.
func (t T) Encode(dst []byte) (n int) {
	lo, hi := t.N.Lo, t.N.Hi
	for hi != 0 || lo >= 0x80 {
		dst[n] = byte(lo) | 0x80
		lo = lo>>7 | hi<<57
		hi >>= 7
		n++
	}
	dst[n] = byte(lo)
	n++
	return
}

// Append appends the encoding of t to dst.
func (t T) Append(dst []byte) (b []byte) {
	var buf [MaxLen]byte
	n := t.Encode(buf[:])
	return append(dst, buf[:n]...)
}

// Bytes returns the encoding of t in a new slice of exactly the encoded length.
func (t T) Bytes() (b []byte) {
	b = make([]byte, t.Len())
	t.Encode(b)
	return
}

// Len returns the number of bytes the encoding of t occupies.
func (t T) Len() int {
	bits := 128 - t.N.LeadingZeros()
	if bits == 0 {
		return 1
	}
	return MaxLenFor(bits)
}

// Peek returns the length of the encoding at the start of b without decoding it. ok is
// false if b is empty, ends before a terminating byte, or holds MaxLen bytes that all
// have the continuation bit set.
func Peek(b []byte) (n int, ok bool) {
	for i := 0; i < MaxLen && i < len(b); i++ {
		if b[i] < 0x80 {
			return i + 1, true
		}
	}
	return
}

// Decode reads the encoding at the start of b, returning the value and the number of
// bytes it occupied. Bytes after the encoding are ignored. Bits beyond the 128th, which
// only a 19th byte with a value above 3 can carry, are dropped.
func Decode(b []byte) (t T, n int, err error) {
	var lo, hi uint64
	for i := 0; i < MaxLen; i++ {
		if i >= len(b) {
			break
		}
		g, s := uint64(b[i]&0x7f), uint(7*i)
		if s < 64 {
			lo |= g << s
			if s > 57 {
				hi |= g >> (64 - s)
			}
		} else {
			hi |= g << (s - 64)
		}
		if b[i] < 0x80 {
			t, n = FromRaw(lo, hi), i+1
			return
		}
	}
	err = ErrInvalidSequence
	return
}

// Unmarshal decodes the encoding at the start of b into t and returns whatever follows
// it.
func (t *T) Unmarshal(b []byte) (rem []byte, err error) {
	var n int
	if *t, n, err = Decode(b); err != nil {
		rem = b
		return
	}
	rem = b[n:]
	return
}

// Marshal appends the encoding of t to dst.
func (t *T) Marshal(dst []byte) (b []byte) { return t.Append(dst) }
