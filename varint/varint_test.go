package varint

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"lukechampine.com/frand"
)

// random returns a random value whose bit length is spread evenly over 0 to 128, so
// that every encoded length gets exercised.
func random() T {
	v := FromRaw(frand.Uint64n(math.MaxUint64), frand.Uint64n(math.MaxUint64))
	return v.Rsh(uint(frand.Intn(129)))
}

func TestEncodeKnownValues(t *testing.T) {
	for _, tc := range []struct {
		v   T
		enc []byte
	}{
		{New(0), []byte{0x00}},
		{New(1), []byte{0x01}},
		{New(127), []byte{0x7f}},
		{New(128), []byte{0x80, 0x01}},
		{New(2048), []byte{128, 16}},
		{New(16383), []byte{0xff, 0x7f}},
		{New(16384), []byte{0x80, 0x80, 0x01}},
		{New(345678), []byte{206, 140, 21}},
		{New(uint64(math.MaxUint64)), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0x01}},
		{FromRaw(0, 1), []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x02}},
		{Max, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x03}},
	} {
		require.Equal(t, tc.enc, tc.v.Bytes(), "value %s", tc.v)
		require.Equal(t, len(tc.enc), tc.v.Len(), "value %s", tc.v)
		v, n, err := Decode(tc.enc)
		require.NoError(t, err)
		require.Equal(t, len(tc.enc), n)
		require.True(t, v.Equal(tc.v), "expected %s got %s", tc.v, v)
	}
}

func TestMaxLen(t *testing.T) {
	require.Equal(t, MaxLen, MaxLenFor(128))
	require.Len(t, Max.Bytes(), MaxLen)
	require.Equal(t, 10, MaxLenFor(64))
	require.Equal(t, 5, MaxLenFor(32))
	require.Equal(t, 2, MaxLenFor(8))
}

func TestEncodeDecode(t *testing.T) {
	buf := make([]byte, MaxLen)
	for range 1000000 {
		v := random()
		n := v.Encode(buf)
		u, m, err := Decode(buf[:n])
		if err != nil {
			t.Fatal(err)
		}
		if m != n {
			t.Fatalf("encoded %d bytes, decoded %d", n, m)
		}
		if !u.Equal(v) {
			t.Fatalf("expected %s got %s", v, u)
		}
	}
}

func TestMinimalLength(t *testing.T) {
	for range 100000 {
		v := random()
		b := v.Bytes()
		want := 1
		if bits := v.BitLen(); bits > 0 {
			want = (bits + 6) / 7
		}
		if len(b) != want || v.Len() != want {
			t.Fatalf("value %s: expected %d bytes got %d (Len %d)", v, want, len(b), v.Len())
		}
		if len(b) > 1 && b[len(b)-1] == 0 {
			t.Fatalf("value %s: trailing zero group in %x", v, b)
		}
		for i, c := range b {
			if (c&0x80 != 0) != (i < len(b)-1) {
				t.Fatalf("value %s: continuation bit wrong at byte %d of %x", v, i, b)
			}
		}
	}
}

func TestPeek(t *testing.T) {
	for range 100000 {
		b := random().Bytes()
		n, ok := Peek(b)
		if !ok || n != len(b) {
			t.Fatalf("peek %x: expected %d got %d %v", b, len(b), n, ok)
		}
		if n, ok = Peek(append(b, 0x80, 0x01)); !ok || n != len(b) {
			t.Fatalf("peek with trailing bytes %x: expected %d got %d %v", b, len(b), n, ok)
		}
		for i := range b {
			if _, ok = Peek(b[:i]); ok {
				t.Fatalf("peek accepted truncated prefix %x of %x", b[:i], b)
			}
		}
	}
	_, ok := Peek(nil)
	require.False(t, ok)
	_, ok = Peek([]byte{})
	require.False(t, ok)
	n, ok := Peek([]byte{0x34})
	require.True(t, ok)
	require.Equal(t, 1, n)
}

func TestOverlong(t *testing.T) {
	b := bytes.Repeat([]byte{0x80}, MaxLen)
	_, ok := Peek(b)
	require.False(t, ok)
	_, _, err := Decode(b)
	require.ErrorIs(t, err, ErrInvalidSequence)
	// a terminator after MaxLen bytes is never reached.
	b = append(b, 0x00)
	_, ok = Peek(b)
	require.False(t, ok)
	_, _, err = Decode(b)
	require.ErrorIs(t, err, ErrInvalidSequence)
}

func TestDecodeInvalid(t *testing.T) {
	for _, b := range [][]byte{nil, {}, {0x80}, {0xff, 0xff}, bytes.Repeat([]byte{0xff}, 18)} {
		_, _, err := Decode(b)
		require.ErrorIs(t, err, ErrInvalidSequence, "decoding %x", b)
	}
}

func TestDecodeNonMinimal(t *testing.T) {
	v, n, err := Decode([]byte{0x81, 0x80, 0x00})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.True(t, v.Equal(One))
}

func TestDecodeDropsBitsBeyond128(t *testing.T) {
	b := append(bytes.Repeat([]byte{0xff}, MaxLen-1), 0x7f)
	v, n, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, MaxLen, n)
	require.True(t, v.Equal(Max))
}

func TestUnmarshal(t *testing.T) {
	var b []byte
	values := make([]T, 1000)
	for i := range values {
		values[i] = random()
		b = values[i].Append(b)
	}
	rem := b
	for i := range values {
		var v T
		var err error
		if rem, err = v.Unmarshal(rem); err != nil {
			t.Fatal(err)
		}
		if !v.Equal(values[i]) {
			t.Fatalf("value %d: expected %s got %s", i, values[i], v)
		}
	}
	require.Empty(t, rem)
	var v T
	rem, err := v.Unmarshal([]byte{0x80})
	require.ErrorIs(t, err, ErrInvalidSequence)
	require.Equal(t, []byte{0x80}, rem)
}

func TestProtowireAgreement(t *testing.T) {
	for range 100000 {
		u := random().Uint64()
		b := New(u).Bytes()
		require.Equal(t, protowire.AppendVarint(nil, u), b)
		require.Equal(t, protowire.SizeVarint(u), len(b))
		pv, pn := protowire.ConsumeVarint(b)
		v, n, err := Decode(b)
		require.NoError(t, err)
		require.Equal(t, pn, n)
		require.Equal(t, pv, v.Uint64())
	}
}

func TestEncodeShortBufferPanics(t *testing.T) {
	require.Panics(t, func() { New(128).Encode(make([]byte, 1)) })
	require.Panics(t, func() { New(0).Encode(nil) })
}

func TestNewSignExtends(t *testing.T) {
	require.True(t, New(int8(-1)).Equal(Max))
	require.True(t, New(-1).Equal(Max))
	require.True(t, New(int64(math.MinInt64)).Equal(FromRaw(1<<63, math.MaxUint64)))
	require.True(t, New(uint8(255)).Equal(New(255)))
	require.Equal(t, int8(-1), To[int8](Max))
	require.Equal(t, uint16(0x3456), To[uint16](FromRaw(0x123456, 7)))
	require.Equal(t, int64(-2), New(-2).Int64())
	require.Len(t, New(-1).Bytes(), MaxLen)
}

func TestParse(t *testing.T) {
	v, err := Parse("340282366920938463463374607431768211455")
	require.NoError(t, err)
	require.True(t, v.Equal(Max))
	require.Equal(t, "340282366920938463463374607431768211455", Max.String())
	v, err = Parse("18446744073709551616")
	require.NoError(t, err)
	require.True(t, v.Equal(FromRaw(0, 1)))
	for _, s := range []string{"", "-1", "abc", "340282366920938463463374607431768211456"} {
		_, err = Parse(s)
		require.Error(t, err, "parsing %q", s)
	}
	for range 10000 {
		v = random()
		u, err := Parse(v.String())
		require.NoError(t, err)
		require.True(t, u.Equal(v))
	}
}

func BenchmarkCodec(bb *testing.B) {
	const nTests = 10000
	values := make([]T, nTests)
	encoded := make([][]byte, nTests)
	for i := range values {
		values[i] = random()
		encoded[i] = values[i].Bytes()
	}
	buf := make([]byte, MaxLen)
	bb.Run("Encode", func(bb *testing.B) {
		bb.ReportAllocs()
		for i := 0; i < bb.N; i++ {
			values[i%nTests].Encode(buf)
		}
	})
	bb.Run("Decode", func(bb *testing.B) {
		bb.ReportAllocs()
		for i := 0; i < bb.N; i++ {
			_, _, _ = Decode(encoded[i%nTests])
		}
	})
	bb.Run("Peek", func(bb *testing.B) {
		bb.ReportAllocs()
		for i := 0; i < bb.N; i++ {
			_, _ = Peek(encoded[i%nTests])
		}
	})
	bb.Run("AppendUvarint", func(bb *testing.B) {
		bb.ReportAllocs()
		for i := 0; i < bb.N; i++ {
			buf = protowire.AppendVarint(buf[:0], values[i%nTests].Uint64())
		}
	})
}
