package varint

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"varuint.lol/codec"
)

type record struct {
	ID    T
	Count T
	Name  string
}

func TestBinaryMarshaler(t *testing.T) {
	for range 10000 {
		v := random()
		b, err := v.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, v.Bytes(), b)
		var u T
		require.NoError(t, u.UnmarshalBinary(b))
		require.True(t, u.Equal(v))
	}
	var u T
	require.ErrorIs(t, u.UnmarshalBinary([]byte{0x01, 0x02}), ErrInvalidSequence)
	require.ErrorIs(t, u.UnmarshalBinary(nil), ErrInvalidSequence)
	require.ErrorIs(t, u.UnmarshalBinary([]byte{0x80}), ErrInvalidSequence)
}

func TestGob(t *testing.T) {
	in := record{ID: Max, Count: New(345678), Name: "x"}
	buf := new(bytes.Buffer)
	require.NoError(t, gob.NewEncoder(buf).Encode(in))
	var out record
	require.NoError(t, gob.NewDecoder(buf).Decode(&out))
	require.True(t, out.ID.Equal(in.ID))
	require.True(t, out.Count.Equal(in.Count))
	require.Equal(t, in.Name, out.Name)
}

func TestJSON(t *testing.T) {
	in := record{ID: Max, Count: New(7), Name: "y"}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"ID":"340282366920938463463374607431768211455","Count":"7","Name":"y"}`,
		string(b))
	var out record
	require.NoError(t, json.Unmarshal(b, &out))
	require.True(t, out.ID.Equal(in.ID))
	require.True(t, out.Count.Equal(in.Count))
	require.Error(t, json.Unmarshal([]byte(`{"ID":"-3"}`), &out))
}

func TestCodecInterfaces(t *testing.T) {
	a, b, c := New(128), Max, Zero
	enc := codec.AppendAll(nil, &a, &b, &c)
	require.Equal(t, append(append(a.Bytes(), b.Bytes()...), c.Bytes()...), enc)
	var x, y, z T
	rem, err := codec.UnmarshalAll(append(enc, 0xee), &x, &y, &z)
	require.NoError(t, err)
	require.Equal(t, []byte{0xee}, rem)
	require.True(t, x.Equal(a) && y.Equal(b) && z.Equal(c))
	_, err = codec.UnmarshalAll(enc[:2], &x, &y)
	require.ErrorIs(t, err, ErrInvalidSequence)

	s := a.MarshalString([]byte("n="))
	require.Equal(t, "n=128", string(s))
	rem, err = x.UnmarshalString([]byte("345678,rest"))
	require.NoError(t, err)
	require.Equal(t, ",rest", string(rem))
	require.True(t, x.Equal(New(345678)))
	_, err = x.UnmarshalString([]byte("abc"))
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	v := New(345678)
	require.Equal(t, "345678", fmt.Sprint(v))
	require.Equal(t, "345678", fmt.Sprintf("%d", v))
	require.Equal(t, "5464e", fmt.Sprintf("%x", v))
	require.Equal(t, "0X5464E", fmt.Sprintf("%#X", v))
	require.Equal(t, "[  345678]", fmt.Sprintf("[%8d]", v))
	require.Equal(t, "ffffffffffffffffffffffffffffffff", fmt.Sprintf("%x", Max))
}
