package varint

import (
	"io"

	"varuint.lol/chk"
)

// Write encodes t and hands it to w in a single Write call. The count is whatever w
// accepted, which a partial writer may leave short of t.Len(); w's error is returned
// unchanged.
func (t T) Write(w io.Writer) (n int, err error) {
	var buf [MaxLen]byte
	l := t.Encode(buf[:])
	if n, err = w.Write(buf[:l]); chk.T(err) {
		return
	}
	return
}

// WriteTo implements io.WriterTo. Unlike Write it reports a short write as
// io.ErrShortWrite.
func (t T) WriteTo(w io.Writer) (n int64, err error) {
	var c int
	c, err = t.Write(w)
	n = int64(c)
	if err == nil && c != t.Len() {
		err = io.ErrShortWrite
	}
	return
}

// Read reads one encoding from r a byte at a time, so nothing past the encoding is
// consumed. If r ends before the first byte the error is io.EOF, and if it ends part
// way through an encoding it is io.ErrUnexpectedEOF. Other errors from r are returned
// unchanged.
func Read(r io.Reader) (t T, err error) {
	t, _, err = read(r)
	return
}

// ReadFrom implements io.ReaderFrom, decoding one value from r into t.
func (t *T) ReadFrom(r io.Reader) (n int64, err error) {
	var c int
	var v T
	if v, c, err = read(r); err != nil {
		n = int64(c)
		return
	}
	*t, n = v, int64(c)
	return
}

func read(r io.Reader) (t T, n int, err error) {
	var buf [MaxLen]byte
	br, _ := r.(io.ByteReader)
	for n < MaxLen {
		if br != nil {
			buf[n], err = br.ReadByte()
		} else {
			_, err = io.ReadFull(r, buf[n:n+1])
		}
		if err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			chk.T(err)
			return
		}
		n++
		if _, ok := Peek(buf[:n]); ok {
			if t, _, err = Decode(buf[:n]); chk.E(err) {
				return
			}
			return
		}
	}
	err = ErrInvalidSequence
	return
}

// ScanVarints is a bufio.SplitFunc that returns each encoding in the input as a token,
// framed with Peek. An overlong sequence is ErrInvalidSequence and input that ends part
// way through an encoding is io.ErrUnexpectedEOF.
func ScanVarints(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return
	}
	if n, ok := Peek(data); ok {
		return n, data[:n], nil
	}
	if len(data) >= MaxLen {
		err = ErrInvalidSequence
		return
	}
	if atEOF {
		err = io.ErrUnexpectedEOF
	}
	return
}
