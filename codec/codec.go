// Package codec holds the append-style interfaces that serialization code binds
// against. Marshal side methods append to a caller supplied slice and cannot fail,
// unmarshal side methods return whatever follows the decoded value.
package codec

// Binary is a simplified form of the stdlib binary Marshal/Unmarshal interfaces.
type Binary interface {
	// Marshal appends the binary form of the value to dst.
	Marshal(dst []byte) (b []byte)
	// Unmarshal decodes the binary form at the start of b and returns the remainder.
	Unmarshal(b []byte) (rem []byte, err error)
}

// Text is the same pair of operations for a human readable form.
type Text interface {
	MarshalString(dst []byte) (b []byte)
	UnmarshalString(b []byte) (rem []byte, err error)
}

// AppendAll appends the binary forms of vs to dst in order.
func AppendAll(dst []byte, vs ...Binary) (b []byte) {
	b = dst
	for _, v := range vs {
		b = v.Marshal(b)
	}
	return
}

// UnmarshalAll decodes consecutive binary forms from b into vs, stopping at the first
// error, and returns what follows the last one.
func UnmarshalAll(b []byte, vs ...Binary) (rem []byte, err error) {
	rem = b
	for _, v := range vs {
		if rem, err = v.Unmarshal(rem); err != nil {
			return
		}
	}
	return
}
