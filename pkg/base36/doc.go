// Package base36 converts between big-endian byte buffers and their base-36
// textual representation.
//
// The alphabet is the digits 0-9 followed by the lower-case letters a-z; a
// symbol's index in Alphabet is its numeric value. Encoding treats the input
// as an unsigned big-endian integer of arbitrary length:
//
//	s := base36.Encode([]byte{0xff, 0xff, 0xff, 0xff}) // "1z141z3"
//	b, err := base36.Decode(s)                        // []byte{0xff, 0xff, 0xff, 0xff}
//
// Leading zero bytes carry no value, so Decode returns the minimal buffer and
// the round trip is exact on numeric value rather than on byte length.
package base36
