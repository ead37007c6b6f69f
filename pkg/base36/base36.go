package base36

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Alphabet holds the 36 digit symbols in value order.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Radix is the numeric base of the encoding.
const Radix = len(Alphabet)

// bitsPerDigit is log2(36).
var bitsPerDigit = math.Log2(float64(Radix))

var bigRadix = big.NewInt(int64(Radix))

// ErrInvalidCharacter is matched by errors returned from Decode when the input
// holds a symbol outside Alphabet.
var ErrInvalidCharacter = errors.New("invalid base36 character")

// InvalidCharacterError reports the first offending symbol in a decoded string.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base36 character %q at position %d", e.Char, e.Pos)
}

// Is reports whether target is ErrInvalidCharacter.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// EstimateLength returns the number of digits needed to hold nbytes bytes.
// It is a capacity hint; encoded values may be shorter.
func EstimateLength(nbytes int) int {
	if nbytes <= 0 {
		return 1
	}
	return int(math.Ceil(float64(nbytes*8) / bitsPerDigit))
}

// Encode returns the base-36 digits of b read as an unsigned big-endian
// integer, most significant digit first. A zero value encodes as "0".
func Encode(b []byte) string {
	dividend := new(big.Int).SetBytes(b)
	if dividend.Sign() == 0 {
		return "0"
	}

	digits := make([]byte, 0, EstimateLength(len(b)))
	remainder := new(big.Int)
	for dividend.Sign() > 0 {
		dividend.DivMod(dividend, bigRadix, remainder)
		digits = append(digits, Alphabet[remainder.Int64()])
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// EncodeUint64 encodes n through its 8-byte big-endian form.
func EncodeUint64(n uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	return Encode(buf[:])
}

// Decode parses s, most significant digit first, and returns the minimal
// big-endian buffer holding its value. Only lower-case symbols are accepted.
// An empty string or a string of zeros decodes to an empty buffer.
func Decode(s string) ([]byte, error) {
	value := new(big.Int)
	digit := new(big.Int)
	for pos, c := range s {
		idx := -1
		if c < 0x80 {
			idx = strings.IndexByte(Alphabet, byte(c))
		}
		if idx < 0 {
			return nil, &InvalidCharacterError{Char: c, Pos: pos}
		}
		value.Mul(value, bigRadix)
		value.Add(value, digit.SetInt64(int64(idx)))
	}
	return value.Bytes(), nil
}
