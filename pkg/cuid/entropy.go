package cuid

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/getmockd/cuid2/pkg/base36"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// letterLimit is the largest multiple of 26 that fits in a byte; bytes at or
// above it are redrawn so every letter is equally likely.
const letterLimit = 256 - 256%len(letters)

func readRandom(random io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return buf, nil
}

// CreateEntropy returns length symbols of the base-36 alphabet, each chosen
// independently as a random byte modulo 36.
func CreateEntropy(length int, random io.Reader) (string, error) {
	if length < 1 {
		return "", &RangeError{Name: "entropy length", Value: length, Min: 1}
	}
	buf, err := readRandom(random, length)
	if err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = base36.Alphabet[int(b)%base36.Radix]
	}
	return string(buf), nil
}

func randomLetter(random io.Reader) (byte, error) {
	var buf [1]byte
	for {
		if _, err := io.ReadFull(random, buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrEntropy, err)
		}
		if int(buf[0]) < letterLimit {
			return letters[int(buf[0])%len(letters)], nil
		}
	}
}

func randomUint32(random io.Reader) (uint32, error) {
	buf, err := readRandom(random, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}
