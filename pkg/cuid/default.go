package cuid

import (
	"fmt"
	"sync"
)

var defaultGenerator = sync.OnceValues(func() (*Generator, error) {
	return New(Config{})
})

func mustDefault() *Generator {
	g, err := defaultGenerator()
	if err != nil {
		panic(fmt.Errorf("cuid: default generator: %w", err))
	}
	return g
}

// CreateID returns an identifier of DefaultLength from the process-wide
// default generator.
func CreateID() string {
	return mustDefault().Generate()
}

// CreateIDWithLength returns an identifier of the given length. The default
// generator's fingerprint and counter are shared across lengths.
func CreateIDWithLength(length int) (string, error) {
	if err := checkLength(length); err != nil {
		return "", err
	}
	return mustDefault().withLength(length).Generate(), nil
}
