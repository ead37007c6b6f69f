package cli

import "errors"

// Common CLI errors
var (
	ErrInvalidIDs    = errors.New("one or more identifiers are invalid")
	ErrUnknownFormat = errors.New("unknown format")
	ErrNoInput       = errors.New("no input")
)
