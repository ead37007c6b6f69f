// Package cuid generates collision-resistant identifiers for processes that
// mint IDs independently of each other.
//
// Each identifier starts with a random lower-case letter followed by
// characters taken from a SHA3-256 digest, rendered in base 36, of the
// current time, a random salt, a per-generator counter and a per-process
// fingerprint.
//
// # Usage
//
// For one-off identifiers use the package-level helpers, which share a lazily
// created default generator:
//
//	id := cuid.CreateID()                 // 25 characters
//	short, err := cuid.CreateIDWithLength(10)
//
// Long-lived callers should build their own generator:
//
//	next, err := cuid.Init(cuid.Config{Length: 16})
//	if err != nil {
//	    return err
//	}
//	id := next()
//
// A Generator is safe for concurrent use: the counter advances atomically and
// everything else a call touches is call-local.
//
// # Validation
//
// IsCuid is a syntactic check only. It reports whether a string has a
// plausible length and is alphanumeric; it cannot tell whether the string was
// produced by this package.
package cuid
