package cuid

import (
	"os"
	"strconv"
	"strings"
)

// IdentitySource returns strings that tell one process or host apart from
// another. The result is read once, when a fingerprint is built, and may be
// empty.
type IdentitySource interface {
	Identity() []string
}

// IdentityFunc adapts a plain function to IdentitySource.
type IdentityFunc func() []string

// Identity calls f.
func (f IdentityFunc) Identity() []string { return f() }

// EnvironmentSource yields the values of the process environment in the order
// the runtime reports them.
type EnvironmentSource struct{}

// Identity returns a snapshot of the environment variable values.
func (EnvironmentSource) Identity() []string {
	environ := os.Environ()
	values := make([]string, 0, len(environ))
	for _, kv := range environ {
		_, value, _ := strings.Cut(kv, "=")
		values = append(values, value)
	}
	return values
}

// HostSource yields the host name, process ids and, where the platform
// reports them, the kernel identification fields.
type HostSource struct{}

// Identity returns the host and process identifiers that could be read.
func (HostSource) Identity() []string {
	var values []string
	if name, err := os.Hostname(); err == nil {
		values = append(values, name)
	}
	values = append(values, strconv.Itoa(os.Getpid()), strconv.Itoa(os.Getppid()))
	return append(values, platformIdentity()...)
}

// StaticSource is a fixed snapshot, mostly useful in tests.
type StaticSource []string

// Identity returns a copy of s.
func (s StaticSource) Identity() []string {
	return append([]string(nil), s...)
}

// MultiSource concatenates the identities of several sources in order.
type MultiSource []IdentitySource

// Identity returns the values of every source, skipping nil entries.
func (m MultiSource) Identity() []string {
	var values []string
	for _, src := range m {
		if src == nil {
			continue
		}
		values = append(values, src.Identity()...)
	}
	return values
}
