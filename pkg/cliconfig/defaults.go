package cliconfig

import "github.com/getmockd/cuid2/pkg/cuid"

// DefaultLength is the default identifier length.
const DefaultLength = cuid.DefaultLength

// DefaultCount is the default number of identifiers per generate call.
const DefaultCount = 1

// DefaultParallel is the default number of generating goroutines.
const DefaultParallel = 1

// DefaultIdentity is the default fingerprint identity source.
const DefaultIdentity = IdentityEnv

// DefaultLogLevel is the default log level.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log format.
const DefaultLogFormat = "text"

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		Length:    DefaultLength,
		Count:     DefaultCount,
		Parallel:  DefaultParallel,
		Identity:  DefaultIdentity,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}

	for _, key := range []string{"length", "count", "parallel", "identity", "logLevel", "logFormat", "json"} {
		cfg.Sources[key] = SourceDefault
	}

	return cfg
}
