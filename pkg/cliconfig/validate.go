package cliconfig

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/getmockd/cuid2/pkg/cuid"
	"github.com/getmockd/cuid2/pkg/logging"
)

// MaxParallel bounds the number of generating goroutines.
const MaxParallel = 256

// Keys lists every setting by its YAML key, in display order.
var Keys = []string{"length", "count", "parallel", "fingerprint", "identity", "logLevel", "logFormat", "json"}

// Validate checks that every setting is usable.
func (c *CLIConfig) Validate() error {
	return c.ValidateKeys(Keys...)
}

// ValidateKeys checks only the named settings, so a command is not refused
// over a value it never reads.
func (c *CLIConfig) ValidateKeys(keys ...string) error {
	for _, key := range keys {
		if err := c.validateKey(key); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLIConfig) validateKey(key string) error {
	switch key {
	case "length":
		if c.Length < cuid.MinLength || c.Length > cuid.BigLength {
			return fmt.Errorf("length %d is out of range (%d-%d)", c.Length, cuid.MinLength, cuid.BigLength)
		}
	case "count":
		if c.Count < 1 {
			return fmt.Errorf("count %d must be at least 1", c.Count)
		}
	case "parallel":
		if c.Parallel < 1 || c.Parallel > MaxParallel {
			return fmt.Errorf("parallel %d is out of range (1-%d)", c.Parallel, MaxParallel)
		}
	case "identity":
		switch c.Identity {
		case IdentityEnv, IdentityHost, IdentityAll, IdentityNone:
		default:
			return fmt.Errorf("identity %q must be one of %s, %s, %s, %s",
				c.Identity, IdentityEnv, IdentityHost, IdentityAll, IdentityNone)
		}
	case "logLevel":
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	case "logFormat":
		if _, err := logging.ParseFormat(c.LogFormat); err != nil {
			return err
		}
	case "fingerprint", "json":
		// Any value is usable.
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// IdentitySource returns the fingerprint identity source named by c.Identity.
// Unknown names fall back to the environment.
func (c *CLIConfig) IdentitySource() cuid.IdentitySource {
	switch c.Identity {
	case IdentityHost:
		return cuid.HostSource{}
	case IdentityAll:
		return cuid.MultiSource{cuid.EnvironmentSource{}, cuid.HostSource{}}
	case IdentityNone:
		return cuid.StaticSource{}
	default:
		return cuid.EnvironmentSource{}
	}
}

// Logger builds the logger described by c, writing to out.
func (c *CLIConfig) Logger(out io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{Level: level, Format: format, Output: out}), nil
}

// GeneratorConfig returns the cuid.Config for c.
func (c *CLIConfig) GeneratorConfig(logger *slog.Logger) cuid.Config {
	return cuid.Config{
		Length:      c.Length,
		Fingerprint: c.Fingerprint,
		Identity:    c.IdentitySource(),
		Logger:      logger,
	}
}
