// Package cliconfig provides configuration types and loading for the cuid2 CLI.
package cliconfig

// CLIConfig represents the complete configuration for the cuid2 CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables (CUID2_*)
// 3. Explicit config file (--config or CUID2_CONFIG)
// 4. Local config file (.cuid2.yaml in current directory)
// 5. Global config file (~/.config/cuid2/config.yaml)
// 6. Default values (lowest priority)
type CLIConfig struct {
	// Generation settings
	Length      int    `yaml:"length" json:"length" env:"CUID2_LENGTH"`
	Count       int    `yaml:"count" json:"count" env:"CUID2_COUNT"`
	Parallel    int    `yaml:"parallel" json:"parallel" env:"CUID2_PARALLEL"`
	Fingerprint string `yaml:"fingerprint,omitempty" json:"fingerprint,omitempty" env:"CUID2_FINGERPRINT"`
	Identity    string `yaml:"identity" json:"identity" env:"CUID2_IDENTITY"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel" env:"CUID2_LOG_LEVEL"`
	LogFormat string `yaml:"logFormat" json:"logFormat" env:"CUID2_LOG_FORMAT"`

	// Output settings
	JSON bool `yaml:"json" json:"json" env:"CUID2_JSON"`

	// Sources tracks where each value came from (for `config show`).
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records which keys were present in a loaded file, so that an
	// explicit false or zero can still override a lower layer.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Identity source names accepted by the identity setting.
const (
	IdentityEnv  = "env"
	IdentityHost = "host"
	IdentityAll  = "all"
	IdentityNone = "none"
)
