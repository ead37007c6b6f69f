package cliconfig

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvConfig names the environment variable holding an explicit config path.
const EnvConfig = "CUID2_CONFIG"

// LoadEnvConfig applies CUID2_* environment variables to cfg. Only variables
// that are present and non-empty change cfg. A nil environ reads the process
// environment.
func LoadEnvConfig(cfg *CLIConfig, environ map[string]string) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	keys := envKeys()
	opts := env.Options{
		Environment: environ,
		OnSet: func(tag string, value any, _ bool) {
			if s, ok := value.(string); ok && s != "" {
				if key, ok := keys[tag]; ok {
					cfg.Sources[key] = SourceEnv
				}
			}
		},
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// EnvVars returns the environment variable names CLIConfig understands,
// keyed by YAML key.
func EnvVars() map[string]string {
	out := make(map[string]string)
	for envName, key := range envKeys() {
		out[key] = envName
	}
	return out
}

// envKeys maps each env tag of CLIConfig to the field's YAML key.
func envKeys() map[string]string {
	keys := make(map[string]string)
	t := reflect.TypeOf(CLIConfig{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		envName := f.Tag.Get("env")
		if envName == "" {
			continue
		}
		yamlKey, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		keys[envName] = yamlKey
	}
	return keys
}
