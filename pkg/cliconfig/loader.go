package cliconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "cuid2"
)

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".cuid2.yaml", ".cuid2.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches for .cuid2.yaml or .cuid2.yml in the current directory.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return firstExisting(cwd, LocalConfigFileNames), nil
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir means no global config
		return "", nil
	}
	return firstExisting(filepath.Join(configDir, GlobalConfigDir), GlobalConfigFileNames), nil
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadConfigFile loads a CLIConfig from a YAML file.
func LoadConfigFile(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Message: strings.TrimPrefix(err.Error(), "yaml: ")}
	}

	// Decode the keys once more to learn which ones were present.
	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}
	cfg.SetFields = make(map[string]bool, len(keys))
	for key := range keys {
		cfg.SetFields[key] = true
	}
	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// ConfigError represents a configuration file error.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// LoadAll loads configuration from files and the process environment.
// Precedence: env > explicit file > local config > global config > defaults.
// explicitPath may be empty; CUID2_CONFIG is consulted in that case.
func LoadAll(explicitPath string) (*CLIConfig, error) {
	return LoadAllFrom(explicitPath, nil)
}

// LoadAllFrom is LoadAll with an explicit environment. A nil environ reads
// the process environment.
func LoadAllFrom(explicitPath string, environ map[string]string) (*CLIConfig, error) {
	cfg := NewDefault()

	if globalPath, err := FindGlobalConfig(); err == nil && globalPath != "" {
		if err := mergeFile(cfg, globalPath, SourceGlobal); err != nil {
			return nil, err
		}
	}

	if localPath, err := FindLocalConfig(); err == nil && localPath != "" {
		if err := mergeFile(cfg, localPath, SourceLocal); err != nil {
			return nil, err
		}
	}

	if explicitPath == "" {
		explicitPath = lookupEnv(environ, EnvConfig)
	}
	if explicitPath != "" {
		if err := mergeFile(cfg, explicitPath, SourceFile); err != nil {
			return nil, err
		}
	}

	if err := LoadEnvConfig(cfg, environ); err != nil {
		return nil, err
	}

	return cfg, nil
}

func mergeFile(cfg *CLIConfig, path, source string) error {
	fileCfg, err := LoadConfigFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return err
	}
	MergeConfig(cfg, fileCfg, source)
	return nil
}

func lookupEnv(environ map[string]string, key string) string {
	if environ == nil {
		return os.Getenv(key)
	}
	return environ[key]
}
