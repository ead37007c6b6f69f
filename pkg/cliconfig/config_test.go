package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/cuid2/pkg/cuid"
)

// isolate points the global and local config lookups at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	work := filepath.Join(dir, "work")
	require.NoError(t, os.MkdirAll(work, 0o755))
	t.Chdir(work)
	return work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCLIConfig_Validate(t *testing.T) {
	valid := func() CLIConfig { return *NewDefault() }

	tests := []struct {
		name    string
		mutate  func(*CLIConfig)
		wantErr string
	}{
		{name: "valid defaults", mutate: func(*CLIConfig) {}},
		{name: "min length", mutate: func(c *CLIConfig) { c.Length = 2 }},
		{name: "max length", mutate: func(c *CLIConfig) { c.Length = 32 }},
		{name: "length too short", mutate: func(c *CLIConfig) { c.Length = 1 }, wantErr: "length 1 is out of range (2-32)"},
		{name: "length too long", mutate: func(c *CLIConfig) { c.Length = 33 }, wantErr: "length 33 is out of range (2-32)"},
		{name: "zero count", mutate: func(c *CLIConfig) { c.Count = 0 }, wantErr: "count 0 must be at least 1"},
		{name: "zero parallel", mutate: func(c *CLIConfig) { c.Parallel = 0 }, wantErr: "parallel 0 is out of range (1-256)"},
		{name: "huge parallel", mutate: func(c *CLIConfig) { c.Parallel = 1000 }, wantErr: "parallel 1000 is out of range (1-256)"},
		{name: "host identity", mutate: func(c *CLIConfig) { c.Identity = IdentityHost }},
		{name: "unknown identity", mutate: func(c *CLIConfig) { c.Identity = "dns" }, wantErr: `identity "dns" must be one of env, host, all, none`},
		{name: "unknown log level", mutate: func(c *CLIConfig) { c.LogLevel = "loud" }, wantErr: `unknown log level "loud"`},
		{name: "unknown log format", mutate: func(c *CLIConfig) { c.LogFormat = "xml" }, wantErr: `unknown log format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCLIConfig_ValidateKeys(t *testing.T) {
	cfg := NewDefault()
	cfg.Length = 50
	cfg.LogLevel = "loud"

	assert.NoError(t, cfg.ValidateKeys())
	assert.NoError(t, cfg.ValidateKeys("json", "identity", "fingerprint"))
	assert.EqualError(t, cfg.ValidateKeys("identity", "length"), "length 50 is out of range (2-32)")
	assert.ErrorContains(t, cfg.ValidateKeys("logLevel"), `unknown log level "loud"`)
	assert.EqualError(t, cfg.ValidateKeys("colour"), `unknown setting "colour"`)

	// Validate covers every key.
	assert.Error(t, cfg.Validate())
	for _, key := range Keys {
		assert.NoError(t, NewDefault().ValidateKeys(key), key)
	}
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	assert.Equal(t, cuid.DefaultLength, cfg.Length)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, 1, cfg.Parallel)
	assert.Equal(t, IdentityEnv, cfg.Identity)
	assert.Equal(t, SourceDefault, cfg.Sources["length"])
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "length: 16\ncount: 3\nidentity: host\njson: false\n")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Length)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, IdentityHost, cfg.Identity)
	assert.True(t, cfg.SetFields["json"])
	assert.False(t, cfg.SetFields["parallel"])
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "length: [1, 2\n")

	_, err := LoadConfigFile(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, path, cfgErr.Path)
	assert.Contains(t, err.Error(), path+": ")
}

func TestMergeConfig_ExplicitFalseOverrides(t *testing.T) {
	target := NewDefault()
	target.JSON = true
	MergeConfig(target, &CLIConfig{SetFields: map[string]bool{"json": true}}, SourceLocal)
	assert.False(t, target.JSON)
	assert.Equal(t, SourceLocal, target.Sources["json"])

	MergeConfig(target, &CLIConfig{}, SourceLocal)
	assert.Equal(t, cuid.DefaultLength, target.Length)
	assert.Equal(t, SourceDefault, target.Sources["length"])

	MergeConfig(target, nil, SourceLocal)
}

func TestLoadAllFrom_Precedence(t *testing.T) {
	work := isolate(t)

	configDir, err := os.UserConfigDir()
	require.NoError(t, err)
	globalPath := filepath.Join(configDir, GlobalConfigDir, "config.yaml")
	writeFile(t, globalPath, "length: 10\ncount: 2\nlogLevel: info\n")
	writeFile(t, filepath.Join(work, ".cuid2.yaml"), "length: 12\nidentity: host\n")
	explicit := filepath.Join(work, "explicit.yaml")
	writeFile(t, explicit, "length: 14\n")

	cfg, err := LoadAllFrom(explicit, map[string]string{
		"CUID2_LENGTH":     "16",
		"CUID2_LOG_FORMAT": "json",
	})
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Length)
	assert.Equal(t, SourceEnv, cfg.Sources["length"])
	assert.Equal(t, 2, cfg.Count)
	assert.Equal(t, SourceGlobal, cfg.Sources["count"])
	assert.Equal(t, IdentityHost, cfg.Identity)
	assert.Equal(t, SourceLocal, cfg.Sources["identity"])
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, SourceEnv, cfg.Sources["logFormat"])
	assert.Equal(t, SourceDefault, cfg.Sources["parallel"])
}

func TestLoadAllFrom_ExplicitFromEnv(t *testing.T) {
	work := isolate(t)
	path := filepath.Join(work, "from-env.yaml")
	writeFile(t, path, "count: 7\n")

	cfg, err := LoadAllFrom("", map[string]string{EnvConfig: path})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Count)
	assert.Equal(t, SourceFile, cfg.Sources["count"])
}

func TestLoadAllFrom_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := LoadAllFrom("does-not-exist.yaml", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found: does-not-exist.yaml")
}

func TestLoadAllFrom_DefaultsOnly(t *testing.T) {
	isolate(t)
	cfg, err := LoadAllFrom("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, NewDefault().Length, cfg.Length)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvConfig_InvalidNumber(t *testing.T) {
	cfg := NewDefault()
	err := LoadEnvConfig(cfg, map[string]string{"CUID2_COUNT": "many"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoadEnvConfig_BoolAndString(t *testing.T) {
	cfg := NewDefault()
	require.NoError(t, LoadEnvConfig(cfg, map[string]string{
		"CUID2_JSON":        "true",
		"CUID2_FINGERPRINT": "node-7",
	}))
	assert.True(t, cfg.JSON)
	assert.Equal(t, "node-7", cfg.Fingerprint)
	assert.Equal(t, SourceEnv, cfg.Sources["json"])
	assert.Equal(t, SourceEnv, cfg.Sources["fingerprint"])
}

func TestEnvVars(t *testing.T) {
	vars := EnvVars()
	assert.Equal(t, "CUID2_LENGTH", vars["length"])
	assert.Equal(t, "CUID2_LOG_LEVEL", vars["logLevel"])
	assert.NotContains(t, vars, "sources")
}

func TestIdentitySource(t *testing.T) {
	tests := []struct {
		identity string
		want     cuid.IdentitySource
	}{
		{IdentityEnv, cuid.EnvironmentSource{}},
		{IdentityHost, cuid.HostSource{}},
		{IdentityAll, cuid.MultiSource{cuid.EnvironmentSource{}, cuid.HostSource{}}},
		{IdentityNone, cuid.StaticSource{}},
	}
	for _, tt := range tests {
		t.Run(tt.identity, func(t *testing.T) {
			cfg := NewDefault()
			cfg.Identity = tt.identity
			assert.Equal(t, tt.want, cfg.IdentitySource())
		})
	}
}

func TestGeneratorConfig(t *testing.T) {
	cfg := NewDefault()
	cfg.Length = 12
	cfg.Fingerprint = "fp"

	g, err := cuid.New(cfg.GeneratorConfig(nil))
	require.NoError(t, err)
	assert.Equal(t, 12, g.Length())
	assert.Equal(t, "fp", g.Fingerprint())
}
