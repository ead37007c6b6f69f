package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/getmockd/cuid2/pkg/cliconfig"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	configPath string
	jsonOutput bool
	logLevel   string
	logFormat  string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cuid2",
	Short: "cuid2 generates and checks collision-resistant identifiers",
	Long: `cuid2 generates secure, collision-resistant identifiers that are safe to use
in URLs and as database keys, and checks existing values against the same shape.

Configuration can be provided via flags, environment variables (CUID2_*), or a
configuration file. cuid2 looks for .cuid2.yaml in the current directory and
config.yaml in the user config directory (for example ~/.config/cuid2/).`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

// Main runs the CLI and exits the process with its status.
func Main() {
	os.Exit(Execute())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a config file (also CUID2_CONFIG)")
	pf.BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	pf.StringVar(&logLevel, "log-level", cliconfig.DefaultLogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", cliconfig.DefaultLogFormat, "Log format: text, json")
}

// loadConfig resolves the configuration for cmd. Files and environment are
// applied first, then every flag the user set explicitly. Only the settings
// named in keys are validated.
func loadConfig(cmd *cobra.Command, keys ...string) (*cliconfig.CLIConfig, error) {
	cfg, err := cliconfig.LoadAll(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	flags := cmd.Flags()
	apply := func(name, key string, set func()) {
		if flags.Changed(name) {
			set()
			cfg.Sources[key] = cliconfig.SourceFlag
		}
	}
	apply("json", "json", func() { cfg.JSON = jsonOutput })
	apply("log-level", "logLevel", func() { cfg.LogLevel = logLevel })
	apply("log-format", "logFormat", func() { cfg.LogFormat = logFormat })
	apply("length", "length", func() { cfg.Length, _ = flags.GetInt("length") })
	apply("count", "count", func() { cfg.Count, _ = flags.GetInt("count") })
	apply("parallel", "parallel", func() { cfg.Parallel, _ = flags.GetInt("parallel") })
	apply("fingerprint", "fingerprint", func() { cfg.Fingerprint, _ = flags.GetString("fingerprint") })
	apply("identity", "identity", func() { cfg.Identity, _ = flags.GetString("identity") })

	if err := cfg.ValidateKeys(keys...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the configured logger on the command's stderr.
func newLogger(cmd *cobra.Command, cfg *cliconfig.CLIConfig) (*slog.Logger, error) {
	return cfg.Logger(cmd.ErrOrStderr())
}
