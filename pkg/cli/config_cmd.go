package cli

import (
	"fmt"
	"strconv"

	"github.com/getmockd/cuid2/pkg/cli/internal/output"
	"github.com/getmockd/cuid2/pkg/cliconfig"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configShowSources bool

// ConfigShowOutput is the JSON form of config show.
type ConfigShowOutput struct {
	Config  *cliconfig.CLIConfig `json:"config"`
	Sources map[string]string    `json:"sources"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect cuid2 configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Display the configuration after defaults, config files, environment
variables and flags have been applied. --sources lists where each value came
from instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, cliconfig.Keys...)
		if err != nil {
			return err
		}

		if cfg.JSON {
			return output.JSON(cmd.OutOrStdout(), ConfigShowOutput{Config: cfg, Sources: cfg.Sources})
		}

		if configShowSources {
			tw := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
			for _, row := range configRows(cfg) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", row[0], row[1], row[2])
			}
			return tw.Flush()
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowSources, "sources", false, "Show where each value came from")
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// configRows returns key, value and source for every setting in display order.
func configRows(cfg *cliconfig.CLIConfig) [][3]string {
	source := func(key string) string {
		if s, ok := cfg.Sources[key]; ok {
			return s
		}
		return cliconfig.SourceDefault
	}
	fingerprint := cfg.Fingerprint
	if fingerprint == "" {
		fingerprint = "(derived)"
	}
	return [][3]string{
		{"length", strconv.Itoa(cfg.Length), source("length")},
		{"count", strconv.Itoa(cfg.Count), source("count")},
		{"parallel", strconv.Itoa(cfg.Parallel), source("parallel")},
		{"fingerprint", fingerprint, source("fingerprint")},
		{"identity", cfg.Identity, source("identity")},
		{"logLevel", cfg.LogLevel, source("logLevel")},
		{"logFormat", cfg.LogFormat, source("logFormat")},
		{"json", strconv.FormatBool(cfg.JSON), source("json")},
	}
}
