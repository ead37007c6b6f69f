package cli

import (
	"crypto/rand"
	"fmt"

	"github.com/getmockd/cuid2/pkg/cli/internal/output"
	"github.com/getmockd/cuid2/pkg/cliconfig"
	"github.com/getmockd/cuid2/pkg/cuid"
	"github.com/spf13/cobra"
)

// FingerprintOutput is the JSON form of fingerprint.
type FingerprintOutput struct {
	Fingerprint string `json:"fingerprint"`
	Identity    string `json:"identity"`
}

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Print a fresh fingerprint",
	Long: `Print a fresh fingerprint derived from the configured identity source and
random salt. Every run prints a different value.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, "identity")
		if err != nil {
			return err
		}
		fp, err := cuid.CreateFingerprint(rand.Reader, cfg.IdentitySource())
		if err != nil {
			return err
		}
		if cfg.JSON {
			return output.JSON(cmd.OutOrStdout(), FingerprintOutput{Fingerprint: fp, Identity: cfg.Identity})
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), fp)
		return err
	},
}

func init() {
	fingerprintCmd.Flags().String("identity", cliconfig.DefaultIdentity, "Identity source: env, host, all, none")
	rootCmd.AddCommand(fingerprintCmd)
}
