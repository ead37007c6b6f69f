package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/getmockd/cuid2/pkg/base36"
	"github.com/getmockd/cuid2/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

// Byte formats accepted by encode --from and decode --to.
const (
	FormatHex  = "hex"
	FormatText = "text"
)

var (
	encodeFrom string
	decodeTo   string
)

// CodecOutput is the JSON form of encode and decode.
type CodecOutput struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Format string `json:"format"`
}

var encodeCmd = &cobra.Command{
	Use:   "encode <value>",
	Short: "Encode bytes as base36",
	Long: `Encode bytes as a lowercase base36 string. The value is read as hex by
default, or as raw text with --from text.`,
	Example: `  cuid2 encode ffffffff
  cuid2 encode --from text hello`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		encoded, err := encodeValue(args[0], encodeFrom)
		if err != nil {
			return err
		}
		return printCodec(cmd, cfg.JSON, CodecOutput{Input: args[0], Output: encoded, Format: encodeFrom})
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <base36>",
	Short: "Decode a base36 string",
	Long: `Decode a lowercase base36 string. The bytes are printed as hex by default,
or as raw text with --to text. Zero decodes to no bytes.`,
	Example: `  cuid2 decode 1z141z3
  cuid2 decode --to text 5pzcszu7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		decoded, err := decodeValue(args[0], decodeTo)
		if err != nil {
			return err
		}
		return printCodec(cmd, cfg.JSON, CodecOutput{Input: args[0], Output: decoded, Format: decodeTo})
	},
}

func init() {
	encodeCmd.Flags().StringVar(&encodeFrom, "from", FormatHex, "Input format: hex, text")
	decodeCmd.Flags().StringVar(&decodeTo, "to", FormatHex, "Output format: hex, text")
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func printCodec(cmd *cobra.Command, asJSON bool, out CodecOutput) error {
	if asJSON {
		return output.JSON(cmd.OutOrStdout(), out)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), out.Output)
	return err
}

func encodeValue(value, from string) (string, error) {
	switch from {
	case FormatHex:
		b, err := hex.DecodeString(value)
		if err != nil {
			return "", fmt.Errorf("invalid hex input: %w", err)
		}
		return base36.Encode(b), nil
	case FormatText:
		return base36.Encode([]byte(value)), nil
	default:
		return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownFormat, from, FormatHex, FormatText)
	}
}

func decodeValue(value, to string) (string, error) {
	if to != FormatHex && to != FormatText {
		return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownFormat, to, FormatHex, FormatText)
	}
	b, err := base36.Decode(value)
	if err != nil {
		return "", err
	}
	if to == FormatText {
		return string(b), nil
	}
	return hex.EncodeToString(b), nil
}
