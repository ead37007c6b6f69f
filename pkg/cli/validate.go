package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/getmockd/cuid2/pkg/cli/internal/output"
	"github.com/getmockd/cuid2/pkg/cuid"
	"github.com/spf13/cobra"
)

var (
	validateMin int
	validateMax int
)

// ValidateResult is the JSON form of one validate verdict.
type ValidateResult struct {
	ID    string `json:"id"`
	Valid bool   `json:"valid"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [id...]",
	Short: "Check whether values look like identifiers",
	Long: `Check whether values look like identifiers: letters and digits only, with a
length inside the configured bounds. Values are read one per line from stdin
when no arguments are given.

The command exits non-zero when any value is invalid.`,
	Example: `  cuid2 validate tz4a98xxat96iws9zmbrgj3a
  cuid2 generate -n 10 | cuid2 validate
  cuid2 validate --min 10 --max 10 $(cuid2 generate -l 10)`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().IntVar(&validateMin, "min", cuid.MinLength, "Minimum accepted length")
	validateCmd.Flags().IntVar(&validateMax, "max", cuid.BigLength, "Maximum accepted length")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if validateMin < 1 || validateMax < validateMin {
		return fmt.Errorf("invalid bounds: min %d, max %d", validateMin, validateMax)
	}

	ids := args
	if len(ids) == 0 {
		ids, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return fmt.Errorf("%w: pass identifiers as arguments or on stdin", ErrNoInput)
		}
	}

	results, allValid := checkIDs(ids, validateMin, validateMax)
	if cfg.JSON {
		if err := output.JSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for _, r := range results {
			verdict := "valid"
			if !r.Valid {
				verdict = "invalid"
			}
			fmt.Fprintf(w, "%s\t%s\n", verdict, r.ID)
		}
	}

	if !allValid {
		return ErrInvalidIDs
	}
	return nil
}

func checkIDs(ids []string, minLen, maxLen int) ([]ValidateResult, bool) {
	results := make([]ValidateResult, len(ids))
	allValid := true
	for i, id := range ids {
		ok := cuid.IsCuidWithin(id, minLen, maxLen)
		results[i] = ValidateResult{ID: id, Valid: ok}
		allValid = allValid && ok
	}
	return results, allValid
}

// readLines returns the non-blank lines of r with surrounding space removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
