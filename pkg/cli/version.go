package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/getmockd/cuid2/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

// VersionOutput represents JSON output format
type VersionOutput struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show cuid2 version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := buildVersion(Version, Commit, BuildDate, readBuildSettings())

		if cfg.JSON {
			return output.JSON(cmd.OutOrStdout(), out)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "cuid2 %s (%s, %s)\n", displayVersion(out.Version), out.Commit, out.Date)
		fmt.Fprintf(w, "%s %s/%s\n", out.Go, out.OS, out.Arch)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// buildSettings is the subset of debug.BuildInfo used to fill in values
// that were not injected with -ldflags.
type buildSettings struct {
	mainVersion string
	revision    string
	time        string
	modified    bool
}

func readBuildSettings() buildSettings {
	var s buildSettings
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return s
	}
	s.mainVersion = info.Main.Version
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			s.revision = setting.Value
		case "vcs.time":
			s.time = setting.Value
		case "vcs.modified":
			s.modified = setting.Value == "true"
		}
	}
	return s
}

func buildVersion(version, commit, date string, s buildSettings) VersionOutput {
	if version == "dev" && s.mainVersion != "" {
		version = s.mainVersion
	}
	if commit == "none" && s.revision != "" {
		commit = s.revision
		if s.modified {
			commit += "-dirty"
		}
	}
	if date == "unknown" && s.time != "" {
		date = s.time
	}
	return VersionOutput{
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

func displayVersion(v string) string {
	if len(v) > 0 && v[0] != 'v' && v != "dev" && v != "(devel)" {
		return "v" + v
	}
	return v
}
