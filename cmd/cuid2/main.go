// cuid2 CLI - Command-line interface for generating and checking identifiers
package main

import (
	"os"

	"github.com/getmockd/cuid2/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	os.Exit(cli.Execute())
}
