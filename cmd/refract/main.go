package main

import (
	"os"

	"github.com/xkazm04/refract/internal/output"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		if formatter, ferr := output.NewFormatter(output.FormatText, "", true); ferr == nil {
			formatter.Error("%v", err)
		}
		os.Exit(1)
	}
}
