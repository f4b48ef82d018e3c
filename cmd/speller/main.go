package main

import (
	"os"
	"runtime/debug"

	"speller/internal/cli"
)

// Version is set via ldflags during release builds, or read from build
// info when installed with go install.
var version = "dev"

func main() {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}

	cli.SetVersionInfo(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
