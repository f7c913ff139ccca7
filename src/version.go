package reedsolomon

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via `-ldflags "-X 'github.com/sp6hfe/ReedSolomon/src.RS_VERSION=X'"`
var RS_VERSION string

func getBuildSettingOrDefault(bi *debug.BuildInfo, key string, defaultValue string) string {
	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

func printVersion() {
	var buildInfo, _ = debug.ReadBuildInfo()

	var buildCommit = getBuildSettingOrDefault(buildInfo, "vcs.revision", "UNKNOWN")

	var version = RS_VERSION
	if version == "" {
		version = "!UNKNOWN!"
	}

	fmt.Printf("rsdemo - Version %s (revision %s)\n", version, buildCommit)
}
