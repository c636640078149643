// =============================================================================
// PlyCast Playlist Converter - Version Information
// =============================================================================
//
// Version details printed by `plyconv --version`.
//
// OUTPUT:
//   PlyCast Playlist Converter
//   Version:    1.0.0
//   Build Date: 2026-10-18
//   Go Version: go1.24.11
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"
)

// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/Tillihusky/plycast-plyt-converter/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// versionTemplate renders the --version output.
func versionTemplate() string {
	return fmt.Sprintf("PlyCast Playlist Converter\nVersion:    {{.Version}}\nBuild Date: %s\nGo Version: %s\n",
		BuildDate, runtime.Version())
}
