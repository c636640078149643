// =============================================================================
// PlyCast Playlist Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the plyconv CLI application. It delegates
// command execution to the cmd package, which is built on Cobra.
//
// USAGE:
//   plyconv <input> [output] [--guid random|keep]
//
// ARCHITECTURE:
//   - cmd/           : CLI command definition, flags and exit codes (Cobra)
//   - internal/      : Parsing, conversion, serialization and reporting
//   - pkg/           : Batch job resolution and file utilities
//
// =============================================================================

package main

import (
	"github.com/Tillihusky/plycast-plyt-converter/cmd"
)

func main() {
	cmd.Execute()
}
