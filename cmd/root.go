// =============================================================================
// PlyCast Playlist Converter - Root Command
// =============================================================================
//
// This file defines the plyconv command. There are no subcommands: the root
// command takes the input path and an optional output path.
//
// COMMAND USAGE:
//   plyconv <input> [output] [flags]
//
// FLAGS:
//   --guid      : random (default) or keep
//   --config    : optional YAML configuration file
//   --report    : write an XLSX audit report of every converted item
//   --verbose   : debug logging on stderr
//   --version   : print version information
//
// EXIT CODES:
//   0  every file converted
//   1  a file could not be read, parsed, converted or written
//   2  invalid command-line arguments
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tillihusky/plycast-plyt-converter/internal/guid"
	"github.com/Tillihusky/plycast-plyt-converter/internal/types"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// rootFlags holds the values bound to the command's flags.
type rootFlags struct {
	guidMode   guid.Mode
	configFile string
	reportPath string
	verbose    bool
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

func newRootCommand() *cobra.Command {
	flags := &rootFlags{guidMode: guid.ModeRandom}

	rootCmd := &cobra.Command{
		Use:   "plyconv <input> [output]",
		Short: "Convert legacy PlyCast .plyt playlists to the PlyList format",
		Long: `plyconv converts legacy PlyCast playlists (<Template> with <item ply_*> entries)
into the PlyList format (<PlyList> with <PlyItem> entries).

The input may be a single playlist or a directory. For a directory every
*.plyt file directly inside it is converted (matched case-insensitively,
no recursion) into <input>_new/ unless an output directory is given.

Example Usage:
  plyconv show.plyt                     # writes show_new.plyt
  plyconv show.plyt converted.plyt      # explicit output file
  plyconv ./playlists                   # writes ./playlists_new/*_new.plyt
  plyconv ./playlists --guid keep       # reuse legacy ply_id values`,

		Version:       Version,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			output := ""
			if len(args) == 2 {
				output = args[1]
			}
			return runConvert(cmd, flags, args[0], output)
		},
	}

	rootCmd.SetVersionTemplate(versionTemplate())

	// Unknown flags and bad flag values (e.g. --guid reuse) are usage errors.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &types.UsageError{Message: err.Error()}
	})

	rootCmd.Flags().Var(
		&flags.guidMode,
		"guid",
		"GUID handling: random (new GUID per item) or keep (reuse legacy ply_id)",
	)
	rootCmd.Flags().StringVar(
		&flags.configFile,
		"config",
		"",
		"Path to an optional YAML configuration file",
	)
	rootCmd.Flags().StringVar(
		&flags.reportPath,
		"report",
		"",
		"Write an XLSX report listing every converted item",
	)
	rootCmd.Flags().BoolVarP(
		&flags.verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging on stderr",
	)

	return rootCmd
}

// validateArgs requires the input path and accepts an optional output path.
func validateArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &types.UsageError{Message: "missing required argument: input (file or directory)"}
	case len(args) > 2:
		return &types.UsageError{Message: fmt.Sprintf("accepts at most 2 arguments (input, output), received %d", len(args))}
	}
	return nil
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the command line and exits with a non-zero status on failure.
// This is called by main.main().
func Execute() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code := exitCode(err)
		if code == 2 {
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
		}
		os.Exit(code)
	}
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage *types.UsageError
	if errors.As(err, &usage) {
		return 2
	}
	return 1
}
