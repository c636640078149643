// =============================================================================
// PlyCast Playlist Converter - File Manager Utility
// =============================================================================
//
// This module turns the user's input/output arguments into conversion jobs:
//   - Input resolution (single file vs. flat directory)
//   - Output path derivation
//   - Output directory creation
//   - File writing
//
// NAMING RULES (defaults: extension ".plyt", suffix "_new"):
//   file  show.plyt          -> show_new.plyt            (next to the input)
//   dir   shows/             -> shows_new/               (created if missing)
//         shows/a.plyt       -> shows_new/a_new.plyt
//         shows/b.PLYT       -> shows_new/b_new.plyt
//         shows/notes.txt    -> skipped
//         shows/sub/         -> skipped (no recursion)
//
// =============================================================================

package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Tillihusky/plycast-plyt-converter/internal/types"
)

const (
	DefaultExtension = ".plyt"
	DefaultSuffix    = "_new"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager derives conversion jobs from command-line paths.
type FileManager struct {
	// Extension selects playlist files in a directory (case-insensitive)
	// and is the extension of every output file.
	Extension string

	// Suffix is appended to output file stems and to derived output
	// directory names.
	Suffix string
}

// Job is one input/output pair.
type Job struct {
	Source      string
	Destination string
}

// NewFileManager creates a FileManager. Empty arguments take the defaults.
func NewFileManager(extension, suffix string) *FileManager {
	if extension == "" {
		extension = DefaultExtension
	}
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &FileManager{Extension: extension, Suffix: suffix}
}

// =============================================================================
// JOB RESOLUTION
// =============================================================================

// ResolveJobs returns the jobs for input, in directory-listing order.
//
// PARAMETERS:
//   - input:  a playlist file or a directory of playlists.
//   - output: optional output file (file input) or directory (directory
//             input). Empty derives it from input.
//
// For directory input the output directory is created, parents included.
// A path that cannot be stat'ed is treated as a file; reading it later
// reports the failure.
func (fm *FileManager) ResolveJobs(input, output string) ([]Job, error) {
	info, err := os.Stat(input)
	if err != nil || !info.IsDir() {
		return []Job{{Source: input, Destination: fm.outputForFile(input, output)}}, nil
	}

	outDir := output
	if outDir == "" {
		outDir = fm.OutputDirFor(input)
	}
	if err := EnsureDirectory(outDir); err != nil {
		return nil, err
	}

	files, err := fm.DiscoverInputFiles(input)
	if err != nil {
		return nil, err
	}

	jobs := make([]Job, 0, len(files))
	for _, name := range files {
		jobs = append(jobs, Job{
			Source:      filepath.Join(input, name),
			Destination: filepath.Join(outDir, fm.OutputName(name)),
		})
	}
	return jobs, nil
}

func (fm *FileManager) outputForFile(input, output string) string {
	if output != "" {
		return output
	}
	stem, _ := splitExt(input)
	return stem + fm.Suffix + fm.Extension
}

// OutputDirFor derives the output directory for a directory input: trailing
// separators (either style) are dropped and the suffix appended.
func (fm *FileManager) OutputDirFor(input string) string {
	return strings.TrimRight(input, `/\`) + fm.Suffix
}

// OutputName derives an output file name from an input file name.
func (fm *FileManager) OutputName(name string) string {
	stem, _ := splitExt(name)
	return stem + fm.Suffix + fm.Extension
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles lists the names of regular entries in dir whose name
// ends with the playlist extension, ignoring case.
//
// RETURNS:
//   - Entry names (not paths), in the order the directory listing yields.
//   - *types.IOError if the directory cannot be read.
func (fm *FileManager) DiscoverInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &types.IOError{Op: "list directory", Path: dir, Err: err}
	}

	ext := strings.ToLower(fm.Extension)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ext) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectory creates dir and any missing parents.
func EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &types.IOError{Op: "create directory", Path: dir, Err: err}
	}
	return nil
}

// WriteFile writes data to path, replacing an existing file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &types.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// splitExt splits the extension off the last path element. Leading dots of
// a name do not start an extension, so ".plyt" has none.
func splitExt(path string) (stem, ext string) {
	ext = filepath.Ext(path)
	stem = strings.TrimSuffix(path, ext)
	if strings.Trim(filepath.Base(stem), ".") == "" || strings.HasSuffix(stem, string(filepath.Separator)) {
		return path, ""
	}
	return stem, ext
}
