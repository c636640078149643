// =============================================================================
// PlyCast Playlist Converter - Conversion Run
// =============================================================================
//
// This file orchestrates one invocation of plyconv.
//
// PROCESSING PIPELINE:
//   1. Load configuration (file, then command-line overrides)
//   2. Build the logger and the GUID generator
//   3. Resolve the (source, destination) jobs for the input path
//   4. For each job, in order:
//      a. Parse the legacy playlist
//      b. Map every item to a PlyItem
//      c. Validate and serialize the PlyList
//      d. Write the output file and print a confirmation line
//   5. Write the XLSX report, if requested
//
// The first failure aborts the run. Files converted before it stay on disk.
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Tillihusky/plycast-plyt-converter/internal/config"
	"github.com/Tillihusky/plycast-plyt-converter/internal/converter"
	"github.com/Tillihusky/plycast-plyt-converter/internal/guid"
	"github.com/Tillihusky/plycast-plyt-converter/internal/logging"
	"github.com/Tillihusky/plycast-plyt-converter/internal/xlsxreport"
	"github.com/Tillihusky/plycast-plyt-converter/internal/xmlwriter"
	"github.com/Tillihusky/plycast-plyt-converter/pkg/utils"
)

// runConvert converts input (a file or a directory) into output.
//
// PARAMETERS:
//   - cmd: The running command; its stdout receives confirmation lines and
//     its stderr receives diagnostics.
//   - flags: The parsed flag values.
//   - input: The legacy playlist or directory of playlists.
//   - output: The destination file or directory; "" derives it from input.
//
// RETURNS:
//   - An error naming the file that failed, or nil if every file converted.
func runConvert(cmd *cobra.Command, flags *rootFlags, input, output string) error {
	startTime := time.Now()

	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("guid") {
		cfg.GUIDMode = flags.guidMode
	}
	if flags.reportPath != "" {
		cfg.ReportPath = flags.reportPath
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Writer: cmd.ErrOrStderr(),
		Prefix: "plyconv",
	})
	if err != nil {
		return err
	}

	gen, err := guid.NewGenerator(cfg.GUIDMode)
	if err != nil {
		return err
	}

	fm := utils.NewFileManager(cfg.Extension, cfg.OutputSuffix)
	jobs, err := fm.ResolveJobs(input, output)
	if err != nil {
		return errors.WithMessagef(err, "cannot prepare output for %s", input)
	}
	logger.Debug("resolved jobs", "input", input, "files", len(jobs), "guid_mode", cfg.GUIDMode)
	if len(jobs) == 0 {
		logger.Warn("no playlist files found", "input", input, "extension", cfg.Extension)
	}

	conv := converter.New(converter.Options{
		Generator: gen,
		Output: xmlwriter.GenerateOptions{
			Indent:                cfg.IndentString(),
			IncludeXMLDeclaration: true,
			XMLVersion:            "1.0",
		},
		Logger: logger,
	})

	var report *xlsxreport.Report
	if cfg.ReportPath != "" {
		report = xlsxreport.New()
	}

	totalItems := 0
	for _, job := range jobs {
		result, err := conv.ConvertFile(job.Source, job.Destination)
		if err != nil {
			return errors.WithMessagef(err, "converting %s", job.Source)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Converted: %s -> %s\n", job.Source, job.Destination)

		totalItems += result.Stats.ItemsConverted
		if report != nil {
			report.Add(result.Source, result.Destination, result.Items)
		}
	}

	if report != nil {
		if err := report.Save(cfg.ReportPath); err != nil {
			return err
		}
		logger.Info("wrote report", "path", cfg.ReportPath, "rows", report.Rows())
	}

	logger.Info("run complete", "files", len(jobs), "items", totalItems, "elapsed", time.Since(startTime))
	return nil
}
