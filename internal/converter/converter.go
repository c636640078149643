// =============================================================================
// PlyCast Playlist Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic: the pure per-document
// mapping (Convert) and the per-file pipeline (Converter.ConvertFile).
//
// CONVERSION PIPELINE:
//   1. Parse the legacy playlist (ParseError / SchemaError on failure)
//   2. Map every <item> to a <PlyItem>, preserving count and order
//   3. Validate the result (warnings are logged, errors are fatal)
//   4. Serialize the new document
//   5. Write the output file
//
// Nothing is written unless steps 1-4 succeed.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Tillihusky/plycast-plyt-converter/internal/guid"
	"github.com/Tillihusky/plycast-plyt-converter/internal/plytparser"
	"github.com/Tillihusky/plycast-plyt-converter/internal/types"
	"github.com/Tillihusky/plycast-plyt-converter/internal/validation"
	"github.com/Tillihusky/plycast-plyt-converter/internal/xmlwriter"
	"github.com/Tillihusky/plycast-plyt-converter/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single file.
type Result struct {
	// Source is the legacy playlist that was read.
	Source string

	// Destination is the path of the written file.
	Destination string

	// Items are the converted entries, in output order.
	Items []types.PlyItem

	Stats ProcessingStats
}

// ProcessingStats contains statistics about one conversion.
type ProcessingStats struct {
	ItemsConverted int
	CommentItems   int
	Warnings       int
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options configures a Converter.
type Options struct {
	// Generator produces item GUIDs. Nil means guid.Random{}.
	Generator guid.Generator

	// Output controls serialization.
	Output xmlwriter.GenerateOptions

	// Logger receives per-file debug events and validation warnings.
	// Nil discards them.
	Logger *slog.Logger
}

// Converter converts legacy playlist files one at a time.
type Converter struct {
	gen    guid.Generator
	output xmlwriter.GenerateOptions
	logger *slog.Logger
}

// New creates a Converter.
func New(opts Options) *Converter {
	c := &Converter{
		gen:    opts.Generator,
		output: opts.Output,
		logger: opts.Logger,
	}
	if c.gen == nil {
		c.gen = guid.Random{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// ConvertFile converts the playlist at src and writes it to dst, replacing
// any existing file.
func (c *Converter) ConvertFile(src, dst string) (Result, error) {
	startTime := time.Now()
	result := Result{Source: src}
	log := c.logger.With("source", src)

	doc, err := plytparser.ParseFile(src)
	if err != nil {
		return result, err
	}
	log.Debug("parsed legacy playlist", "items", len(doc.Items), "play_state", doc.PlayState)

	list := Convert(doc, c.gen)

	report := validation.Validate(list)
	for _, w := range report.Warnings() {
		log.Warn("converted item looks malformed", "item", w.ItemIndex, "rule", w.Rule, "field", w.Field, "value", w.Value)
	}
	if first := report.FirstError(); first != nil {
		return result, fmt.Errorf("invalid conversion of %s: %w", src, first)
	}

	data, err := xmlwriter.GenerateWithOptions(list, c.output)
	if err != nil {
		return result, fmt.Errorf("failed to generate XML for %s: %w", src, err)
	}

	if err := utils.WriteFile(dst, data); err != nil {
		return result, err
	}

	result.Destination = dst
	result.Items = list.Items
	result.Stats = ProcessingStats{
		ItemsConverted: len(list.Items),
		CommentItems:   countComments(list.Items),
		Warnings:       report.WarningCount,
		ProcessingTime: time.Since(startTime),
	}
	log.Debug("wrote playlist", "destination", dst, "items", result.Stats.ItemsConverted,
		"comments", result.Stats.CommentItems, "elapsed", result.Stats.ProcessingTime)

	return result, nil
}

// =============================================================================
// MAPPING
// =============================================================================

// Convert maps a legacy document to the new schema. It has no side effects
// besides calling gen once per item.
func Convert(doc *types.LegacyDocument, gen guid.Generator) *types.PlyList {
	list := &types.PlyList{
		PlayState: doc.PlayState,
		Items:     make([]types.PlyItem, 0, len(doc.Items)),
	}
	for _, item := range doc.Items {
		list.Items = append(list.Items, ConvertItem(item, gen))
	}
	return list
}

// ConvertItem maps one legacy item.
func ConvertItem(item types.LegacyItem, gen guid.Generator) types.PlyItem {
	out := types.PlyItem{
		GUID:      gen.Generate(item.ID),
		StartTime: item.Start,
		EndTime:   item.End,
		ClipState: ClipState(item.State),
		FixState:  "False",
	}

	if IsComment(item) {
		out.Comment = true
		out.ClipPath = CommentClipPath
		out.ClipName = strings.TrimSpace(item.Title)
		out.TCIn = types.DefaultTimecode
		out.TCOut = types.DefaultTimecode
		out.TCDuration = types.DefaultTimecode
	} else {
		out.ClipPath = item.Path
		out.ClipName = BaseName(item.Path)
		out.TCIn = item.In
		out.TCOut = item.Out
		out.TCDuration = item.Duration
		out.Category = ParseCategory(item.Categories)
		out.ClipLogo = ClipLogo(item.Logo)
		out.ClipCG = item.CG
		out.PluginData = item.PluginOption
	}
	out.OriginalTCOut = out.TCOut

	return out
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

func countComments(items []types.PlyItem) int {
	n := 0
	for _, it := range items {
		if it.Comment {
			n++
		}
	}
	return n
}
