// =============================================================================
// PlyCast Playlist Converter - XLSX Conversion Report
// =============================================================================
//
// This module writes an optional audit workbook listing every converted item
// of a run, so operators can review GUIDs and comment detection before the
// new playlists go on air.
//
// WORKBOOK STRUCTURE (sheet "Items"):
//
//   | Source | Destination | Item | GUID | ClipName | ClipPath | ClipState | Category | Comment |
//   |--------|-------------|------|------|----------|----------|-----------|----------|---------|
//   | a.plyt | a_new.plyt  | 1    | ...  | open.mp4 | C:\...   | FOLLOW    | News     | no      |
//
// The workbook is only written after every file converted successfully.
//
// =============================================================================

package xlsxreport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Tillihusky/plycast-plyt-converter/internal/types"
)

// SheetName is the worksheet holding one row per converted item.
const SheetName = "Items"

// Headers are the column titles of the report, in order.
var Headers = []string{
	"Source", "Destination", "Item", "GUID", "ClipName", "ClipPath", "ClipState", "Category", "Comment",
}

// Entry is one converted file.
type Entry struct {
	Source      string
	Destination string
	Items       []types.PlyItem
}

// Report accumulates converted files until Save.
type Report struct {
	entries []Entry
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// Add records a converted file.
func (r *Report) Add(source, destination string, items []types.PlyItem) {
	r.entries = append(r.entries, Entry{Source: source, Destination: destination, Items: items})
}

// Rows returns the number of item rows the report will contain.
func (r *Report) Rows() int {
	n := 0
	for _, e := range r.entries {
		n += len(e.Items)
	}
	return n
}

// Save writes the workbook to path, replacing any existing file.
func (r *Report) Save(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"; rename it so the sheet name is stable.
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name report sheet: %w", err)
	}

	if err := writeRow(f, 1, toAny(Headers)); err != nil {
		return err
	}

	row := 2
	for _, e := range r.entries {
		for i, item := range e.Items {
			comment := "no"
			if item.Comment {
				comment = "yes"
			}
			values := []interface{}{
				e.Source, e.Destination, i + 1, item.GUID, item.ClipName,
				item.ClipPath, item.ClipState, item.Category, comment,
			}
			if err := writeRow(f, row, values); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return &types.IOError{Op: "write report", Path: path, Err: err}
	}
	return nil
}

// writeRow writes values starting at column A of row.
func writeRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid report row %d: %w", row, err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write report row %d: %w", row, err)
	}
	return nil
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
