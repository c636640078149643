// =============================================================================
// PlyCast Playlist Converter - GUID Module
// =============================================================================
//
// This module decides how the GUID attribute of every PlyItem is produced.
//
// GUID MODES:
//   random : a fresh random UUID per item, per run (legacy id ignored)
//   keep   : the legacy ply_id reshaped into the 8-4-4-4-rest dash pattern
//
// The converter receives a Generator instead of reaching for a global random
// source, so keep-mode runs are deterministic and random-mode runs can be
// driven by a fixed source in tests.
//
// =============================================================================

package guid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// MODE
// =============================================================================

// Mode selects the GUID strategy. It implements pflag.Value so an unknown
// value is rejected while the command line is parsed.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeKeep   Mode = "keep"
)

// Modes lists the accepted values in help-text order.
var Modes = []Mode{ModeRandom, ModeKeep}

// ParseMode validates a mode name. Matching is exact.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid GUID mode %q (choose from %s)", s, modeList())
}

func (m *Mode) String() string {
	if m == nil || *m == "" {
		return string(ModeRandom)
	}
	return string(*m)
}

func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *Mode) Type() string {
	return "mode"
}

func modeList() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// =============================================================================
// GENERATORS
// =============================================================================

// Generator produces the GUID for one item from its legacy id.
type Generator interface {
	Generate(legacyID string) string
}

// Random ignores the legacy id and returns a new UUID every call.
type Random struct {
	// New is the UUID source. Nil means uuid.New.
	New func() uuid.UUID
}

func (r Random) Generate(string) string {
	if r.New == nil {
		return uuid.New().String()
	}
	return r.New().String()
}

// Keep reuses the legacy id, reshaped by Dash.
type Keep struct{}

func (Keep) Generate(legacyID string) string {
	return Dash(legacyID)
}

// NewGenerator returns the generator for a mode.
func NewGenerator(mode Mode) (Generator, error) {
	switch mode {
	case ModeRandom, "":
		return Random{}, nil
	case ModeKeep:
		return Keep{}, nil
	default:
		return nil, fmt.Errorf("invalid GUID mode %q", string(mode))
	}
}

// =============================================================================
// DASH RESHAPE
// =============================================================================

// dashed matches ids already in 8-4-4-4-rest form.
var dashed = regexp.MustCompile(`^[^-]{8}-[^-]{4}-[^-]{4}-[^-]{4}-`)

// Dash forces s into the 8-4-4-4-rest pattern.
//
// Surrounding whitespace is trimmed and an id that already carries the
// 8-4-4-4 prefix comes back unchanged. Anything else is sliced by position
// and the id is never validated: characters, dashes included, are kept in
// order and short input yields empty trailing groups ("abc" -> "abc----").
func Dash(s string) string {
	s = strings.TrimSpace(s)
	if dashed.MatchString(s) {
		return s
	}
	r := []rune(s)

	group := func(from, to int) string {
		if from > len(r) {
			from = len(r)
		}
		if to < 0 || to > len(r) {
			to = len(r)
		}
		return string(r[from:to])
	}

	return group(0, 8) + "-" +
		group(8, 12) + "-" +
		group(12, 16) + "-" +
		group(16, 20) + "-" +
		group(20, -1)
}
