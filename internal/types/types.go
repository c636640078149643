// =============================================================================
// PlyCast Playlist Converter - Shared Types
// =============================================================================
//
// This package contains the record types shared by the parser, converter,
// validator, writer and report modules. Keeping them here avoids import
// cycles between those packages.
//
//   LegacyDocument / LegacyItem : <Template> / <item ply_*="..."> (input)
//   PlyList / PlyItem           : <PlyList> / <PlyItem ...> (output)
//
// =============================================================================

package types

// =============================================================================
// SCHEMA NAMES
// =============================================================================

const (
	// LegacyRootTag is the root element of a legacy PlyCast playlist.
	LegacyRootTag = "Template"

	// LegacyItemTag is the element name of a legacy playlist entry.
	LegacyItemTag = "item"

	// PlyListRootTag is the root element of the new playlist schema.
	PlyListRootTag = "PlyList"

	// PlyItemTag is the element name of a new playlist entry.
	PlyItemTag = "PlyItem"
)

// Default values applied when a legacy attribute is absent.
const (
	DefaultTimecode  = "00:00:00.000"
	DefaultDateTime  = "2000-01-01 00:00:00.000"
	DefaultState     = "follow"
	DefaultPlayState = "False"
)

// =============================================================================
// LEGACY SCHEMA
// =============================================================================

// LegacyDocument is a parsed <Template> playlist.
type LegacyDocument struct {
	// Source is the path the document was read from. Used in error messages.
	Source string

	// PlayState is the root's playlist_playstate attribute.
	PlayState string

	// Items holds one record per <item> child, in document order.
	Items []LegacyItem
}

// LegacyItem is one <item> entry with its defaults already applied.
type LegacyItem struct {
	ID           string
	Title        string
	Path         string
	In           string
	Out          string
	Duration     string
	Start        string
	End          string
	State        string
	Logo         string
	CG           string
	Categories   string
	PluginOption string
	Module       string
}

// NewLegacyItem builds a LegacyItem from an attribute bag.
//
// Absent attributes take their schema default. ply_state is the only field
// where an empty value also falls back to the default.
func NewLegacyItem(attrs map[string]string) LegacyItem {
	get := func(name, def string) string {
		if v, ok := attrs[name]; ok {
			return v
		}
		return def
	}

	state := get("ply_state", DefaultState)
	if state == "" {
		state = DefaultState
	}

	return LegacyItem{
		ID:           get("ply_id", ""),
		Title:        get("ply_title", ""),
		Path:         get("ply_path", ""),
		In:           get("ply_in", DefaultTimecode),
		Out:          get("ply_out", DefaultTimecode),
		Duration:     get("ply_duration", DefaultTimecode),
		Start:        get("ply_start", DefaultDateTime),
		End:          get("ply_end", DefaultDateTime),
		State:        state,
		Logo:         get("ply_logo", ""),
		CG:           get("ply_cg", ""),
		Categories:   get("ply_cats", ""),
		PluginOption: get("ply_pluginoption", ""),
		Module:       get("ply_module", ""),
	}
}

// =============================================================================
// NEW SCHEMA
// =============================================================================

// PlyList is the converted playlist document.
type PlyList struct {
	PlayState string
	Items     []PlyItem
}

// PlyItem is one converted playlist entry.
type PlyItem struct {
	GUID          string
	TCIn          string
	TCOut         string
	OriginalTCOut string
	TCDuration    string
	StartTime     string
	EndTime       string
	ClipPath      string
	ClipName      string
	ClipState     string
	FixState      string
	ClipLogo      string
	ClipCG        string
	Category      string
	CategoryGuid  string
	PluginData    string

	// Comment marks annotation entries. It is not serialized.
	Comment bool
}

// Attr is a single serialized attribute.
type Attr struct {
	Name  string
	Value string
}

// Attrs returns the item's attributes in schema order.
func (p PlyItem) Attrs() []Attr {
	return []Attr{
		{"GUID", p.GUID},
		{"TC_IN", p.TCIn},
		{"TC_OUT", p.TCOut},
		{"ORIGINAL_TC_OUT", p.OriginalTCOut},
		{"TC_DURATION", p.TCDuration},
		{"StartTime", p.StartTime},
		{"EndTime", p.EndTime},
		{"ClipPath", p.ClipPath},
		{"ClipName", p.ClipName},
		{"ClipState", p.ClipState},
		{"FixState", p.FixState},
		{"ClipLogo", p.ClipLogo},
		{"ClipCG", p.ClipCG},
		{"Category", p.Category},
		{"CategoryGuid", p.CategoryGuid},
		{"PluginData", p.PluginData},
	}
}
