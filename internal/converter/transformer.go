// =============================================================================
// PlyCast Playlist Converter - Field Rules
// =============================================================================
//
// Field-level business rules used when mapping a legacy item to a PlyItem:
//
//   - comment detection (path suffix or ply_module flag)
//   - portable basename extraction for ClipName
//   - first-token category parsing
//   - legacy "no logo" artifact
//   - ClipState normalization
//
// =============================================================================

package converter

import (
	"strings"

	"github.com/Tillihusky/plycast-plyt-converter/internal/types"
)

const (
	// CommentSuffix marks a legacy path as a comment event.
	CommentSuffix = "comment.plyevent"

	// CommentClipPath replaces ClipPath for comment items.
	CommentClipPath = "[COMMENT]"

	// noLogo is how legacy exports spell "no logo".
	noLogo = ","
)

// moduleTruthy is the exact set of ply_module values that mark a comment.
// Other truthy spellings ("y", "enabled") are not accepted.
var moduleTruthy = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
	"on":   true,
}

// IsComment reports whether item is an annotation rather than playable media.
func IsComment(item types.LegacyItem) bool {
	path := strings.ToLower(strings.TrimSpace(item.Path))
	if strings.HasSuffix(path, CommentSuffix) {
		return true
	}
	return moduleTruthy[strings.ToLower(strings.TrimSpace(item.Module))]
}

// BaseName returns the last path segment, treating both / and \ as
// separators regardless of the host OS.
//
//   C:\shows\clip.mp4  -> clip.mp4
//   /shows/clip.mp4    -> clip.mp4
//   \\nas\a/b\clip.mp4 -> clip.mp4
func BaseName(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ParseCategory returns the first semicolon-delimited token, trimmed.
func ParseCategory(cats string) string {
	s := strings.TrimSpace(cats)
	if s == "" {
		return ""
	}
	first, _, _ := strings.Cut(s, ";")
	return strings.TrimSpace(first)
}

// ClipLogo passes the legacy logo through unless it is the lone-comma
// artifact.
func ClipLogo(logo string) string {
	if strings.TrimSpace(logo) == noLogo {
		return ""
	}
	return logo
}

// ClipState trims and uppercases the legacy state.
func ClipState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}
