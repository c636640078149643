// =============================================================================
// PlyCast Playlist Converter - Legacy Playlist Parser
// =============================================================================
//
// This module reads legacy PlyCast playlists into types.LegacyDocument.
//
// INPUT STRUCTURE:
//
//   <Template playlist_playstate="False">
//     <item ply_id="..." ply_title="..." ply_path="C:\clips\a.mp4" ... />
//     <item ply_id="..." ply_module="true" ... />
//   </Template>
//
// Only direct <item> children of the root are read. Attributes are kept as
// an attribute bag so absent and empty values can be told apart; defaults
// are applied by types.NewLegacyItem.
//
// ENCODINGS:
//   Files exported by older PlyCast builds may declare a legacy encoding
//   (windows-1252, iso-8859-x) or carry a UTF-16 byte order mark. Both are
//   normalized to UTF-8 before decoding.
//
// =============================================================================

package plytparser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/Tillihusky/plycast-plyt-converter/internal/types"
)

// =============================================================================
// RAW XML STRUCTURE
// =============================================================================

type rawTemplate struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Items   []rawItem  `xml:"item"`
}

type rawItem struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

// =============================================================================
// PARSING FUNCTIONS
// =============================================================================

// ParseFile reads and parses the playlist at path.
//
// RETURNS:
//   - *types.IOError if the file cannot be read.
//   - *types.ParseError if the content is not well-formed XML.
//   - *types.SchemaError if the root element is not <Template>.
func ParseFile(path string) (*types.LegacyDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse decodes a legacy playlist from r. source is only used to label
// errors and the returned document.
func Parse(r io.Reader, source string) (*types.LegacyDocument, error) {
	// Strip a UTF-8 BOM or transcode UTF-16 (with BOM) to UTF-8. Input
	// without a BOM passes through untouched for charsetReader.
	normalized := transform.NewReader(r, unicode.BOMOverride(transform.Nop))

	decoder := xml.NewDecoder(normalized)
	decoder.CharsetReader = charsetReader

	var raw rawTemplate
	if err := decoder.Decode(&raw); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, &types.ParseError{Path: source, Err: err}
	}
	if err := checkTrailer(decoder); err != nil {
		return nil, &types.ParseError{Path: source, Err: err}
	}

	if tag := qualifiedName(raw.XMLName); tag != types.LegacyRootTag {
		return nil, &types.SchemaError{Path: source, Tag: tag}
	}

	root := attrBag(raw.Attrs)
	playState, ok := root["playlist_playstate"]
	if !ok {
		playState = types.DefaultPlayState
	}

	doc := &types.LegacyDocument{
		Source:    source,
		PlayState: playState,
		Items:     make([]types.LegacyItem, 0, len(raw.Items)),
	}
	for _, item := range raw.Items {
		doc.Items = append(doc.Items, types.NewLegacyItem(attrBag(item.Attrs)))
	}

	return doc, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// checkTrailer reads the rest of the document after the root element. Only
// whitespace, comments and processing instructions may follow it.
func checkTrailer(decoder *xml.Decoder) error {
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return fmt.Errorf("line %d: text after root element", lineOf(decoder))
			}
		case xml.StartElement:
			return fmt.Errorf("line %d: element <%s> after root element", lineOf(decoder), t.Name.Local)
		case xml.EndElement:
			return fmt.Errorf("line %d: unexpected </%s>", lineOf(decoder), t.Name.Local)
		case xml.Directive:
			return fmt.Errorf("line %d: directive after root element", lineOf(decoder))
		}
	}
}

func lineOf(decoder *xml.Decoder) int {
	line, _ := decoder.InputPos()
	return line
}

// attrBag keeps un-namespaced attributes only. A namespaced ply_id is a
// different attribute and is ignored.
func attrBag(attrs []xml.Attr) map[string]string {
	bag := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if a.Name.Space != "" {
			continue
		}
		bag[a.Name.Local] = a.Value
	}
	return bag
}

// qualifiedName renders a namespaced element as {space}local so that a
// namespaced <Template> is not mistaken for the legacy root.
func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return "{" + name.Space + "}" + name.Local
}

// charsetReader resolves the encoding named in the XML declaration.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}

	// UTF-16 input has already been transcoded by the BOM override.
	if name, _ := htmlindex.Name(enc); name == "utf-8" || strings.HasPrefix(name, "utf-16") {
		return input, nil
	}

	return enc.NewDecoder().Reader(input), nil
}
