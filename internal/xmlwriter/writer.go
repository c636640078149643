// =============================================================================
// PlyCast Playlist Converter - XML Writer Module
// =============================================================================
//
// This module serializes a converted types.PlyList.
//
// XML STRUCTURE:
//
//   <?xml version="1.0" encoding="UTF-8"?>
//   <PlyList PlayState="False">
//     <PlyItem GUID="..." TC_IN="..." TC_OUT="..." ... PluginData=""/>
//     <PlyItem GUID="..." ... />
//   </PlyList>
//
// All data lives in attributes, so every PlyItem is self-closing. Attribute
// order follows types.PlyItem.Attrs.
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/Tillihusky/plycast-plyt-converter/internal/types"
)

// =============================================================================
// XML GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for XML generation.
type GenerateOptions struct {
	// Indent is the string used for indentation. Empty writes everything
	// on one line after the declaration.
	// Default: "  " (two spaces)
	Indent string

	// IncludeXMLDeclaration determines whether to include the XML declaration.
	// Default: true
	IncludeXMLDeclaration bool

	// XMLVersion is the XML version for the declaration.
	// Default: "1.0"
	XMLVersion string
}

// DefaultGenerateOptions returns the default generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Indent:                "  ",
		IncludeXMLDeclaration: true,
		XMLVersion:            "1.0",
	}
}

// =============================================================================
// XML GENERATION FUNCTIONS
// =============================================================================

// Generate serializes list with the default options.
func Generate(list *types.PlyList) ([]byte, error) {
	return GenerateWithOptions(list, DefaultGenerateOptions())
}

// GenerateWithOptions serializes list as UTF-8 XML.
func GenerateWithOptions(list *types.PlyList, options GenerateOptions) ([]byte, error) {
	if list == nil {
		return nil, fmt.Errorf("nothing to serialize")
	}

	var buffer bytes.Buffer

	if options.IncludeXMLDeclaration {
		version := options.XMLVersion
		if version == "" {
			version = "1.0"
		}
		fmt.Fprintf(&buffer, "<?xml version=\"%s\" encoding=\"UTF-8\"?>\n", version)
	}

	newline := "\n"
	if options.Indent == "" {
		newline = ""
	}

	// Root element opening tag.
	buffer.WriteString("<" + types.PlyListRootTag)
	if err := writeAttr(&buffer, "PlayState", list.PlayState); err != nil {
		return nil, err
	}

	if len(list.Items) == 0 {
		buffer.WriteString("/>\n")
		return buffer.Bytes(), nil
	}
	buffer.WriteString(">" + newline)

	for i, item := range list.Items {
		buffer.WriteString(options.Indent)
		buffer.WriteString("<" + types.PlyItemTag)
		for _, attr := range item.Attrs() {
			if err := writeAttr(&buffer, attr.Name, attr.Value); err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
		}
		buffer.WriteString("/>" + newline)
	}

	buffer.WriteString("</" + types.PlyListRootTag + ">\n")

	return buffer.Bytes(), nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// writeAttr writes ` name="value"` with the value escaped for an attribute.
func writeAttr(buffer *bytes.Buffer, name, value string) error {
	buffer.WriteString(" ")
	buffer.WriteString(name)
	buffer.WriteString(`="`)
	if err := escapeAttr(buffer, value); err != nil {
		return fmt.Errorf("attribute %s: %w", name, err)
	}
	buffer.WriteString(`"`)
	return nil
}

// escapeAttr escapes markup characters as well as tab, newline and carriage
// return, which a parser would otherwise normalize to spaces.
func escapeAttr(buffer *bytes.Buffer, value string) error {
	return xml.EscapeText(buffer, []byte(value))
}
