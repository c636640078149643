package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/Tillihusky/plycast-plyt-converter/internal/guid"
	"github.com/Tillihusky/plycast-plyt-converter/internal/plytparser"
	"github.com/Tillihusky/plycast-plyt-converter/internal/types"
)

// sequence hands out predictable GUIDs.
type sequence struct{ n int }

func (s *sequence) Generate(string) string {
	s.n++
	return fmt.Sprintf("guid-%d", s.n)
}

const playlist = `<?xml version="1.0" encoding="UTF-8"?>
<Template playlist_playstate="True">
  <item ply_id="0123456789abcdef0123456789abcdef" ply_title="Opening" ply_path="C:\shows\open.mp4"
        ply_in="00:00:01.000" ply_out="00:00:10.000" ply_duration="00:00:09.000"
        ply_start="2024-05-01 06:00:00.000" ply_end="2024-05-01 06:00:09.000"
        ply_state=" cue " ply_logo="," ply_cg="lower third" ply_cats="News;Top" ply_pluginoption="x=1"/>
  <item ply_id="ABCDEFGHIJKLMNOPQRSTUV" ply_title="  Break here  " ply_path="X:\foo\COMMENT.PlyEvent"
        ply_in="00:01:00.000" ply_out="00:02:00.000" ply_duration="00:01:00.000"
        ply_start="2024-05-01 06:00:09.000" ply_logo="logo.png" ply_cats="Promo" ply_pluginoption="y"/>
  <item ply_id="short" ply_title="Flagged" ply_path="/shows/clip.mp4" ply_module="TRUE"/>
  <item ply_path="/shows/plain.mp4" ply_logo="a,b" ply_cats="Sports"/>
</Template>`

func parse(t *testing.T, src string) *types.LegacyDocument {
	t.Helper()
	doc, err := plytparser.Parse(strings.NewReader(src), "test.plyt")
	require.NoError(t, err)
	return doc
}

func TestConvert(t *testing.T) {
	list := Convert(parse(t, playlist), guid.Keep{})

	want := &types.PlyList{
		PlayState: "True",
		Items: []types.PlyItem{
			{
				GUID:          "01234567-89ab-cdef-0123-456789abcdef",
				TCIn:          "00:00:01.000",
				TCOut:         "00:00:10.000",
				OriginalTCOut: "00:00:10.000",
				TCDuration:    "00:00:09.000",
				StartTime:     "2024-05-01 06:00:00.000",
				EndTime:       "2024-05-01 06:00:09.000",
				ClipPath:      `C:\shows\open.mp4`,
				ClipName:      "open.mp4",
				ClipState:     "CUE",
				FixState:      "False",
				ClipLogo:      "",
				ClipCG:        "lower third",
				Category:      "News",
				PluginData:    "x=1",
			},
			{
				GUID:          "ABCDEFGH-IJKL-MNOP-QRST-UV",
				TCIn:          "00:00:00.000",
				TCOut:         "00:00:00.000",
				OriginalTCOut: "00:00:00.000",
				TCDuration:    "00:00:00.000",
				StartTime:     "2024-05-01 06:00:09.000",
				EndTime:       types.DefaultDateTime,
				ClipPath:      "[COMMENT]",
				ClipName:      "Break here",
				ClipState:     "FOLLOW",
				FixState:      "False",
				Comment:       true,
			},
			{
				GUID:          "short----",
				TCIn:          "00:00:00.000",
				TCOut:         "00:00:00.000",
				OriginalTCOut: "00:00:00.000",
				TCDuration:    "00:00:00.000",
				StartTime:     types.DefaultDateTime,
				EndTime:       types.DefaultDateTime,
				ClipPath:      "[COMMENT]",
				ClipName:      "Flagged",
				ClipState:     "FOLLOW",
				FixState:      "False",
				Comment:       true,
			},
			{
				GUID:          "----",
				TCIn:          types.DefaultTimecode,
				TCOut:         types.DefaultTimecode,
				OriginalTCOut: types.DefaultTimecode,
				TCDuration:    types.DefaultTimecode,
				StartTime:     types.DefaultDateTime,
				EndTime:       types.DefaultDateTime,
				ClipPath:      "/shows/plain.mp4",
				ClipName:      "plain.mp4",
				ClipState:     "FOLLOW",
				FixState:      "False",
				ClipLogo:      "a,b",
				Category:      "Sports",
			},
		},
	}

	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertPreservesCountAndOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString("<Template>")
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&b, `<item ply_title="t%d" ply_path="/clips/%d.mp4"/>`, i, i)
	}
	b.WriteString("</Template>")

	gen := &sequence{}
	list := Convert(parse(t, b.String()), gen)
	require.Len(t, list.Items, 50)
	for i, item := range list.Items {
		require.Equal(t, fmt.Sprintf("%d.mp4", i), item.ClipName)
		require.Equal(t, fmt.Sprintf("guid-%d", i+1), item.GUID)
		require.Equal(t, item.TCOut, item.OriginalTCOut)
		require.Empty(t, item.CategoryGuid)
	}
}

func TestConvertRandomModeIgnoresLegacyID(t *testing.T) {
	doc := parse(t, playlist)

	first := Convert(doc, guid.Random{})
	second := Convert(doc, guid.Random{})
	require.Len(t, second.Items, len(first.Items))
	for i := range first.Items {
		require.NotEqual(t, first.Items[i].GUID, second.Items[i].GUID)
		require.NotContains(t, first.Items[i].GUID, "0123456789abcdef0123")
	}

	// Everything except the GUID is deterministic.
	ignoreGUID := cmpopts.IgnoreFields(types.PlyItem{}, "GUID")
	if diff := cmp.Diff(first, second, ignoreGUID); diff != "" {
		t.Errorf("random conversions differ beyond GUID (-first +second):\n%s", diff)
	}
}

func TestConvertEmptyDocument(t *testing.T) {
	list := Convert(parse(t, `<Template playlist_playstate="False"></Template>`), guid.Keep{})
	require.Equal(t, "False", list.PlayState)
	require.Empty(t, list.Items)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.plyt")
	dst := filepath.Join(dir, "in_new.plyt")
	require.NoError(t, os.WriteFile(src, []byte(playlist), 0o644))

	conv := New(Options{Generator: guid.Keep{}})
	result, err := conv.ConvertFile(src, dst)
	require.NoError(t, err)
	require.Equal(t, src, result.Source)
	require.Equal(t, dst, result.Destination)
	require.Equal(t, 4, result.Stats.ItemsConverted)
	require.Equal(t, 2, result.Stats.CommentItems)
	require.Equal(t, 2, result.Stats.Warnings, "short and empty legacy ids")

	out, err := os.ReadFile(dst)
	require.NoError(t, err)
	text := string(out)
	require.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.Contains(t, text, `<PlyList PlayState="True">`)
	require.Equal(t, 4, strings.Count(text, "<PlyItem "))
	require.Contains(t, text, `GUID="01234567-89ab-cdef-0123-456789abcdef"`)
	require.Contains(t, text, `ClipPath="[COMMENT]"`)

	// The output is itself parseable, but no longer a legacy playlist.
	_, err = plytparser.ParseFile(dst)
	var schemaErr *types.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	require.Equal(t, "PlyList", schemaErr.Tag)
}

func TestConvertFileWrongRootWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.plyt")
	dst := filepath.Join(dir, "in_new.plyt")
	require.NoError(t, os.WriteFile(src, []byte(`<Playlist><item/></Playlist>`), 0o644))

	_, err := New(Options{}).ConvertFile(src, dst)
	var schemaErr *types.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	require.Contains(t, err.Error(), src)
	require.NoFileExists(t, dst)
}

func TestConvertFileMalformedWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.plyt")
	dst := filepath.Join(dir, "in_new.plyt")
	require.NoError(t, os.WriteFile(src, []byte(`<Template><item>`), 0o644))

	_, err := New(Options{}).ConvertFile(src, dst)
	var parseErr *types.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.NoFileExists(t, dst)
}

func TestConvertFileUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.plyt")
	require.NoError(t, os.WriteFile(src, []byte(playlist), 0o644))

	_, err := New(Options{}).ConvertFile(src, filepath.Join(dir, "missing", "out.plyt"))
	var ioErr *types.IOError
	require.True(t, errors.As(err, &ioErr))
	require.Equal(t, "write", ioErr.Op)
}
