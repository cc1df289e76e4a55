package report

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testGlyphs = []glyphs.GlyphRef{
	{Name: "B", Unicode: []glyphs.UnicodeData{{Name: "LATIN CAPITAL LETTER B", Category: "Lu", Encoding: 'B'}}},
	{Name: "A", Unicode: []glyphs.UnicodeData{{Name: "LATIN CAPITAL LETTER A", Category: "Lu", Encoding: 'A'}}},
	{Name: "A.alt"},
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": Text, "TEXT": Text, "json": JSON, " yml ": YAML} {
		f, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, f, "format %q", in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.Equal(t, "yaml", YAML.String())
}

func TestCodepointsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCodepoints(&buf, glyphs.UniqueCodepoints(testGlyphs), JSON))
	var got []codepointRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "U+0041", got[0].Codepoint, "code points must be sorted")
	assert.Equal(t, "LATIN CAPITAL LETTER B", got[1].Name)
}

func TestGlyphsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGlyphs(&buf, testGlyphs, YAML))
	var got []glyphRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "B", got[0].Glyph, "glyphs must keep their order")
	assert.Equal(t, "U+0042", got[0].Unicode[0].Codepoint)
	assert.Empty(t, got[2].Unicode)
	assert.NotContains(t, buf.String(), "unicode: []")
}

func TestTextTables(t *testing.T) {
	pterm.DisableColor()
	var buf bytes.Buffer
	require.NoError(t, WriteGlyphs(&buf, testGlyphs, Text))
	out := buf.String()
	assert.Contains(t, out, "Glyph")
	assert.Contains(t, out, "A.alt")
	assert.Contains(t, out, "U+0041")

	buf.Reset()
	require.NoError(t, WriteCodepoints(&buf, glyphs.UniqueCodepoints(testGlyphs), Text))
	out = buf.String()
	a, b := strings.Index(out, "U+0041"), strings.Index(out, "U+0042")
	require.True(t, a > 0 && b > 0, "table lacks code points:\n%s", out)
	assert.Less(t, a, b, "code points must be sorted")
}

func TestWriteDuplicates(t *testing.T) {
	var buf bytes.Buffer
	dups := glyphs.Duplicates(append(testGlyphs, glyphs.GlyphRef{
		Name: "uni0041", Unicode: []glyphs.UnicodeData{{Encoding: 'A'}},
	}))
	require.NoError(t, WriteDuplicates(&buf, dups))
	assert.Contains(t, buf.String(), "U+0041")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
