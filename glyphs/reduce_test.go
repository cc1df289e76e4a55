package glyphs

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ReduceTestEnviron struct {
	suite.Suite
	glyphs []GlyphRef
}

// listen for 'go test' command --> run test methods
func TestReduceFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphmeta.glyphs")
	defer teardown()
	suite.Run(t, new(ReduceTestEnviron))
}

// run once, before test suite methods
func (env *ReduceTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("glyphmeta.glyphs").SetTraceLevel(tracing.LevelError)
	env.glyphs = []GlyphRef{
		{Name: "A", Unicode: []UnicodeData{{"LATIN CAPITAL LETTER A", "Lu", 'A'}}},
		{Name: "B", Unicode: []UnicodeData{{"LATIN CAPITAL LETTER B", "Lu", 'B'}}},
		{Name: "A.alt"},
		{Name: "uni0041", Unicode: []UnicodeData{{"DUPLICATE A", "So", 'A'}}},
		{Name: "AB", Unicode: []UnicodeData{{"", "", 'A'}, {"", "", 'B'}, {"LATIN CAPITAL LETTER C", "Lu", 'C'}}},
	}
}

// --- Tests -----------------------------------------------------------------

func (env *ReduceTestEnviron) TestFirstSeenWins() {
	set := UniqueCodepoints(env.glyphs)
	env.Equal(3, set.Len())
	a, ok := set.Get('A')
	env.Require().True(ok)
	env.Equal("LATIN CAPITAL LETTER A", a.Name, "first glyph claiming U+0041 must win")
	env.Equal("Lu", a.Category)
	c, ok := set.Get('C')
	env.Require().True(ok)
	env.Equal("LATIN CAPITAL LETTER C", c.Name)
}

func (env *ReduceTestEnviron) TestDuplicateWarnings() {
	var dups []Duplicate
	UniqueCodepoints(env.glyphs, OnDuplicate(func(d Duplicate) {
		dups = append(dups, d)
	}))
	env.Require().Len(dups, 3)
	env.Equal(Duplicate{Encoding: 'A', Glyph: "uni0041", FirstGlyph: "A"}, dups[0])
	env.Equal(Duplicate{Encoding: 'A', Glyph: "AB", FirstGlyph: "A"}, dups[1])
	env.Equal(Duplicate{Encoding: 'B', Glyph: "AB", FirstGlyph: "B"}, dups[2])
	env.Equal(dups, Duplicates(env.glyphs))
}

func (env *ReduceTestEnviron) TestSingleDuplicate() {
	glyphs := []GlyphRef{
		{Name: "A", Unicode: []UnicodeData{{Encoding: 'A'}}},
		{Name: "A.copy", Unicode: []UnicodeData{{Encoding: 'A'}}},
	}
	count := 0
	set := UniqueCodepoints(glyphs, OnDuplicate(func(Duplicate) { count++ }))
	env.Equal(1, set.Len())
	env.True(set.Contains(UnicodeData{Encoding: 0x41}))
	env.Equal(1, count, "expected exactly one warning for U+0041")
}

func (env *ReduceTestEnviron) TestDuplicateMessage() {
	d := Duplicate{Encoding: 'A', Glyph: "uni0041", FirstGlyph: "A"}
	msg := d.String()
	env.True(strings.Contains(msg, "U+0041"), "message must carry greppable code point: %s", msg)
	env.True(strings.Contains(msg, "grep -R 0041"))
	d = Duplicate{Encoding: 0xe9}
	env.True(strings.Contains(d.String(), "U+00E9"))
}

func (env *ReduceTestEnviron) TestEmptyInput() {
	set := UniqueCodepoints(nil)
	env.NotNil(set)
	env.Equal(0, set.Len())
	env.Empty(Duplicates(nil))
}

func (env *ReduceTestEnviron) TestIdempotent() {
	first := UniqueCodepoints(env.glyphs)
	var wrapped []GlyphRef
	for u := range first.All() {
		wrapped = append(wrapped, GlyphRef{Name: u.Codepoint(), Unicode: []UnicodeData{u}})
	}
	dupCount := 0
	second := UniqueCodepoints(wrapped, OnDuplicate(func(Duplicate) { dupCount++ }))
	env.Equal(0, dupCount)
	env.Equal(SortedCodepoints(first), SortedCodepoints(second))
	for u := range first.All() {
		v, ok := second.Get(u.Encoding)
		env.Require().True(ok)
		env.Equal(u.Name, v.Name)
	}
}

func (env *ReduceTestEnviron) TestNilHandlerIgnored() {
	set := UniqueCodepoints(env.glyphs, OnDuplicate(nil))
	env.Equal(3, set.Len())
}
