package glyphs

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// UnicodeData is a single Unicode annotation of a glyph.
//
// The code point (Encoding) is the identity of a UnicodeData value. Two
// values with the same code point are interchangeable, whatever their Name
// and Category say.
type UnicodeData struct {
	Name     string // Unicode character name, e.g. "LATIN CAPITAL LETTER A"
	Category string // general category, e.g. "Lu"
	Encoding rune   // Unicode scalar value
}

// CodepointKey is the identity of a UnicodeData value. It is the key function
// of every [UnicodeSet].
func CodepointKey(u UnicodeData) rune {
	return u.Encoding
}

// Equal reports whether u and other denote the same code point.
func (u UnicodeData) Equal(other UnicodeData) bool {
	return CodepointKey(u) == CodepointKey(other)
}

// CompareUnicode orders UnicodeData values by ascending code point.
// It returns 0 exactly if a.Equal(b).
func CompareUnicode(a, b UnicodeData) int {
	return cmp.Compare(CodepointKey(a), CodepointKey(b))
}

// Codepoint returns the code point in the form "U+0041".
func (u UnicodeData) Codepoint() string {
	return FormatCodepoint(u.Encoding)
}

func (u UnicodeData) String() string {
	s := u.Codepoint()
	if u.Name != "" {
		s += " " + u.Name
	}
	if u.Category != "" {
		s += " (" + u.Category + ")"
	}
	return s
}

// FormatCodepoint formats r as an upper-case hex code point with at least
// 4 digits, prefixed by "U+".
func FormatCodepoint(r rune) string {
	return fmt.Sprintf("U+%04X", uint32(r))
}

// --- Glyph references ------------------------------------------------------

// GlyphRef is a glyph of a font, identified by name, together with the
// code points it encodes. A glyph may encode no code point at all
// (e.g., alternates reached only through layout features) or several
// of them.
type GlyphRef struct {
	Name    string
	Unicode []UnicodeData
}

func (g GlyphRef) String() string {
	return g.Name
}

// Encoded reports whether g encodes at least one code point.
func (g GlyphRef) Encoded() bool {
	return len(g.Unicode) > 0
}

// Codepoints returns the code points of g, in order.
func (g GlyphRef) Codepoints() []rune {
	cps := make([]rune, len(g.Unicode))
	for i, u := range g.Unicode {
		cps[i] = u.Encoding
	}
	return cps
}

// Equal reports whether g and other have the same name and encode the same
// sequence of code points.
func (g GlyphRef) Equal(other GlyphRef) bool {
	if g.Name != other.Name {
		return false
	}
	return slices.EqualFunc(g.Unicode, other.Unicode, UnicodeData.Equal)
}

// CompareGlyphs orders glyphs for review: glyphs are ordered by the code
// point of their first Unicode entry; encoded glyphs come before unencoded
// ones; unencoded glyphs are ordered by name.
//
// Two encoded glyphs sharing their first code point compare as 0.
func CompareGlyphs(a, b GlyphRef) int {
	switch {
	case a.Encoded() && b.Encoded():
		return CompareUnicode(a.Unicode[0], b.Unicode[0])
	case a.Encoded():
		return -1
	case b.Encoded():
		return +1
	}
	return strings.Compare(a.Name, b.Name)
}

// SortGlyphs sorts glyphs in place, using [CompareGlyphs]. Sorting is stable,
// so glyphs comparing equal keep their input order.
func SortGlyphs(glyphs []GlyphRef) {
	slices.SortStableFunc(glyphs, CompareGlyphs)
}
