/*
Package unicheck lints the Unicode annotations of glyphs against the Unicode
character database.

Glyph metadata carries a character name and a general category for every
code point a glyph encodes. Both are copied around by hand often enough to go
stale. Package unicheck compares them to the names of
golang.org/x/text/unicode/runenames and the category tables of package
unicode. Its findings are advisory; decoding glyph metadata never depends on
them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package unicheck

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/runenames"
)

// tracer writes to trace with key 'glyphmeta.unicheck'
func tracer() tracing.Trace {
	return tracing.Select("glyphmeta.unicheck")
}

// Kind classifies a finding.
type Kind int

const (
	NameMismatch     Kind = iota // character name differs from the UCD name
	CategoryMismatch             // general category differs from the UCD category
	UnknownCategory              // category tag is not a Unicode general category
)

func (k Kind) String() string {
	switch k {
	case NameMismatch:
		return "name"
	case CategoryMismatch:
		return "category"
	case UnknownCategory:
		return "unknown-category"
	}
	return "unknown"
}

// Finding is a deviation of a glyph's Unicode annotation from the UCD.
type Finding struct {
	Kind     Kind
	Encoding rune
	Glyph    string // empty if checked without glyph context
	Got      string // value found in the metadata
	Want     string // value expected from the UCD
}

func (f Finding) String() string {
	s := fmt.Sprintf("%s %s: %q, expected %q", glyphs.FormatCodepoint(f.Encoding), f.Kind, f.Got, f.Want)
	if f.Glyph != "" {
		s = f.Glyph + ": " + s
	}
	return s
}

// CheckGlyphs checks every Unicode entry of every glyph.
func CheckGlyphs(gg []glyphs.GlyphRef) []Finding {
	var findings []Finding
	for _, g := range gg {
		for _, u := range g.Unicode {
			for _, f := range Check(u) {
				f.Glyph = g.Name
				findings = append(findings, f)
			}
		}
	}
	return findings
}

// CheckSet checks the members of a code point set, in code point order.
func CheckSet(set *glyphs.UnicodeSet) []Finding {
	var findings []Finding
	for _, u := range glyphs.SortedCodepoints(set) {
		findings = append(findings, Check(u)...)
	}
	return findings
}

// Check compares a single annotation with the UCD. Empty names and
// categories are not checked. Names are compared case-insensitively and
// only for characters with a proper UCD name (not for controls, private use
// characters and the like).
func Check(u glyphs.UnicodeData) []Finding {
	var findings []Finding
	if name := strings.TrimSpace(u.Name); name != "" {
		want := runenames.Name(u.Encoding)
		if hasProperName(want) && !strings.EqualFold(name, want) {
			findings = append(findings, Finding{
				Kind:     NameMismatch,
				Encoding: u.Encoding,
				Got:      u.Name,
				Want:     want,
			})
		}
	}
	if cat := strings.TrimSpace(u.Category); cat != "" {
		table, ok := unicode.Categories[cat]
		want := Category(u.Encoding)
		switch {
		case !ok:
			findings = append(findings, Finding{
				Kind:     UnknownCategory,
				Encoding: u.Encoding,
				Got:      u.Category,
				Want:     want,
			})
		case !unicode.Is(table, u.Encoding):
			findings = append(findings, Finding{
				Kind:     CategoryMismatch,
				Encoding: u.Encoding,
				Got:      u.Category,
				Want:     want,
			})
		}
	}
	if len(findings) > 0 {
		tracer().Debugf("%s: %d finding(s)", glyphs.FormatCodepoint(u.Encoding), len(findings))
	}
	return findings
}

// hasProperName is false for empty names and for the placeholder names
// of controls and code point ranges, e.g. "<control>" or "<CJK Ideograph>".
func hasProperName(name string) bool {
	return name != "" && !strings.HasPrefix(name, "<")
}

var majorCategories = func() []string {
	var cats []string
	for c := range unicode.Categories {
		if len(c) == 2 && c != "LC" {
			cats = append(cats, c)
		}
	}
	slices.Sort(cats)
	return cats
}()

// Category returns the two-letter general category of r, or "Cn" for
// unassigned code points.
func Category(r rune) string {
	for _, c := range majorCategories {
		if unicode.Is(unicode.Categories[c], r) {
			return c
		}
	}
	return "Cn"
}
