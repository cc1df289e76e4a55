/*
Package cmapcheck compares the code points claimed by glyph metadata with the
character map of a compiled font.

A font project's glyph metadata says which code points the font is meant to
encode. After compilation, the font's 'cmap' table says which code points it
actually encodes. Package cmapcheck reports code points present in the
metadata but missing from the compiled font.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package cmapcheck

import (
	"fmt"

	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/npillmayer/glyphmeta/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'glyphmeta.cmapcheck'
func tracer() tracing.Trace {
	return tracing.Select("glyphmeta.cmapcheck")
}

// Result is the outcome of a comparison. Both lists are in ascending code
// point order.
type Result struct {
	Font    string               // name of the compiled font, if known
	Mapped  []glyphs.UnicodeData // code points the font maps to a glyph
	Missing []glyphs.UnicodeData // code points the font maps to .notdef
}

// Complete reports whether the font maps every code point of the metadata.
func (r Result) Complete() bool {
	return len(r.Missing) == 0
}

// Compare looks up every member of set in the character map of font.
func Compare(font *sfnt.Font, set *glyphs.UnicodeSet) (Result, error) {
	var (
		res Result
		buf sfnt.Buffer
	)
	for _, u := range glyphs.SortedCodepoints(set) {
		gid, err := font.GlyphIndex(&buf, u.Encoding)
		if err != nil {
			return Result{}, fmt.Errorf("cmap lookup of %s: %w", u.Codepoint(), err)
		}
		if gid == 0 {
			tracer().Debugf("%s not in cmap", u.Codepoint())
			res.Missing = append(res.Missing, u)
			continue
		}
		res.Mapped = append(res.Mapped, u)
	}
	return res, nil
}

// CompareFile loads a compiled font from fontfile and compares it with set.
func CompareFile(fontfile string, set *glyphs.UnicodeSet) (Result, error) {
	f, err := fontload.Load(fontfile)
	if err != nil {
		return Result{}, err
	}
	res, err := Compare(f.SFNT, set)
	res.Font = f.Fontname
	if err == nil {
		tracer().Infof("%s: %d of %d code points mapped", f.Fontname, len(res.Mapped), set.Len())
	}
	return res, err
}
