/*
Package glyphs models the per-glyph Unicode metadata of a font project and
reduces it to a canonical set of code points.

The metadata arrives as tab-separated text with a header row, as produced by
a metadata extraction tool run on a UFO directory:

	glifname	uniname	codepoints	unicat
	A	LATIN CAPITAL LETTER A	0041	Lu
	f_i	LATIN SMALL LETTER F,LATIN SMALL LETTER I	0066,0069	Ll,Ll

[Decode] turns such text into a slice of [GlyphRef], one per data row, in
input order. Columns are located by header name, so column order does not
matter and unknown columns are ignored. The multi-valued columns are zipped
by position into [UnicodeData] entries.

[UniqueCodepoints] folds a slice of glyph references into a [UnicodeSet]
holding every code point once. A code point is the identity of a
UnicodeData value; names and categories are descriptive payload only. When
more than one glyph claims the same code point, the first one wins and a
warning is traced.

Decoding is all-or-nothing: a missing header column yields a [SchemaError],
a broken row yields a [RecordError]. Reduction never fails.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphmeta.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("glyphmeta.glyphs")
}
