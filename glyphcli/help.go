package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "cp", "codepoint", "codepoints":
		pterm.Info.Println("cp:<hex>")
		pterm.Println(`
	Lists the glyphs encoding a code point. The code point is given in hex,
	with or without a "U+" prefix, e.g. cp:0041 or cp:U+1F600.
	More than one glyph for a code point means a duplicate encoding.
	`)
	case "unique", "dups", "duplicates":
		pterm.Info.Println("unique / dups")
		pterm.Println(`
	unique reduces all glyphs to the set of distinct code points and prints it
	in code point order. For a code point claimed by more than one glyph, the
	glyph listed first in the metadata wins.
	dups lists the claims which have been rejected, as
	+-----------+-------------+---------------+
	| Codepoint | First glyph | Dropped glyph |
	+-----------+-------------+---------------+
	`)
	case "list", "sort", "glyph":
		pterm.Info.Println("list[:n] / sort / glyph:<name>")
		pterm.Println(`
	list prints the first n glyphs (all glyphs if n is omitted).
	sort orders glyphs by their first code point; unencoded glyphs come last,
	ordered by name.
	glyph prints the Unicode annotations of a single glyph.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	load:<file>   load a glyph metadata report (TSV)
	list[:n]      list glyphs
	sort          sort glyphs by code point
	glyph:<name>  show a glyph
	cp:<hex>      find glyphs encoding a code point
	unique        distinct code points
	dups          duplicate encodings
	lint          compare names and categories with the UCD
	help:<topic>  more help on cp, unique, list
	quit          leave
	Steps may be chained: "sort list:20"
	`)
	}
}
