package glyphs

import "fmt"

// Duplicate describes a code point claimed by more than one glyph.
type Duplicate struct {
	Encoding   rune   // the contested code point
	Glyph      string // glyph whose claim has been discarded
	FirstGlyph string // glyph which claimed the code point first and keeps it
}

func (d Duplicate) String() string {
	return fmt.Sprintf("two glyphs with identical encoding in font: U+%04X (%s, %s)! Try `grep -R %04X` on glyphs dir.",
		uint32(d.Encoding), d.FirstGlyph, d.Glyph, uint32(d.Encoding))
}

// ReduceOption configures [UniqueCodepoints].
type ReduceOption func(*reducer)

// OnDuplicate registers a handler which is called for every code point
// claim rejected as a duplicate. Handlers are called in addition to tracing
// the duplicate.
func OnDuplicate(handler func(Duplicate)) ReduceOption {
	return func(r *reducer) {
		if handler != nil {
			r.handlers = append(r.handlers, handler)
		}
	}
}

type reducer struct {
	handlers []func(Duplicate)
}

// UniqueCodepoints collects the code points of all glyphs into a set.
//
// Glyphs are visited in order, and the Unicode entries of a glyph in order as
// well. The first entry for a code point is kept; every later entry for the
// same code point is discarded and reported as a [Duplicate]. Reporting
// duplicates is advisory: the set is always complete.
func UniqueCodepoints(glyphs []GlyphRef, opts ...ReduceOption) *UnicodeSet {
	r := &reducer{}
	for _, opt := range opts {
		opt(r)
	}
	set := NewUnicodeSet()
	owners := make(map[rune]string)
	for _, g := range glyphs {
		for _, u := range g.Unicode {
			if set.Insert(u) {
				owners[CodepointKey(u)] = g.Name
				continue
			}
			dup := Duplicate{
				Encoding:   u.Encoding,
				Glyph:      g.Name,
				FirstGlyph: owners[CodepointKey(u)],
			}
			tracer().Errorf("%s", dup)
			for _, handle := range r.handlers {
				handle(dup)
			}
		}
	}
	tracer().Debugf("%d glyphs encode %d distinct code points", len(glyphs), set.Len())
	return set
}

// Duplicates returns the code point claims [UniqueCodepoints] would reject
// for glyphs.
func Duplicates(glyphs []GlyphRef) []Duplicate {
	var dups []Duplicate
	UniqueCodepoints(glyphs, OnDuplicate(func(d Duplicate) {
		dups = append(dups, d)
	}))
	return dups
}
