/*
Package glyphmeta answers the question "what encodings exist in this font,
and which glyph maps to each?" for UFO font projects.

Glyph metadata is extracted by an external tool (see package metadata),
decoded into glyph references and reduced to a de-duplicated set of code
points (see package glyphs). This package bundles these steps for the common
case; clients needing more control use the sub-packages directly.

▪︎ glyphs: record model, TSV decoder and code point reduction

▪︎ metadata: running the metadata tool

▪︎ unicheck: linting names and categories against the UCD

▪︎ cmapcheck: comparing metadata with a compiled font

▪︎ report: text, JSON and YAML output

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphmeta

import (
	"context"

	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/npillmayer/glyphmeta/metadata"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphmeta'
func tracer() tracing.Trace {
	return tracing.Select("glyphmeta")
}

// MinToolVersion is the oldest metadata tool version producing the report
// format this module decodes.
const MinToolVersion = "0.0.4"

// ForUFO extracts the glyph metadata of a UFO directory, using the metadata
// tool found on PATH.
func ForUFO(ctx context.Context, ufodir string, opts ...glyphs.DecodeOption) ([]glyphs.GlyphRef, error) {
	tool, err := metadata.Lookup(metadata.DefaultTool)
	if err != nil {
		return nil, err
	}
	if err := tool.RequireVersion(ctx, MinToolVersion); err != nil {
		return nil, err
	}
	return metadata.Load(ctx, tool, ufodir, opts...)
}

// UniqueCodepointsForUFO extracts the glyph metadata of a UFO directory and
// reduces it to a set of code points. Code points claimed by more than one
// glyph are returned as duplicates; they do not make the call fail.
func UniqueCodepointsForUFO(ctx context.Context, ufodir string) (*glyphs.UnicodeSet, []glyphs.Duplicate, error) {
	gg, err := ForUFO(ctx, ufodir)
	if err != nil {
		return nil, nil, err
	}
	var dups []glyphs.Duplicate
	set := glyphs.UniqueCodepoints(gg, glyphs.OnDuplicate(func(d glyphs.Duplicate) {
		dups = append(dups, d)
	}))
	if len(dups) > 0 {
		tracer().Infof("%s: %d duplicate encoding(s)", ufodir, len(dups))
	}
	return set, dups, nil
}
