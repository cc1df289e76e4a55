/*
Package metadata obtains glyph metadata reports for UFO font projects.

The reports are produced by an external tool (MFEKmetadata), invoked as

	MFEKmetadata <ufodir> glyphs

which writes a tab-separated report to stdout. Clients of this package see
nothing of process management: a [Source] turns a UFO directory into report
text, and [Load] decodes that text into glyph references.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package metadata

import (
	"context"
	"fmt"

	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphmeta.metadata'
func tracer() tracing.Trace {
	return tracing.Select("glyphmeta.metadata")
}

// Source produces the glyph metadata report for a UFO directory.
type Source interface {
	GlyphsTSV(ctx context.Context, ufodir string) (string, error)
}

// Static is a Source which always returns the same report, regardless of
// the directory asked for.
type Static string

// GlyphsTSV returns s.
func (s Static) GlyphsTSV(ctx context.Context, ufodir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(s), nil
}

// Load fetches the report for ufodir from src and decodes it.
func Load(ctx context.Context, src Source, ufodir string, opts ...glyphs.DecodeOption) ([]glyphs.GlyphRef, error) {
	text, err := src.GlyphsTSV(ctx, ufodir)
	if err != nil {
		return nil, err
	}
	g, err := glyphs.Decode(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("metadata of %s: %w", ufodir, err)
	}
	tracer().Infof("loaded %d glyphs from %s", len(g), ufodir)
	return g, nil
}
