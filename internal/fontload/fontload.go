// Package fontload loads compiled fonts for cross-checks against glyph
// metadata.
package fontload

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// CompiledFont is a parsed TrueType or OpenType font together with its
// original bytes, which must not change while the font is in use.
type CompiledFont struct {
	Fontname string
	Filepath string // empty for fonts parsed from memory
	Binary   []byte
	SFNT     *sfnt.Font
}

// Load loads a compiled font (TTF or OTF) from a file.
func Load(fontfile string) (*CompiledFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := Parse(bytez)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	if f.Fontname == "" {
		f.Fontname = fontfile
	}
	return f, nil
}

// Parse loads a compiled font (TTF or OTF) from memory.
func Parse(fbytes []byte) (*CompiledFont, error) {
	sf, err := sfnt.Parse(fbytes)
	if err != nil {
		return nil, err
	}
	f := &CompiledFont{Binary: fbytes, SFNT: sf}
	// a missing name record is no reason to reject the font
	f.Fontname, _ = sf.Name(nil, sfnt.NameIDFull)
	return f, nil
}
