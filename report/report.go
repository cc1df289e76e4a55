/*
Package report renders glyph lists and code point sets for humans and for
other tools.

Three formats are supported: aligned text tables, JSON and YAML. Code points
are always rendered in the form "U+0041", which is what font engineers grep
for.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package report

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Format selects an output format.
type Format int

const (
	Text Format = iota
	JSON
	YAML
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name ("text", "json", "yaml"; case-insensitive)
// to a Format. The empty string selects Text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return Text, fmt.Errorf("unsupported report format %q (expected text|json|yaml)", s)
}

type codepointRecord struct {
	Codepoint string `json:"codepoint" yaml:"codepoint"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
}

type glyphRecord struct {
	Glyph   string            `json:"glyph" yaml:"glyph"`
	Unicode []codepointRecord `json:"unicode,omitempty" yaml:"unicode,omitempty"`
}

func toRecord(u glyphs.UnicodeData) codepointRecord {
	return codepointRecord{
		Codepoint: u.Codepoint(),
		Name:      u.Name,
		Category:  u.Category,
	}
}

// WriteCodepoints writes the members of set to w, in code point order.
func WriteCodepoints(w io.Writer, set *glyphs.UnicodeSet, format Format) error {
	members := glyphs.SortedCodepoints(set)
	if format == Text {
		data := [][]string{{"Codepoint", "Name", "Category"}}
		for _, u := range members {
			data = append(data, []string{u.Codepoint(), u.Name, u.Category})
		}
		return writeTable(w, data)
	}
	records := make([]codepointRecord, len(members))
	for i, u := range members {
		records[i] = toRecord(u)
	}
	return encode(w, records, format)
}

// WriteGlyphs writes glyphs to w, in the order given.
func WriteGlyphs(w io.Writer, gg []glyphs.GlyphRef, format Format) error {
	if format == Text {
		data := [][]string{{"Glyph", "Codepoints", "Names"}}
		for _, g := range gg {
			cps := make([]string, len(g.Unicode))
			names := make([]string, len(g.Unicode))
			for i, u := range g.Unicode {
				cps[i], names[i] = u.Codepoint(), u.Name
			}
			data = append(data, []string{g.Name, strings.Join(cps, ","), strings.Join(names, ", ")})
		}
		return writeTable(w, data)
	}
	records := make([]glyphRecord, len(gg))
	for i, g := range gg {
		records[i].Glyph = g.Name
		for _, u := range g.Unicode {
			records[i].Unicode = append(records[i].Unicode, toRecord(u))
		}
	}
	return encode(w, records, format)
}

// WriteDuplicates writes one line per duplicate code point claim.
func WriteDuplicates(w io.Writer, dups []glyphs.Duplicate) error {
	for _, d := range dups {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, data [][]string) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func encode(w io.Writer, v any, format Format) error {
	switch format {
	case JSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("cannot encode as %s", format)
}
