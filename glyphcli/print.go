package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/npillmayer/glyphmeta/unicheck"
	"github.com/pterm/pterm"
)

func listOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkGlyphs(); err != nil {
		return
	}
	n := len(intp.glyphs)
	if op.arg != "" {
		if n, err = strconv.Atoi(op.arg); err != nil || n < 0 {
			return fmt.Errorf("list: not a count: %s", op.arg), false
		}
		n = min(n, len(intp.glyphs))
	}
	printGlyphs(intp.glyphs[:n])
	if n < len(intp.glyphs) {
		pterm.Printf("... %d more\n", len(intp.glyphs)-n)
	}
	return nil, false
}

func sortOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkGlyphs(); err != nil {
		return err, false
	}
	glyphs.SortGlyphs(intp.glyphs)
	intp.sorted = true
	return nil, false
}

func glyphOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkGlyphs(); err != nil {
		return err, false
	}
	if op.arg == "" {
		return fmt.Errorf("usage: glyph:<name>"), false
	}
	for _, g := range intp.glyphs {
		if g.Name != op.arg {
			continue
		}
		if !g.Encoded() {
			pterm.Printf("%s is unencoded\n", g.Name)
			return nil, false
		}
		data := [][]string{{"Codepoint", "Name", "Category"}}
		for _, u := range g.Unicode {
			data = append(data, []string{u.Codepoint(), u.Name, u.Category})
		}
		pterm.Printf("Glyph %s:\n", g.Name)
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		return nil, false
	}
	return fmt.Errorf("no glyph named %q", op.arg), false
}

func codepointOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkGlyphs(); err != nil {
		return err, false
	}
	r, err := parseCodepointArg(op.arg)
	if err != nil {
		return err, false
	}
	var names []string
	for _, g := range intp.glyphs {
		for _, u := range g.Unicode {
			if u.Encoding == r {
				names = append(names, g.Name)
				break
			}
		}
	}
	switch len(names) {
	case 0:
		pterm.Printf("%s is not encoded\n", glyphs.FormatCodepoint(r))
	case 1:
		pterm.Printf("%s -> %s\n", glyphs.FormatCodepoint(r), names[0])
	default:
		pterm.Error.Printf("%s is encoded %d times: %s\n", glyphs.FormatCodepoint(r), len(names),
			strings.Join(names, ", "))
	}
	return nil, false
}

func parseCodepointArg(arg string) (rune, error) {
	hex := strings.TrimSpace(arg)
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	if hex == "" {
		return 0, fmt.Errorf("usage: cp:<hex>")
	}
	r, err := glyphs.ParseCodepoint(hex)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", arg, err)
	}
	return r, nil
}

func uniqueOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkGlyphs(); err != nil {
		return err, false
	}
	set := glyphs.UniqueCodepoints(intp.glyphs)
	data := [][]string{{"Codepoint", "Name", "Category"}}
	for _, u := range glyphs.SortedCodepoints(set) {
		data = append(data, []string{u.Codepoint(), u.Name, u.Category})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("%d distinct code points in %d glyphs\n", set.Len(), len(intp.glyphs))
	return nil, false
}

func dupsOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkGlyphs(); err != nil {
		return err, false
	}
	dups := glyphs.Duplicates(intp.glyphs)
	if len(dups) == 0 {
		pterm.Info.Println("No duplicate encodings")
		return nil, false
	}
	data := [][]string{{"Codepoint", "First glyph", "Dropped glyph"}}
	for _, d := range dups {
		data = append(data, []string{glyphs.FormatCodepoint(d.Encoding), d.FirstGlyph, d.Glyph})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func lintOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkGlyphs(); err != nil {
		return err, false
	}
	findings := unicheck.CheckGlyphs(intp.glyphs)
	if len(findings) == 0 {
		pterm.Info.Println("Names and categories match the UCD")
		return nil, false
	}
	data := [][]string{{"Glyph", "Codepoint", "Kind", "Found", "Expected"}}
	for _, f := range findings {
		data = append(data, []string{f.Glyph, glyphs.FormatCodepoint(f.Encoding), f.Kind.String(), f.Got, f.Want})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func printGlyphs(gg []glyphs.GlyphRef) {
	data := [][]string{{"Glyph", "Codepoints", "Categories"}}
	for _, g := range gg {
		cps := make([]string, len(g.Unicode))
		cats := make([]string, len(g.Unicode))
		for i, u := range g.Unicode {
			cps[i], cats[i] = u.Codepoint(), u.Category
		}
		data = append(data, []string{g.Name, strings.Join(cps, ","), strings.Join(cats, ",")})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
