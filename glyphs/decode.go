package glyphs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Column names of the glyph metadata report.
const (
	ColGlyphName  = "glifname"
	ColUniName    = "uniname"
	ColCodepoints = "codepoints"
	ColUniCat     = "unicat"
)

// RequiredColumns lists the header columns [Decode] insists on.
var RequiredColumns = []string{ColGlyphName, ColUniName, ColCodepoints, ColUniCat}

// header is the column lookup of a report, built once from the header row.
type header struct {
	glifname   int
	uniname    int
	codepoints int
	unicat     int
}

func resolveHeader(names []string) (header, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[name] = i
	}
	var missing []string
	lookup := func(col string) int {
		i, ok := index[col]
		if !ok {
			missing = append(missing, col)
		}
		return i
	}
	h := header{
		glifname:   lookup(ColGlyphName),
		uniname:    lookup(ColUniName),
		codepoints: lookup(ColCodepoints),
		unicat:     lookup(ColUniCat),
	}
	if len(missing) > 0 {
		return header{}, &SchemaError{Missing: missing}
	}
	return h, nil
}

// --- Options ---------------------------------------------------------------

// DecodeOption configures [Decode].
type DecodeOption func(*decoder)

// StrictAlignment makes [Decode] reject rows where the comma-separated lists
// of names, code points and categories differ in length. By default, such
// lists are silently truncated to the shortest one.
//
// Rows without any code point are accepted in strict mode, whatever their
// name and category placeholders are.
func StrictAlignment() DecodeOption {
	return func(d *decoder) {
		d.strict = true
	}
}

type decoder struct {
	strict bool
}

// --- Decoding --------------------------------------------------------------

// Decode parses a tab-separated glyph metadata report and returns one glyph
// reference per data row, in input order.
//
// The first row must name the columns. Decode fails with a [*SchemaError]
// if any of the [RequiredColumns] is absent, and with a [*RecordError] for
// the first row which cannot be decoded. In both cases no glyphs are
// returned.
func Decode(text string, opts ...DecodeOption) ([]GlyphRef, error) {
	return DecodeReader(strings.NewReader(text), opts...)
}

// DecodeReader is like [Decode], but reads the report from r.
func DecodeReader(r io.Reader, opts ...DecodeOption) ([]GlyphRef, error) {
	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}
	rd := csv.NewReader(r)
	rd.Comma = '\t'
	rd.LazyQuotes = true
	names, err := rd.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: append([]string(nil), RequiredColumns...)}
	} else if err != nil {
		return nil, &SchemaError{Err: err}
	}
	h, err := resolveHeader(names)
	if err != nil {
		return nil, err
	}
	var glyphs []GlyphRef
	for row := 1; ; row++ {
		record, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(row, len(names), record, h, err)
		}
		line, _ := rd.FieldPos(0)
		g, rerr := d.glyph(h, record)
		if rerr != nil {
			rerr.Row, rerr.Line = row, line
			return nil, rerr
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}

func readError(row, width int, record []string, h header, err error) *RecordError {
	rerr := &RecordError{Row: row, Err: err}
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		rerr.Line = perr.StartLine
		if errors.Is(perr.Err, csv.ErrFieldCount) {
			rerr.Err = fmt.Errorf("%w: has %d, header has %d", errFieldCount, len(record), width)
		}
	}
	if h.glifname < len(record) {
		rerr.Glyph = record[h.glifname]
	}
	return rerr
}

// glyph converts a single record. Row and line of a returned error are
// left to the caller.
func (d *decoder) glyph(h header, record []string) (GlyphRef, *RecordError) {
	g := GlyphRef{Name: record[h.glifname]}
	uninames := strings.Split(record[h.uniname], ",")
	unicats := strings.Split(record[h.unicat], ",")
	codepoints, err := parseCodepoints(record[h.codepoints])
	if err != nil {
		err.Glyph = g.Name
		return GlyphRef{}, err
	}
	if d.strict && len(codepoints) > 0 &&
		(len(uninames) != len(codepoints) || len(unicats) != len(codepoints)) {
		cause := fmt.Errorf("%w: %d names, %d code points, %d categories", errMisaligned,
			len(uninames), len(codepoints), len(unicats))
		return GlyphRef{}, &RecordError{Glyph: g.Name, Err: cause}
	}
	n := min(len(uninames), len(codepoints), len(unicats))
	if n > 0 {
		g.Unicode = make([]UnicodeData, n)
		for i := range n {
			g.Unicode[i] = UnicodeData{
				Name:     uninames[i],
				Category: unicats[i],
				Encoding: codepoints[i],
			}
		}
	}
	return g, nil
}

// parseCodepoints splits a comma-separated list of hexadecimal code points.
// Empty entries are dropped.
func parseCodepoints(field string) ([]rune, *RecordError) {
	var cps []rune
	for _, token := range strings.Split(field, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		r, err := ParseCodepoint(token)
		if err != nil {
			return nil, &RecordError{Field: ColCodepoints, Value: token, Err: err}
		}
		cps = append(cps, r)
	}
	return cps, nil
}

// ParseCodepoint parses a hexadecimal code point without prefix, e.g. "0041",
// and checks that it is a Unicode scalar value.
func ParseCodepoint(token string) (rune, error) {
	u, err := strconv.ParseUint(token, 16, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errNotScalar
		}
		return 0, errNotHex
	}
	r := rune(u)
	if !utf8.ValidRune(r) {
		return 0, errNotScalar
	}
	return r, nil
}
