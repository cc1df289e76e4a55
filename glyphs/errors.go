package glyphs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is.
var (
	ErrSchema          = errors.New("glyph metadata schema error")
	ErrMalformedRecord = errors.New("malformed glyph metadata record")
)

// SchemaError is returned by [Decode] if the header row lacks required
// columns. No row has been looked at when a SchemaError is returned.
type SchemaError struct {
	Missing []string // names of required columns not present in the header
	Err     error    // set if the header row could not be read at all
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("glyph metadata: cannot read header row: %v", e.Err)
	}
	return fmt.Sprintf("glyph metadata: header lacks required column(s) %s",
		strings.Join(e.Missing, ", "))
}

// Unwrap returns the error which prevented reading the header, if any.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Is makes SchemaError match ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// RecordError is returned by [Decode] for a data row which cannot be
// converted into a glyph reference.
type RecordError struct {
	Row   int    // 1-based index of the data row (the header row does not count)
	Line  int    // 1-based line number in the input, 0 if unknown
	Glyph string // glyph name of the row, if it could be determined
	Field string // column name, if the error is confined to one column
	Value string // offending value, if any
	Err   error  // underlying cause
}

func (e *RecordError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "glyph metadata: row %d", e.Row)
	if e.Line > 0 {
		fmt.Fprintf(&sb, " (line %d)", e.Line)
	}
	if e.Glyph != "" {
		fmt.Fprintf(&sb, " glyph %q", e.Glyph)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, ", column %s", e.Field)
	}
	if e.Value != "" {
		fmt.Fprintf(&sb, ", value %q", e.Value)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// Is makes RecordError match ErrMalformedRecord.
func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

var (
	errFieldCount = errors.New("field count does not match header")
	errNotHex     = errors.New("not a base-16 integer")
	errNotScalar  = errors.New("not a Unicode scalar value")
	errMisaligned = errors.New("comma-separated sub-lists differ in length")
)
