package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is. The typed errors below carry the
// position detail and match these sentinels through their Is methods.
var (
	// ErrMalformedField indicates a fixed-column slot that does not match
	// any accepted numeric or text shape.
	ErrMalformedField = errors.New("malformed field")

	// ErrUnexpectedEOF indicates the stream ended with fewer lines left
	// than the record being read requires.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")

	// ErrMalformedRecord indicates a record whose fields violate a layout
	// invariant (negative counts, inconsistent breakpoint table).
	ErrMalformedRecord = errors.New("malformed record")
)

// MalformedFieldError reports a fixed-width slot whose content is not a
// valid integer or floating literal.
type MalformedFieldError struct {
	Line   int    // 1-based line number, 0 if unknown
	Column int    // 1-based starting column of the slot, 0 if unknown
	Slot   string // raw slot content
	Reason string
}

func (e *MalformedFieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, column %d: malformed field %q: %s", e.Line, e.Column, e.Slot, e.Reason)
	}
	return fmt.Sprintf("malformed field %q: %s", e.Slot, e.Reason)
}

// Is reports whether target is ErrMalformedField.
func (e *MalformedFieldError) Is(target error) bool {
	return target == ErrMalformedField
}

// at returns a copy of the error annotated with a position. The zero
// position of errors produced by ParseInt/ParseFloat is filled in by the
// Line and RecordReader layers, which know where the slot came from.
func (e *MalformedFieldError) at(line, column int) *MalformedFieldError {
	out := *e
	out.Line = line
	out.Column = column
	return &out
}

// UnexpectedEOFError reports a stream that ended mid-record.
type UnexpectedEOFError struct {
	Line int    // 1-based number of the last line successfully read
	Want string // the record shape being read, e.g. "TAB1 point line 3 of 4"
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of stream after line %d: want %s", e.Line, e.Want)
}

// Is reports whether target is ErrUnexpectedEOF.
func (e *UnexpectedEOFError) Is(target error) bool {
	return target == ErrUnexpectedEOF
}

// MalformedRecordError reports a record whose decoded fields are internally
// inconsistent.
type MalformedRecordError struct {
	Line   int // 1-based line number of the record's first line
	Record string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: malformed %s record: %s", e.Line, e.Record, e.Reason)
}

// Is reports whether target is ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
