// Package pyne decodes ENDF-6 format nuclear data tapes into typed Go
// structures.
//
// Basic usage:
//
//	ev, err := pyne.Open("n-092_U_235.endf").Evaluation()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(ev) // <ENDF/B Evaluation: 92235>
//
// With options:
//
//	evs, err := pyne.Open("tape.endf").
//	    Latin1().
//	    Evaluations()
//
// For record-level control, the lower-level reader package is also
// available.
package pyne

import (
	"github.com/hearic/pyne/reader"
)

// Open prepares an ENDF tape file for decoding and returns a Parser for
// fluent configuration. The file is opened lazily by the first terminal
// operation, which also closes it.
//
// Example:
//
//	ev, err := pyne.Open("tape.endf").Evaluation()
func Open(filename string) *Parser {
	return &Parser{filename: filename}
}

// FromReader creates a Parser over an already-opened tape reader. This is
// useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("tape.endf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	ev, err := pyne.FromReader(r).Evaluation()
func FromReader(r *reader.TapeReader) *Parser {
	return &Parser{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	ev := pyne.Must(pyne.Open("tape.endf").Evaluation())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
