package model

import (
	"fmt"

	"github.com/hearic/pyne/names"
)

// Evaluation represents one complete material decoded from an ENDF tape.
type Evaluation struct {
	Material  int    // MAT number of the material
	TapeID    string // text of the tape identification line, when present
	Metadata  Metadata
	Directory Directory
	Files     []*File
}

// File returns the file with the given number, or nil if the evaluation does
// not carry it.
func (e *Evaluation) File(n FileNumber) *File {
	for _, f := range e.Files {
		if f.Number == n {
			return f
		}
	}
	return nil
}

// Reaction returns the first section with the given MT across all files, or
// nil.
func (e *Evaluation) Reaction(mt int) *Reaction {
	for _, f := range e.Files {
		if r := f.Reaction(mt); r != nil {
			return r
		}
	}
	return nil
}

// AddReaction appends r to the file numbered n, creating the file on first
// use. Files keep the order of first appearance.
func (e *Evaluation) AddReaction(n FileNumber, r *Reaction) {
	f := e.File(n)
	if f == nil {
		f = &File{Number: n}
		e.Files = append(e.Files, f)
	}
	f.Reactions = append(f.Reactions, r)
}

// Library returns the name of the issuing library, or "" when NLIB is not a
// known identifier.
func (e *Evaluation) Library() string {
	return names.Library(e.Metadata.NLIB)
}

func (e *Evaluation) String() string {
	lib := e.Library()
	if lib == "" {
		lib = "Undetermined"
	}
	return fmt.Sprintf("<%s Evaluation: %d>", lib, e.Metadata.ZA)
}
