package core

import "fmt"

// Tail holds the identification columns every record carries: material
// number, file number, reaction type, and sequence number.
type Tail struct {
	MAT int
	MF  int
	MT  int
	NS  int
}

// TextRecord is a single line of free text: the first record on a tape
// (TPID) and the descriptive records of File 1.
type TextRecord struct {
	HL string // columns 1-66
	Tail
}

// ControlRecord is the general-purpose one-line record: two floating fields
// C1 and C2 followed by four integer fields L1, L2, N1, N2.
type ControlRecord struct {
	C1 float64
	C2 float64
	L1 int
	L2 int
	N1 int
	N2 int
	Tail
}

// HeadRecord is the first record of a section. It has the control record
// layout, with C1 and C2 always interpreted as the nuclide identifier ZA and
// the atomic weight ratio AWR.
type HeadRecord struct {
	ZA  int
	AWR float64
	L1  int
	L2  int
	N1  int
	N2  int
	Tail
}

// Control converts the head record to the equivalent control record view.
func (h HeadRecord) Control() ControlRecord {
	return ControlRecord{
		C1: float64(h.ZA), C2: h.AWR,
		L1: h.L1, L2: h.L2, N1: h.N1, N2: h.N2,
		Tail: h.Tail,
	}
}

// ListRecord is a control record followed by N1 floating values packed six
// per line.
type ListRecord struct {
	ControlRecord
	Values []float64
}

// NPL returns the declared number of list items.
func (r ListRecord) NPL() int { return r.N1 }

// Tab1Record is a one-dimensional tabulated function: a control record
// carrying the region count NR and point count NP, followed by NR
// (breakpoint, interpolation scheme) pairs and NP (x, y) pairs.
//
// The record does not evaluate the function; consumers interpolate using
// NBT and INT if they need values between tabulated points.
type Tab1Record struct {
	ControlRecord
	NBT []int     // region breakpoints, non-decreasing, NBT[NR-1] == NP
	INT []int     // interpolation scheme per region
	X   []float64 // abscissae
	Y   []float64 // ordinates
}

// NR returns the number of interpolation regions.
func (r Tab1Record) NR() int { return r.N1 }

// NP returns the number of tabulated points.
func (r Tab1Record) NP() int { return r.N2 }

// validate checks the breakpoint-table invariants of an assembled TAB1
// record. Zero regions and zero points are each legal on their own.
func (r Tab1Record) validate(line int) error {
	for i := 1; i < len(r.NBT); i++ {
		if r.NBT[i] < r.NBT[i-1] {
			return &MalformedRecordError{
				Line:   line,
				Record: "TAB1",
				Reason: fmt.Sprintf("breakpoints decrease at region %d: %d after %d", i+1, r.NBT[i], r.NBT[i-1]),
			}
		}
	}
	if len(r.NBT) > 0 && r.N2 > 0 && r.NBT[len(r.NBT)-1] != r.N2 {
		return &MalformedRecordError{
			Line:   line,
			Record: "TAB1",
			Reason: fmt.Sprintf("last breakpoint %d does not equal point count %d", r.NBT[len(r.NBT)-1], r.N2),
		}
	}
	return nil
}
