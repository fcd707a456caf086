package model

import (
	"fmt"

	"github.com/hearic/pyne/core"
	"github.com/hearic/pyne/names"
)

// DataKind discriminates the concrete types behind [Data].
type DataKind int

const (
	DataKindNone DataKind = iota
	DataKindPolynomial
	DataKindTabulated
	DataKindDelayedGroups
)

func (k DataKind) String() string {
	switch k {
	case DataKindPolynomial:
		return "Polynomial"
	case DataKindTabulated:
		return "Tabulated"
	case DataKindDelayedGroups:
		return "Delayed Groups"
	default:
		return "None"
	}
}

// Data is the decoded body of a section. The concrete type depends on the
// representation flags in the section head.
type Data interface {
	Kind() DataKind
}

// Polynomial holds a quantity given as an expansion in incident energy.
type Polynomial struct {
	Coefficients []float64
}

func (p *Polynomial) Kind() DataKind { return DataKindPolynomial }

// Tabulated holds a quantity given as a pointwise function of incident
// energy.
type Tabulated struct {
	Table core.Tab1Record
}

func (t *Tabulated) Kind() DataKind { return DataKindTabulated }

// DelayedGroups holds delayed-neutron precursor data: one decay constant per
// group, and the delayed nubar in its own representation.
type DelayedGroups struct {
	DecayConstants []float64
	Nu             Data // Polynomial or Tabulated
}

func (d *DelayedGroups) Kind() DataKind { return DataKindDelayedGroups }

// Reaction is one decoded section, a single MT within a file.
type Reaction struct {
	MT  int
	ZA  int     // 1000*Z + A from the section head
	AWR float64 // target mass in neutron-mass units

	// Representation flags from the section head. Which of them carry
	// meaning depends on the MT.
	LNU int // nubar form: 1 polynomial, 2 tabulated
	LDG int // delayed-group constants: 0 energy-independent, 1 energy-dependent
	LO  int // delayed-photon form: 1 discrete, 2 continuous
	NG  int // number of discrete delayed photons

	// Data is the decoded section body. It is nil for sections recorded
	// with only their head fields.
	Data Data
}

func (r *Reaction) String() string {
	if name := names.MT(r.MT); name != "" {
		return fmt.Sprintf("<ENDF Reaction: MT=%d, %s>", r.MT, name)
	}
	return fmt.Sprintf("<ENDF Reaction: MT=%d>", r.MT)
}
