package model

import "fmt"

// FileNumber identifies an ENDF file, the MF grouping of sections within a
// material. Values match the MF numbers on the tape.
type FileNumber int

const (
	MF1  FileNumber = iota + 1 // general information
	MF2                        // resonance parameters
	MF3                        // reaction cross sections
	MF4                        // angular distributions
	MF5                        // energy distributions
	MF6                        // energy-angle distributions
	MF7                        // thermal scattering law
	MF8                        // radioactive decay data
	MF9                        // radionuclide multiplicities
	MF10                       // radionuclide cross sections
)

func (n FileNumber) String() string {
	return fmt.Sprintf("MF%d", int(n))
}

// Description returns the conventional subject of the file, or "" for file
// numbers outside MF1 through MF10.
func (n FileNumber) Description() string {
	switch n {
	case MF1:
		return "General Information"
	case MF2:
		return "Resonance Parameters"
	case MF3:
		return "Reaction Cross Sections"
	case MF4:
		return "Angular Distributions"
	case MF5:
		return "Energy Distributions"
	case MF6:
		return "Energy-Angle Distributions"
	case MF7:
		return "Thermal Scattering Law"
	case MF8:
		return "Radioactive Decay Data"
	case MF9:
		return "Radionuclide Multiplicities"
	case MF10:
		return "Radionuclide Cross Sections"
	default:
		return ""
	}
}

// File groups the decoded sections sharing one file number.
type File struct {
	Number    FileNumber
	Reactions []*Reaction
}

// Reaction returns the section with the given MT, or nil.
func (f *File) Reaction(mt int) *Reaction {
	for _, r := range f.Reactions {
		if r.MT == mt {
			return r
		}
	}
	return nil
}

func (f *File) String() string {
	return fmt.Sprintf("<ENDF File %d>", int(f.Number))
}
