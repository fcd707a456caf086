// Package model provides the in-memory representation of a decoded ENDF
// evaluation.
//
// This package defines the user-facing data structures produced by parsing.
// All decoding operations ultimately populate these types, making them the
// primary API for consuming evaluated nuclear data.
//
// # Document Structure
//
// The [Evaluation] type represents one material on a tape: the header
// [Metadata], the section [Directory], and the decoded [File] groups:
//
//	eval.Metadata.ZA          // 92235
//	eval.File(model.MF1)      // general-information file
//	eval.Reaction(452)        // total nubar section
//
// Each [File] groups the [Reaction] sections sharing a file number (MF), and
// each [Reaction] is one section (MT) with its decoded body.
//
// # Section Bodies
//
// Decoded section bodies implement the [Data] interface. The concrete types
// are:
//
//   - [Polynomial] - coefficients of an energy expansion
//   - [Tabulated] - a pointwise function of incident energy
//   - [DelayedGroups] - precursor decay constants with a nested nubar form
//
// Sections recorded with only their head fields (for example MT 458 and 460)
// carry a nil Data.
//
// # Directory
//
// The [Directory] is the material's own index: one [DirectoryEntry] per
// section giving its file number, section number, record count, and
// modification number, in tape order.
package model
