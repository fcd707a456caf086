// Package names resolves the numeric identifiers that appear on ENDF tapes,
// library numbers (NLIB) and section numbers (MT), into human-readable
// names.
//
// The built-in tables cover the library identifiers defined by ENDF-102 and
// the sections this module decodes. [Load] reads a TOML file of overrides
// for deployments that want different wording or additional entries; a
// [Table] consults its overrides first and falls back to the defaults.
package names

// Library returns the name of the issuing library identified by NLIB, or ""
// when the identifier is not a known one.
func Library(nlib int) string { return libraries[nlib] }

// MT returns the conventional name of a section number, or "" when the
// section has no well-known name.
func MT(mt int) string { return sections[mt] }

var libraries = map[int]string{
	0:  "ENDF/B",
	1:  "ENDF/A",
	2:  "JEFF",
	3:  "EFF",
	4:  "ENDF/B High Energy",
	5:  "CENDL",
	6:  "JENDL",
	31: "INDL/V",
	32: "INDL/A",
	33: "FENDL",
	34: "IRDF",
	35: "BROND",
	36: "INGDB-90",
	37: "FENDL/A",
	41: "BROND",
}

var sections = map[int]string{
	1:   "Total Cross Section",
	2:   "Elastic Scattering",
	18:  "Fission",
	102: "Radiative Capture",
	151: "Resonance Parameters",
	451: "Descriptive Data",
	452: "Total Neutrons per Fission",
	455: "Delayed Neutron Data",
	456: "Prompt Neutrons per Fission",
	458: "Energy Release Due to Fission",
	460: "Delayed Photon Data",
}
