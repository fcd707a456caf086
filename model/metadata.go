package model

// Metadata holds the header of the descriptive-data section (MF=1, MT=451):
// the head record, three control records, and the structured text block that
// open every evaluation.
type Metadata struct {
	// Head record
	ZA   int     // 1000*Z + A of the target nuclide
	AWR  float64 // target mass in neutron-mass units
	LRP  int     // resonance parameters given in File 2 when positive
	LFI  int     // 1 when the target undergoes fission
	NLIB int     // library identifier
	NMOD int     // modification number of the evaluation

	// First control record
	ELIS float64 // excitation energy of the target state in eV
	STA  int     // 1 when the target is unstable
	LIS  int     // state number of the target
	LISO int     // isomeric state number
	NFOR int     // format version

	// Second control record
	AWI  float64 // projectile mass in neutron-mass units
	EMAX float64 // upper energy limit of the evaluation in eV
	LREL int     // release number
	NSUB int     // sub-library number
	NVER int     // version number of the evaluation

	// Third control record
	TEMP float64 // temperature the data was Doppler broadened to, in kelvin
	LDRV int     // nonzero for derived evaluations
	NWD  int     // number of text lines in the header
	NXC  int     // number of directory entries

	// Structured text lines
	ZSYMAM string // nuclide symbol in Z-cc-AM form
	ALAB   string // originating laboratory
	EDATE  string // evaluation date
	AUTH   string // authors
	REF    string // primary reference
	DDATE  string // distribution date
	RDATE  string // revision date
	ENDATE string // master-file entry date
	HSUB   string // sub-library heading

	// Description holds the free-text lines that follow the structured
	// block, one 66-column card of text per entry.
	Description []string
}
