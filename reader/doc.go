// Package reader provides high-level access to ENDF tape files.
//
// This package orchestrates the lower-level core and section packages to
// provide a convenient API for reading tapes and decoding the materials
// they carry.
//
// # Opening Tapes
//
// Use [Open] to open a tape file for reading:
//
//	tape, err := reader.Open("n-092_U_235.endf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tape.Close()
//
// Or use [NewTapeReader] with any io.Reader.
//
// # Decoding Materials
//
// A tape holds one or more materials. Decode them in file order:
//
//   - Evaluation(ctx) - decode the next material
//   - ReadAll(ctx) - decode every material through the TEND record
//
// Evaluation returns io.EOF once the tape is exhausted.
//
// # Surveying
//
// [TapeReader.Scan] makes a light pass over the record tails without
// decoding any section bodies, reporting which materials the tape carries
// and which sections each one holds.
//
// # Character Sets
//
// Tapes are column-addressed byte streams. Evaluations predating the
// format's ASCII restriction carry Latin-1 text in their author and
// reference fields; SetLatin1 re-decodes text columns accordingly.
package reader
