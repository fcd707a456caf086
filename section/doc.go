// Package section decodes the sections of an ENDF material: the header and
// directory of the descriptive-data section, and the File 1 fission
// multiplicity sections.
//
// # Decoding
//
// [ParseEvaluation] drives a single forward pass over the stream:
//
//  1. the tape identification line, when the stream starts with one
//  2. the header of section (MF=1, MT=451): head record, three control
//     records, and the text block
//  3. the directory: one control record per section, up to the SEND record
//     that closes the header section
//  4. one dispatch per remaining directory entry, in tape order
//
// Dispatch looks each entry up in a table keyed by [Key]. Known sections are
// decoded by their handler; unknown ones are skipped using the record count
// the directory itself declares, and are simply absent from the document.
// In both cases the dispatcher consumes the section's SEND record, and the
// FEND record at every file boundary, so one section can never
// desynchronize the next.
//
// # Failure
//
// Any malformed field, violated record invariant, or truncation aborts the
// whole parse; no partially decoded evaluation is returned. A directory
// that never reaches its SEND record fails with
// [UnterminatedDirectoryError].
package section
