// Package core provides low-level ENDF-6 record parsing primitives.
//
// This package implements the fundamental building blocks for reading ENDF-6
// tapes: the 80-column card image, fixed-width field decoding (including the
// Fortran exponent-suffix notation used throughout the format), and the five
// record shapes defined by ENDF-102.
//
// # Card Images
//
// Every physical line of a tape is a [Line]: 80 columns, of which the first
// 66 hold up to six 11-character fields and the remainder hold the MAT/MF/MT
// identification columns and a sequence number. Lines shorter than 80
// columns are blank-padded, matching the common practice of tape editors
// that strip trailing spaces.
//
// # Field Decoding
//
// Numeric fields are decoded by [ParseInt] and [ParseFloat]. ParseFloat
// accepts ordinary floating literals as well as the ENDF convention that
// omits the exponent marker, so the slot "1.23456+5" decodes to 1.23456e5.
// Only those two literal shapes are accepted; anything else fails with
// [MalformedFieldError]. Blank fields decode as zero.
//
// # Record Shapes
//
// The five record shapes are [TextRecord], [ControlRecord], [HeadRecord],
// [ListRecord], and [Tab1Record]. A ListRecord packs N1 floating values six
// per line; a Tab1Record packs NR interpolation-region pairs and NP
// tabulated points three per line. Multi-line records always round the last
// line up, reading min(k, remaining) items from it.
//
// # Reading
//
// The [RecordReader] type owns the stream cursor. Each Read method consumes
// exactly the number of physical lines its record shape requires and nothing
// more; sequencing is therefore visible in the call order rather than hidden
// in shared file-position state. Truncated input fails with
// [UnexpectedEOFError] naming the shape that was being read.
//
// This package knows the column layout of the format and nothing else;
// section semantics (headers, directories, dispatch) live in package
// section.
package core
