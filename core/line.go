package core

import (
	"errors"
	"strings"
)

// Column layout of an 80-column card image. The first 66 columns hold up to
// six 11-character fields; the remainder identify the section the card
// belongs to.
const (
	LineWidth = 80
	slotWidth = 11
	slotCount = 6
	textEnd   = 66 // columns 1-66: text or six numeric fields
	matStart  = 66 // columns 67-70: material number
	mfStart   = 70 // columns 71-72: file number
	mtStart   = 72 // columns 73-75: reaction type
	nsStart   = 75 // columns 76-80: sequence number
)

// Line is one 80-column card image of an ENDF tape. Shorter physical lines
// are blank-padded on construction so column addressing never goes out of
// range. Lines remember their 1-based position in the stream for
// diagnostics.
type Line struct {
	raw []byte
	num int
}

// NewLine builds a Line from one physical line of input, padding it to 80
// columns. num is the 1-based line number.
func NewLine(text []byte, num int) Line {
	raw := make([]byte, LineWidth)
	n := copy(raw, text)
	for i := n; i < LineWidth; i++ {
		raw[i] = ' '
	}
	return Line{raw: raw, num: num}
}

// Number returns the 1-based position of the line in its stream, or 0 for a
// zero Line.
func (l Line) Number() int { return l.num }

// Slot returns the raw content of field i (0 through 5), an 11-character
// column range.
func (l Line) Slot(i int) string {
	return string(l.raw[i*slotWidth : (i+1)*slotWidth])
}

// Text returns columns 1-66, the free-text region of a TEXT record.
func (l Line) Text() string { return string(l.raw[:textEnd]) }

// TextBytes returns the free-text region without copying through a string.
// Callers that decode legacy character sets work on these bytes.
func (l Line) TextBytes() []byte { return l.raw[:textEnd] }

// Int decodes field i as an integer.
func (l Line) Int(i int) (int, error) {
	n, err := ParseInt(l.Slot(i))
	if err != nil {
		return 0, l.position(err, i*slotWidth)
	}
	return n, nil
}

// Float decodes field i as a floating value.
func (l Line) Float(i int) (float64, error) {
	v, err := ParseFloat(l.Slot(i))
	if err != nil {
		return 0, l.position(err, i*slotWidth)
	}
	return v, nil
}

// MAT decodes the material number columns. Blank columns decode as 0.
func (l Line) MAT() (int, error) { return l.tailInt(matStart, mfStart) }

// MF decodes the file number columns.
func (l Line) MF() (int, error) { return l.tailInt(mfStart, mtStart) }

// MT decodes the reaction type columns.
func (l Line) MT() (int, error) { return l.tailInt(mtStart, nsStart) }

// NS decodes the sequence number columns.
func (l Line) NS() (int, error) { return l.tailInt(nsStart, LineWidth) }

// Tail decodes all four identification columns at once.
func (l Line) Tail() (Tail, error) {
	var t Tail
	var err error
	if t.MAT, err = l.MAT(); err != nil {
		return Tail{}, err
	}
	if t.MF, err = l.MF(); err != nil {
		return Tail{}, err
	}
	if t.MT, err = l.MT(); err != nil {
		return Tail{}, err
	}
	if t.NS, err = l.NS(); err != nil {
		return Tail{}, err
	}
	return t, nil
}

func (l Line) tailInt(start, end int) (int, error) {
	n, err := ParseInt(string(l.raw[start:end]))
	if err != nil {
		return 0, l.position(err, start)
	}
	return n, nil
}

// position stamps a field error with this line's number and the slot's
// starting column (1-based).
func (l Line) position(err error, col int) error {
	var fe *MalformedFieldError
	if errors.As(err, &fe) {
		return fe.at(l.num, col+1)
	}
	return err
}

// String returns the card image with trailing blanks trimmed.
func (l Line) String() string {
	return strings.TrimRight(string(l.raw), " ")
}
