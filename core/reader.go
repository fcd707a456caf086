package core

import (
	"bufio"
	"fmt"
	"io"
)

// pairsPerLine is the packing density of TAB1 interpolation-region and
// point lines: three 22-column pairs per card.
const pairsPerLine = 3

// RecordReader decodes an ENDF-6 line stream into records. It owns the
// stream cursor: every Read method advances by exactly the number of
// physical lines its record shape requires, so the order of calls is the
// order of the tape. One line of pushback is available for callers that
// need to look at a line before deciding what it starts.
//
// A RecordReader is not safe for concurrent use; parse independent streams
// with independent readers.
type RecordReader struct {
	scanner *bufio.Scanner
	decode  TextDecoder
	count   int  // lines fetched from the underlying stream
	last    int  // number of the last line handed to the caller
	pending Line // one-line pushback
	havePnd bool
}

// TextDecoder converts the 66 text columns of a card into a string. The
// default treats them as ASCII; readers of tapes written in legacy character
// sets install a converting decoder.
type TextDecoder func([]byte) (string, error)

// NewRecordReader returns a RecordReader consuming lines from r.
func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{scanner: bufio.NewScanner(r)}
}

// SetTextDecoder installs d for all subsequent TEXT record reads.
func (r *RecordReader) SetTextDecoder(d TextDecoder) { r.decode = d }

// DecodeText renders text-column bytes through the installed decoder, or as
// raw bytes when none is set. Callers that slice fixed subfields out of a
// card decode each slice separately, so a multi-byte character in one field
// cannot shift the column boundaries of the fields after it.
func (r *RecordReader) DecodeText(b []byte) (string, error) {
	if r.decode == nil {
		return string(b), nil
	}
	return r.decode(b)
}

// LineNumber returns the 1-based number of the last line read, 0 before the
// first read.
func (r *RecordReader) LineNumber() int { return r.last }

// ReadLine returns the next card image. At end of stream it returns io.EOF;
// record-level methods translate that into UnexpectedEOFError, while
// callers walking section boundaries treat it as a legitimate stop.
func (r *RecordReader) ReadLine() (Line, error) {
	if r.havePnd {
		r.havePnd = false
		r.last = r.pending.Number()
		return r.pending, nil
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Line{}, fmt.Errorf("reading line %d: %w", r.count+1, err)
		}
		return Line{}, io.EOF
	}
	r.count++
	r.last = r.count
	return NewLine(r.scanner.Bytes(), r.count), nil
}

// UnreadLine pushes l back so the next ReadLine returns it again. Only one
// line of pushback is held; unreading twice without an intervening read
// panics, as that is always a sequencing bug in the caller.
func (r *RecordReader) UnreadLine(l Line) {
	if r.havePnd {
		panic("core: UnreadLine called twice without ReadLine")
	}
	r.pending = l
	r.havePnd = true
	r.last = l.Number() - 1
}

// SkipLines discards n lines. want names the record shape being skipped for
// the error when the stream runs out first.
func (r *RecordReader) SkipLines(n int, want string) error {
	for i := 0; i < n; i++ {
		if _, err := r.expectLine(want); err != nil {
			return err
		}
	}
	return nil
}

// expectLine reads one line, converting end-of-stream into the hard
// truncation error.
func (r *RecordReader) expectLine(want string) (Line, error) {
	l, err := r.ReadLine()
	if err == io.EOF {
		return Line{}, &UnexpectedEOFError{Line: r.last, Want: want}
	}
	if err != nil {
		return Line{}, err
	}
	return l, nil
}

// ReadText reads one TEXT record.
func (r *RecordReader) ReadText() (TextRecord, error) {
	l, err := r.expectLine("TEXT record")
	if err != nil {
		return TextRecord{}, err
	}
	tail, err := l.Tail()
	if err != nil {
		return TextRecord{}, err
	}
	hl := l.Text()
	if r.decode != nil {
		if hl, err = r.decode(l.TextBytes()); err != nil {
			return TextRecord{}, fmt.Errorf("decoding text at line %d: %w", l.Number(), err)
		}
	}
	return TextRecord{HL: hl, Tail: tail}, nil
}

// ReadControl reads one CONT record. With skipC1C2 set the two floating
// fields are left zero without being decoded; directory records keep those
// columns blank and must not be interpreted as numbers.
func (r *RecordReader) ReadControl(skipC1C2 bool) (ControlRecord, error) {
	l, err := r.expectLine("CONT record")
	if err != nil {
		return ControlRecord{}, err
	}
	return decodeControl(l, skipC1C2)
}

func decodeControl(l Line, skipC1C2 bool) (ControlRecord, error) {
	var rec ControlRecord
	var err error
	if !skipC1C2 {
		if rec.C1, err = l.Float(0); err != nil {
			return ControlRecord{}, err
		}
		if rec.C2, err = l.Float(1); err != nil {
			return ControlRecord{}, err
		}
	}
	if rec.L1, err = l.Int(2); err != nil {
		return ControlRecord{}, err
	}
	if rec.L2, err = l.Int(3); err != nil {
		return ControlRecord{}, err
	}
	if rec.N1, err = l.Int(4); err != nil {
		return ControlRecord{}, err
	}
	if rec.N2, err = l.Int(5); err != nil {
		return ControlRecord{}, err
	}
	if rec.Tail, err = l.Tail(); err != nil {
		return ControlRecord{}, err
	}
	return rec, nil
}

// ReadHead reads one HEAD record: control layout with C1 and C2 carrying
// the nuclide identifier and atomic weight ratio. ZA arrives as a floating
// field ("9.223500+4") and is truncated to its integer value.
func (r *RecordReader) ReadHead() (HeadRecord, error) {
	l, err := r.expectLine("HEAD record")
	if err != nil {
		return HeadRecord{}, err
	}
	ctl, err := decodeControl(l, false)
	if err != nil {
		return HeadRecord{}, err
	}
	return HeadRecord{
		ZA: int(ctl.C1), AWR: ctl.C2,
		L1: ctl.L1, L2: ctl.L2, N1: ctl.N1, N2: ctl.N2,
		Tail: ctl.Tail,
	}, nil
}

// ReadList reads one LIST record: a control record announcing N1 items,
// then the items packed six per line. The final line holds the leftover
// N1 mod 6 items when the count does not divide evenly.
func (r *RecordReader) ReadList() (ListRecord, error) {
	ctl, err := r.ReadControl(false)
	if err != nil {
		return ListRecord{}, err
	}
	npl := ctl.N1
	if npl < 0 {
		return ListRecord{}, &MalformedRecordError{
			Line:   r.last,
			Record: "LIST",
			Reason: fmt.Sprintf("negative item count %d", npl),
		}
	}
	totalLines := (npl + slotCount - 1) / slotCount
	values := make([]float64, 0, min(npl, 4096))
	for remaining, n := npl, 1; remaining > 0; n++ {
		l, err := r.expectLine(fmt.Sprintf("LIST value line %d of %d", n, totalLines))
		if err != nil {
			return ListRecord{}, err
		}
		toRead := min(slotCount, remaining)
		for j := 0; j < toRead; j++ {
			v, err := l.Float(j)
			if err != nil {
				return ListRecord{}, err
			}
			values = append(values, v)
		}
		remaining -= toRead
	}
	return ListRecord{ControlRecord: ctl, Values: values}, nil
}

// ReadTab1 reads one TAB1 record: a control record announcing NR
// interpolation regions and NP points, then the (NBT, INT) pairs and the
// (x, y) pairs, each packed three per line with the last line rounded up.
// The assembled record is checked against the TAB1 invariants before being
// returned.
func (r *RecordReader) ReadTab1() (Tab1Record, error) {
	ctl, err := r.ReadControl(false)
	if err != nil {
		return Tab1Record{}, err
	}
	ctlLine := r.last
	nr, np := ctl.N1, ctl.N2
	if nr < 0 || np < 0 {
		return Tab1Record{}, &MalformedRecordError{
			Line:   ctlLine,
			Record: "TAB1",
			Reason: fmt.Sprintf("negative counts NR=%d NP=%d", nr, np),
		}
	}
	rec := Tab1Record{
		ControlRecord: ctl,
		NBT:           make([]int, 0, min(nr, 512)),
		INT:           make([]int, 0, min(nr, 512)),
		X:             make([]float64, 0, min(np, 4096)),
		Y:             make([]float64, 0, min(np, 4096)),
	}

	regionLines := (nr + pairsPerLine - 1) / pairsPerLine
	for remaining, n := nr, 1; remaining > 0; n++ {
		l, err := r.expectLine(fmt.Sprintf("TAB1 interpolation line %d of %d", n, regionLines))
		if err != nil {
			return Tab1Record{}, err
		}
		toRead := min(pairsPerLine, remaining)
		for j := 0; j < toRead; j++ {
			nbt, err := l.Int(2 * j)
			if err != nil {
				return Tab1Record{}, err
			}
			scheme, err := l.Int(2*j + 1)
			if err != nil {
				return Tab1Record{}, err
			}
			rec.NBT = append(rec.NBT, nbt)
			rec.INT = append(rec.INT, scheme)
		}
		remaining -= toRead
	}

	pointLines := (np + pairsPerLine - 1) / pairsPerLine
	for remaining, n := np, 1; remaining > 0; n++ {
		l, err := r.expectLine(fmt.Sprintf("TAB1 point line %d of %d", n, pointLines))
		if err != nil {
			return Tab1Record{}, err
		}
		toRead := min(pairsPerLine, remaining)
		for j := 0; j < toRead; j++ {
			x, err := l.Float(2 * j)
			if err != nil {
				return Tab1Record{}, err
			}
			y, err := l.Float(2*j + 1)
			if err != nil {
				return Tab1Record{}, err
			}
			rec.X = append(rec.X, x)
			rec.Y = append(rec.Y, y)
		}
		remaining -= toRead
	}

	if err := rec.validate(ctlLine); err != nil {
		return Tab1Record{}, err
	}
	return rec, nil
}
