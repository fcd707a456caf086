package reader

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/hearic/pyne/core"
	"github.com/hearic/pyne/model"
	"github.com/hearic/pyne/section"
)

// TapeReader reads the materials of one ENDF tape in file order.
type TapeReader struct {
	file    *os.File // non-nil when the reader owns the handle
	records *core.RecordReader
	opts    section.Options
	decode  core.TextDecoder
	tapeID  string // identification line text, pending until the first material
	done    bool
}

// NewTapeReader creates a tape reader over rd.
func NewTapeReader(rd io.Reader) *TapeReader {
	return &TapeReader{records: core.NewRecordReader(rd)}
}

// Open opens an ENDF tape file and returns a TapeReader that owns the file
// handle.
func Open(filename string) (*TapeReader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := NewTapeReader(file)
	r.file = file
	return r, nil
}

// Close closes the tape file. It is a no-op for readers built over a plain
// io.Reader.
func (r *TapeReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// SetLatin1 decodes text columns as ISO 8859-1 instead of raw bytes.
// Evaluations predating the format's ASCII restriction carry accented
// characters in author and reference fields.
func (r *TapeReader) SetLatin1() {
	r.decode = func(b []byte) (string, error) {
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	r.records.SetTextDecoder(r.decode)
}

// SetProgress registers a callback invoked after each directory entry is
// decoded or skipped.
func (r *TapeReader) SetProgress(fn func(section.Progress)) {
	r.opts.Progress = fn
}

// Evaluation decodes the next material on the tape. io.EOF reports a clean
// end of tape, at the TEND record or at end of input.
func (r *TapeReader) Evaluation(ctx context.Context) (*model.Evaluation, error) {
	if r.done {
		return nil, io.EOF
	}

	l, err := r.records.ReadLine()
	if err == io.EOF {
		r.done = true
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	mat, err := l.MAT()
	if err != nil {
		return nil, err
	}
	if l.Number() == 1 && mat != -1 {
		mf, err := l.MF()
		if err != nil {
			return nil, err
		}
		if mf == 0 {
			// Tape identification line. Consuming it here means the
			// TEND check below sees the first material, not the
			// label, so a labeled but empty tape still ends cleanly.
			if r.tapeID, err = r.text(l); err != nil {
				return nil, err
			}
			if l, err = r.records.ReadLine(); err == io.EOF {
				r.done = true
				return nil, io.EOF
			} else if err != nil {
				return nil, err
			}
			if mat, err = l.MAT(); err != nil {
				return nil, err
			}
		}
	}
	if mat == -1 { // TEND
		r.done = true
		return nil, io.EOF
	}
	r.records.UnreadLine(l)

	ev, err := section.ParseEvaluation(ctx, r.records, r.opts)
	if err != nil {
		return nil, err
	}
	if r.tapeID != "" {
		ev.TapeID = r.tapeID
		r.tapeID = ""
	}
	return ev, nil
}

// text renders the free-text columns of l through the installed decoder,
// with trailing blanks trimmed.
func (r *TapeReader) text(l core.Line) (string, error) {
	if r.decode == nil {
		return strings.TrimRight(l.Text(), " "), nil
	}
	s, err := r.decode(l.TextBytes())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, " "), nil
}

// ReadAll decodes every material on the tape.
func (r *TapeReader) ReadAll(ctx context.Context) ([]*model.Evaluation, error) {
	var evs []*model.Evaluation
	for {
		ev, err := r.Evaluation(ctx)
		if err == io.EOF {
			return evs, nil
		}
		if err != nil {
			return nil, err
		}
		evs = append(evs, ev)
	}
}
