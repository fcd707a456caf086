package section

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hearic/pyne/core"
	"github.com/hearic/pyne/model"
)

// Key identifies a section parser by file number and reaction type.
type Key struct {
	MF model.FileNumber
	MT int
}

// Progress reports one directory entry as the decoder passes it.
type Progress struct {
	Entry model.DirectoryEntry

	// Skipped is true when no parser is registered for the entry and its
	// records were passed over unread.
	Skipped bool
}

// Options adjust evaluation decoding.
type Options struct {
	// Progress, when non-nil, is called after each dispatched directory
	// entry, on the goroutine running the parse.
	Progress func(Progress)
}

// handlerFunc decodes one section starting at its head record. A handler
// reads only the records it interprets; the dispatcher skips whatever it
// leaves undecoded and consumes the SEND record.
type handlerFunc func(r *core.RecordReader) (*model.Reaction, error)

// handlers is the supported-section set. Everything not listed here is
// skipped by record count.
var handlers = map[Key]handlerFunc{
	{model.MF1, 452}: readTotalNu,
	{model.MF1, 455}: readDelayedNu,
	{model.MF1, 456}: readPromptNu,
	{model.MF1, 458}: readFissionEnergy,
	{model.MF1, 460}: readDelayedPhoton,
}

// ParseEvaluation decodes one material from r: tape label, header,
// directory, and every directory entry in tape order, through the
// material's MEND record when present. Any hard error aborts the parse; no
// partially decoded evaluation is returned.
//
// ctx is consulted between directory entries only. A record is a few-line
// atomic unit, so cancellation never interrupts one.
func ParseEvaluation(ctx context.Context, r *core.RecordReader, opts Options) (*model.Evaluation, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ev := &model.Evaluation{}

	if err := readTapeID(r, ev); err != nil {
		return nil, err
	}
	if err := readHeader(r, ev); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	dir, err := readDirectory(r)
	if err != nil {
		return nil, err
	}
	ev.Directory = dir

	if len(dir) == 0 || dir[0].MT != 451 {
		return nil, fmt.Errorf("line %d: directory does not begin with the descriptive-data section", r.LineNumber())
	}

	// The header section was consumed above, so dispatch starts at the
	// second entry. Entries are grouped by file; a FEND record sits
	// between groups.
	file := dir[0].MF
	for _, e := range dir[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.MF != file {
			if err := consumeFileEnd(r); err != nil {
				return nil, err
			}
			file = e.MF
		}
		if err := dispatch(r, ev, e, opts); err != nil {
			return nil, err
		}
	}
	if err := consumeFileEnd(r); err != nil {
		return nil, err
	}
	if err := consumeMaterialEnd(r); err != nil {
		return nil, err
	}
	return ev, nil
}

// dispatch decodes or skips the section a directory entry announces, then
// consumes its SEND record. The record count the directory declares is what
// keeps the cursor synchronized: whatever the handler leaves unread is
// skipped before the SEND is expected.
func dispatch(r *core.RecordReader, ev *model.Evaluation, e model.DirectoryEntry, opts Options) error {
	start := r.LineNumber()

	var rx *model.Reaction
	h, known := handlers[Key{MF: e.MF, MT: e.MT}]
	if known {
		var err error
		if rx, err = h(r); err != nil {
			return fmt.Errorf("section (%v, MT=%d): %w", e.MF, e.MT, err)
		}
	}

	read := r.LineNumber() - start
	if read > e.NC {
		return fmt.Errorf("section (%v, MT=%d): decoded %d records but the directory lists %d",
			e.MF, e.MT, read, e.NC)
	}
	if err := r.SkipLines(e.NC-read, fmt.Sprintf("section (%v, MT=%d) body", e.MF, e.MT)); err != nil {
		return err
	}
	if err := consumeSectionEnd(r, e); err != nil {
		return err
	}

	if rx != nil {
		ev.AddReaction(e.MF, rx)
	}
	if opts.Progress != nil {
		opts.Progress(Progress{Entry: e, Skipped: !known})
	}
	return nil
}

// readTapeID captures the tape identification line when the stream starts
// with one. Only the first physical line of a tape can be a TPID; materials
// after the first start directly at their head record.
func readTapeID(r *core.RecordReader, ev *model.Evaluation) error {
	l, err := r.ReadLine()
	if err == io.EOF {
		return &core.UnexpectedEOFError{Line: r.LineNumber(), Want: "tape identification or HEAD record"}
	}
	if err != nil {
		return err
	}
	mf, err := l.MF()
	if err != nil {
		return err
	}
	r.UnreadLine(l)
	if l.Number() != 1 || mf != 0 {
		return nil
	}
	txt, err := r.ReadText()
	if err != nil {
		return err
	}
	ev.TapeID = strings.TrimRight(txt.HL, " ")
	return nil
}

// consumeSectionEnd reads the SEND record that closes a section. Anything
// else at that position means the cursor lost the record layout, which
// would poison every later section, so a mismatch is a hard error.
func consumeSectionEnd(r *core.RecordReader, e model.DirectoryEntry) error {
	l, err := r.ReadLine()
	if err == io.EOF {
		return &core.UnexpectedEOFError{Line: r.LineNumber(), Want: "SEND record"}
	}
	if err != nil {
		return err
	}
	mf, err := l.MF()
	if err != nil {
		return err
	}
	mt, err := l.MT()
	if err != nil {
		return err
	}
	if mt != 0 || mf != int(e.MF) {
		return fmt.Errorf("line %d: expected SEND after section (%v, MT=%d), got MF=%d MT=%d",
			l.Number(), e.MF, e.MT, mf, mt)
	}
	return nil
}

// consumeFileEnd reads the FEND record that closes a file.
func consumeFileEnd(r *core.RecordReader) error {
	l, err := r.ReadLine()
	if err == io.EOF {
		return &core.UnexpectedEOFError{Line: r.LineNumber(), Want: "FEND record"}
	}
	if err != nil {
		return err
	}
	mf, err := l.MF()
	if err != nil {
		return err
	}
	mt, err := l.MT()
	if err != nil {
		return err
	}
	if mf != 0 || mt != 0 {
		return fmt.Errorf("line %d: expected FEND, got MF=%d MT=%d", l.Number(), mf, mt)
	}
	return nil
}

// consumeMaterialEnd reads the MEND record separating materials. Minimal
// tapes end right after the last FEND, so end of stream is fine here, and
// anything that is not a MEND is pushed back for the next material.
func consumeMaterialEnd(r *core.RecordReader) error {
	l, err := r.ReadLine()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	mat, err := l.MAT()
	if err != nil {
		return err
	}
	if mat != 0 {
		r.UnreadLine(l)
	}
	return nil
}
