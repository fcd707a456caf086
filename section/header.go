package section

import (
	"fmt"
	"io"

	"github.com/hearic/pyne/core"
	"github.com/hearic/pyne/model"
)

// readHeader decodes the head record, the three control records, and the
// text block of the descriptive-data section into ev.
func readHeader(r *core.RecordReader, ev *model.Evaluation) error {
	md := &ev.Metadata

	head, err := r.ReadHead()
	if err != nil {
		return err
	}
	if head.MF != 1 || head.MT != 451 {
		return fmt.Errorf("line %d: expected the descriptive-data section (MF=1, MT=451), got MF=%d MT=%d",
			r.LineNumber(), head.MF, head.MT)
	}
	ev.Material = head.MAT
	md.ZA = head.ZA
	md.AWR = head.AWR
	md.LRP = head.L1
	md.LFI = head.L2
	md.NLIB = head.N1
	md.NMOD = head.N2

	c, err := r.ReadControl(false)
	if err != nil {
		return err
	}
	md.ELIS = c.C1
	md.STA = int(c.C2)
	md.LIS = c.L1
	md.LISO = c.L2
	md.NFOR = c.N2

	if c, err = r.ReadControl(false); err != nil {
		return err
	}
	md.AWI = c.C1
	md.EMAX = c.C2
	md.LREL = c.L1
	md.NSUB = c.N1
	md.NVER = c.N2

	if c, err = r.ReadControl(false); err != nil {
		return err
	}
	md.TEMP = c.C1
	md.LDRV = c.L1
	md.NWD = c.N1
	md.NXC = c.N2

	// Two structured text lines carry fixed subfields; the columns are
	// defined by ENDF-102 and are not aligned with the six numeric slots.
	// Each subfield is sliced from the raw card bytes and decoded on its
	// own, so a multi-byte character in one field cannot shift the column
	// boundaries of the fields after it.
	l, err := readStructuredText(r)
	if err != nil {
		return err
	}
	if md.ZSYMAM, err = decodeColumns(r, l, 0, 11); err != nil {
		return err
	}
	if md.ALAB, err = decodeColumns(r, l, 11, 22); err != nil {
		return err
	}
	if md.EDATE, err = decodeColumns(r, l, 22, 32); err != nil {
		return err
	}
	if md.AUTH, err = decodeColumns(r, l, 32, 66); err != nil {
		return err
	}

	if l, err = readStructuredText(r); err != nil {
		return err
	}
	if md.REF, err = decodeColumns(r, l, 1, 22); err != nil {
		return err
	}
	if md.DDATE, err = decodeColumns(r, l, 22, 32); err != nil {
		return err
	}
	if md.RDATE, err = decodeColumns(r, l, 33, 43); err != nil {
		return err
	}
	if md.ENDATE, err = decodeColumns(r, l, 55, 63); err != nil {
		return err
	}

	t, err := r.ReadText()
	if err != nil {
		return err
	}
	md.HSUB = t.HL

	// NWD counts all text lines, the three structured ones included.
	for i := 0; i < md.NWD-3; i++ {
		if t, err = r.ReadText(); err != nil {
			return err
		}
		md.Description = append(md.Description, t.HL)
	}
	return nil
}

// readStructuredText reads one header text line and returns it undecoded,
// for callers that address its subfields by byte column.
func readStructuredText(r *core.RecordReader) (core.Line, error) {
	l, err := r.ReadLine()
	if err == io.EOF {
		return core.Line{}, &core.UnexpectedEOFError{Line: r.LineNumber(), Want: "TEXT record"}
	}
	if err != nil {
		return core.Line{}, err
	}
	if _, err := l.Tail(); err != nil {
		return core.Line{}, err
	}
	return l, nil
}

// decodeColumns renders the byte columns [lo, hi) of a text line through
// the reader's text decoder.
func decodeColumns(r *core.RecordReader, l core.Line, lo, hi int) (string, error) {
	s, err := r.DecodeText(l.TextBytes()[lo:hi])
	if err != nil {
		return "", fmt.Errorf("decoding text at line %d: %w", l.Number(), err)
	}
	return s, nil
}

// readDirectory reads the section index that closes the header: one control
// record per section, terminated by the header section's own SEND record.
func readDirectory(r *core.RecordReader) (model.Directory, error) {
	var dir model.Directory
	for {
		l, err := r.ReadLine()
		if err == io.EOF {
			return nil, &UnterminatedDirectoryError{Line: r.LineNumber()}
		}
		if err != nil {
			return nil, err
		}
		mt, err := l.MT()
		if err != nil {
			return nil, err
		}
		if mt == 0 {
			return dir, nil
		}
		r.UnreadLine(l)

		// Directory records leave the two floating fields blank; the
		// entry lives in the four integer fields.
		c, err := r.ReadControl(true)
		if err != nil {
			return nil, err
		}
		dir = append(dir, model.DirectoryEntry{
			MF:  model.FileNumber(c.L1),
			MT:  c.L2,
			NC:  c.N1,
			MOD: c.N2,
		})
	}
}
