package reader

import (
	"io"
	"strings"

	"github.com/hearic/pyne/model"
	"github.com/hearic/pyne/section"
)

// Survey is a light pass over a tape: every material it carries and the
// sections each one holds, gathered from record tails without decoding any
// bodies.
type Survey struct {
	TapeID    string
	Materials []MaterialSections
}

// MaterialSections lists the sections of one material in tape order.
type MaterialSections struct {
	MAT      int
	Sections []section.Key
}

// Files returns the distinct file numbers among the sections, in tape
// order.
func (m MaterialSections) Files() []model.FileNumber {
	var files []model.FileNumber
	for _, k := range m.Sections {
		found := false
		for _, f := range files {
			if f == k.MF {
				found = true
				break
			}
		}
		if !found {
			files = append(files, k.MF)
		}
	}
	return files
}

// Has reports whether the material carries the given section.
func (m MaterialSections) Has(mf model.FileNumber, mt int) bool {
	for _, k := range m.Sections {
		if k.MF == mf && k.MT == mt {
			return true
		}
	}
	return false
}

// Scan surveys the tape from the current position to its end. It consumes
// the stream; to decode materials afterwards, reopen the tape.
func (r *TapeReader) Scan() (*Survey, error) {
	s := &Survey{}
	seen := make(map[int]map[section.Key]bool)
	index := make(map[int]int)

	for {
		l, err := r.records.ReadLine()
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return nil, err
		}
		tail, err := l.Tail()
		if err != nil {
			return nil, err
		}

		if l.Number() == 1 && tail.MF == 0 {
			s.TapeID = strings.TrimRight(l.Text(), " ")
			continue
		}
		if tail.MAT == -1 { // TEND
			return s, nil
		}
		// Sentinel records carry zeros in the columns they terminate.
		if tail.MAT <= 0 || tail.MF == 0 || tail.MT == 0 {
			continue
		}

		i, ok := index[tail.MAT]
		if !ok {
			i = len(s.Materials)
			index[tail.MAT] = i
			s.Materials = append(s.Materials, MaterialSections{MAT: tail.MAT})
			seen[tail.MAT] = make(map[section.Key]bool)
		}
		k := section.Key{MF: model.FileNumber(tail.MF), MT: tail.MT}
		if !seen[tail.MAT][k] {
			seen[tail.MAT][k] = true
			s.Materials[i].Sections = append(s.Materials[i].Sections, k)
		}
	}
}
