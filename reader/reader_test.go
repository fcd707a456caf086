package reader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hearic/pyne/model"
)

// card formats six 11-column fields and the MAT/MF/MT tail into one
// 80-column image.
func card(fields [6]string, mat, mf, mt int) string {
	return fmt.Sprintf("%11s%11s%11s%11s%11s%11s%4d%2d%3d%5d",
		fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], mat, mf, mt, 0)
}

func ctrl(c1, c2 string, l1, l2, n1, n2, mat, mf, mt int) string {
	return card([6]string{
		c1, c2,
		strconv.Itoa(l1), strconv.Itoa(l2), strconv.Itoa(n1), strconv.Itoa(n2),
	}, mat, mf, mt)
}

func textCard(text string, mat, mf, mt int) string {
	return fmt.Sprintf("%-66s%4d%2d%3d%5d", text, mat, mf, mt, 0)
}

// material is a minimal one-section material: a header plus a polynomial
// MT=452, closed by SEND, FEND, and MEND records.
func material(mat int) []string {
	return []string{
		ctrl("9.223500+4", "2.330248+2", 1, 1, 0, 6, mat, 1, 451),
		ctrl("0.0", "1.0", 0, 0, 0, 6, mat, 1, 451),
		ctrl("1.0", "2.0+7", 2, 0, 10, 7, mat, 1, 451),
		ctrl("0.0", "0.0", 0, 0, 3, 2, mat, 1, 451),
		textCard(" 92-U -235 ORNL       EVAL-SEP77 M.R.BHAT", mat, 1, 451),
		textCard(" REF. REPORT          DIST-JAN18 REV1-NOV17            20180101", mat, 1, 451),
		textCard("----ENDF/B-VIII.0 MATERIAL 9228", mat, 1, 451),
		ctrl("", "", 1, 451, 9, 1, mat, 1, 451),
		ctrl("", "", 1, 452, 3, 1, mat, 1, 451),
		card([6]string{}, mat, 1, 0), // SEND
		ctrl("9.223500+4", "2.330248+2", 0, 1, 0, 0, mat, 1, 452),
		ctrl("0.0", "0.0", 0, 0, 1, 0, mat, 1, 452),
		card([6]string{"2.436700+0"}, mat, 1, 452),
		card([6]string{}, mat, 1, 0), // SEND
		card([6]string{}, mat, 0, 0), // FEND
		card([6]string{}, 0, 0, 0),   // MEND
	}
}

func twoMaterialTape(tpid string) string {
	lines := []string{textCard(tpid, 7777, 0, 0)}
	lines = append(lines, material(9228)...)
	lines = append(lines, material(9437)...)
	lines = append(lines, card([6]string{}, -1, 0, 0)) // TEND
	return strings.Join(lines, "\n")
}

// createTempTape writes tape content to a temporary file
func createTempTape(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.endf")

	err := os.WriteFile(tmpFile, []byte(content), 0644)
	if err != nil {
		t.Fatalf("failed to create temp tape: %v", err)
	}

	return tmpFile
}

func TestReadAll(t *testing.T) {
	r := NewTapeReader(strings.NewReader(twoMaterialTape("TEST TAPE")))

	evs, err := r.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("expected 2 evaluations, got %d", len(evs))
	}
	if evs[0].Material != 9228 || evs[1].Material != 9437 {
		t.Errorf("expected materials 9228 and 9437, got %d and %d",
			evs[0].Material, evs[1].Material)
	}
	if evs[0].TapeID != "TEST TAPE" {
		t.Errorf("unexpected tape id %q", evs[0].TapeID)
	}
	if evs[1].TapeID != "" {
		t.Errorf("expected no tape id on the second material, got %q", evs[1].TapeID)
	}
}

func TestEvaluationSequence(t *testing.T) {
	r := NewTapeReader(strings.NewReader(twoMaterialTape("TEST TAPE")))
	ctx := context.Background()

	ev, err := r.Evaluation(ctx)
	if err != nil {
		t.Fatalf("first material: %v", err)
	}
	if ev.Material != 9228 {
		t.Errorf("expected material 9228, got %d", ev.Material)
	}

	if ev, err = r.Evaluation(ctx); err != nil {
		t.Fatalf("second material: %v", err)
	}
	if ev.Material != 9437 {
		t.Errorf("expected material 9437, got %d", ev.Material)
	}

	if _, err = r.Evaluation(ctx); err != io.EOF {
		t.Fatalf("expected io.EOF at the TEND record, got %v", err)
	}
	// The reader stays exhausted.
	if _, err = r.Evaluation(ctx); err != io.EOF {
		t.Fatalf("expected io.EOF on every call after the end, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	tmpFile := createTempTape(t, twoMaterialTape("TEST TAPE"))

	r, err := Open(tmpFile)
	if err != nil {
		t.Fatalf("failed to open tape: %v", err)
	}
	defer r.Close()

	if r.file == nil {
		t.Error("expected file to be set")
	}
	ev, err := r.Evaluation(context.Background())
	if err != nil {
		t.Fatalf("Evaluation: %v", err)
	}
	if ev.Material != 9228 {
		t.Errorf("expected material 9228, got %d", ev.Material)
	}
}

func TestOpenNonExistent(t *testing.T) {
	_, err := Open("/nonexistent/file.endf")
	if err == nil {
		t.Error("expected error when opening non-existent file")
	}
}

// TestFixtureTape decodes the checked-in excerpt of the ENDF/B-VIII.0 U-235
// evaluation: real header text and the MT=452/456 nubar tables.
func TestFixtureTape(t *testing.T) {
	r, err := Open(filepath.Join("testdata", "u235_nubar.endf"))
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer r.Close()

	ev, err := r.Evaluation(context.Background())
	if err != nil {
		t.Fatalf("Evaluation: %v", err)
	}

	if ev.Material != 9228 {
		t.Errorf("expected material 9228, got %d", ev.Material)
	}
	md := ev.Metadata
	if md.ZA != 92235 || md.AWR != 233.0248 {
		t.Errorf("expected ZA=92235 AWR=233.0248, got ZA=%d AWR=%g", md.ZA, md.AWR)
	}
	if md.NLIB != 0 || md.NVER != 8 || md.NSUB != 10 {
		t.Errorf("expected NLIB=0 NVER=8 NSUB=10, got %d %d %d", md.NLIB, md.NVER, md.NSUB)
	}
	if md.EDATE != "EVAL-SEP17" || md.DDATE != "DIST-FEB18" || md.ENDATE != "20180201" {
		t.Errorf("unexpected header dates %q %q %q", md.EDATE, md.DDATE, md.ENDATE)
	}
	if got := strings.TrimSpace(md.ALAB); got != "LANL" {
		t.Errorf("expected laboratory LANL, got %q", got)
	}
	if len(md.Description) != 2 {
		t.Errorf("expected 2 description lines, got %d", len(md.Description))
	}
	if len(ev.Directory) != 3 {
		t.Fatalf("expected 3 directory entries, got %d", len(ev.Directory))
	}

	for _, mt := range []int{452, 456} {
		rx := ev.Reaction(mt)
		if rx == nil {
			t.Fatalf("expected MT %d in the document", mt)
		}
		if rx.LNU != 2 {
			t.Errorf("MT %d: expected LNU=2, got %d", mt, rx.LNU)
		}
		tab, ok := rx.Data.(*model.Tabulated)
		if !ok {
			t.Fatalf("MT %d: expected tabulated data, got %T", mt, rx.Data)
		}
		if len(tab.Table.X) != 4 {
			t.Errorf("MT %d: expected 4 points, got %d", mt, len(tab.Table.X))
		}
	}
	total := ev.Reaction(452).Data.(*model.Tabulated).Table
	if total.X[0] != 1.0e-5 || total.Y[0] != 2.4367 {
		t.Errorf("unexpected thermal point (%g, %g)", total.X[0], total.Y[0])
	}
	if total.X[3] != 2.0e7 || total.Y[3] != 5.2061 {
		t.Errorf("unexpected high-energy point (%g, %g)", total.X[3], total.Y[3])
	}

	if _, err = r.Evaluation(context.Background()); err != io.EOF {
		t.Errorf("expected io.EOF after the only material, got %v", err)
	}
}

func TestClose(t *testing.T) {
	r := NewTapeReader(strings.NewReader(""))
	if err := r.Close(); err != nil {
		t.Errorf("expected Close to be a no-op without a file, got %v", err)
	}
}

func TestSetLatin1(t *testing.T) {
	tape := twoMaterialTape("CAF\xe9 TAPE")

	raw := NewTapeReader(strings.NewReader(tape))
	ev, err := raw.Evaluation(context.Background())
	if err != nil {
		t.Fatalf("Evaluation: %v", err)
	}
	if utf8.ValidString(ev.TapeID) {
		t.Errorf("expected the raw tape id to carry the Latin-1 byte, got %q", ev.TapeID)
	}

	decoded := NewTapeReader(strings.NewReader(tape))
	decoded.SetLatin1()
	if ev, err = decoded.Evaluation(context.Background()); err != nil {
		t.Fatalf("Evaluation: %v", err)
	}
	if ev.TapeID != "CAFé TAPE" {
		t.Errorf("expected decoded tape id %q, got %q", "CAFé TAPE", ev.TapeID)
	}
}

func TestReadAllPropagatesErrors(t *testing.T) {
	lines := strings.Split(twoMaterialTape("TEST TAPE"), "\n")

	// Cutting after the MT=452 LIST control line truncates the record.
	truncated := strings.Join(lines[:13], "\n")

	r := NewTapeReader(strings.NewReader(truncated))
	evs, err := r.ReadAll(context.Background())
	if err == nil {
		t.Fatal("expected an error from the truncated tape")
	}
	if evs != nil {
		t.Errorf("expected no evaluations, got %d", len(evs))
	}
}

func TestScan(t *testing.T) {
	r := NewTapeReader(strings.NewReader(twoMaterialTape("TEST TAPE")))

	s, err := r.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if s.TapeID != "TEST TAPE" {
		t.Errorf("unexpected tape id %q", s.TapeID)
	}
	if len(s.Materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(s.Materials))
	}

	m := s.Materials[0]
	if m.MAT != 9228 {
		t.Errorf("expected material 9228, got %d", m.MAT)
	}
	if len(m.Sections) != 2 || m.Sections[0].MT != 451 || m.Sections[1].MT != 452 {
		t.Errorf("unexpected sections %v", m.Sections)
	}
	if files := m.Files(); len(files) != 1 || files[0] != model.MF1 {
		t.Errorf("unexpected files %v", files)
	}
	if !m.Has(model.MF1, 452) {
		t.Error("expected the material to carry (MF1, MT=452)")
	}
	if m.Has(model.MF3, 1) {
		t.Error("did not expect (MF3, MT=1)")
	}
}

func TestScanStopsAtTend(t *testing.T) {
	tape := twoMaterialTape("TEST TAPE") + "\n" +
		ctrl("0.0", "0.0", 0, 0, 0, 0, 1111, 3, 1)

	r := NewTapeReader(strings.NewReader(tape))
	s, err := r.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(s.Materials) != 2 {
		t.Errorf("expected scanning to stop at the TEND record, got %d materials", len(s.Materials))
	}
}
