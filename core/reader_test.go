package core

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

// card formats six 11-column fields and the MAT/MF/MT/NS tail into one
// 80-column image.
func card(c1, c2, l1, l2, n1, n2 string, mat, mf, mt, ns int) string {
	return fmt.Sprintf("%11s%11s%11s%11s%11s%11s%4d%2d%3d%5d",
		c1, c2, l1, l2, n1, n2, mat, mf, mt, ns)
}

// tape builds a RecordReader over the given card images.
func tape(lines ...string) *RecordReader {
	return NewRecordReader(strings.NewReader(strings.Join(lines, "\n")))
}

// TestReadText tests TEXT record decoding
func TestReadText(t *testing.T) {
	text := " $Rev:: 532      $  U-235 from ENDF/B-VII.1"
	line := fmt.Sprintf("%-66s%4d%2d%3d%5d", text, 9228, 1, 451, 4)

	rec, err := tape(line).ReadText()
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if !strings.HasPrefix(rec.HL, text) {
		t.Errorf("expected text %q, got %q", text, rec.HL)
	}
	if len(rec.HL) != 66 {
		t.Errorf("expected 66 columns of text, got %d", len(rec.HL))
	}
	if rec.MAT != 9228 || rec.MF != 1 || rec.MT != 451 || rec.NS != 4 {
		t.Errorf("unexpected tail %+v", rec.Tail)
	}
}

// TestReadControl tests CONT record decoding
func TestReadControl(t *testing.T) {
	line := card("1.000000+0", "2.500000-1", "1", "2", "33", "0", 9228, 1, 451, 2)

	rec, err := tape(line).ReadControl(false)
	if err != nil {
		t.Fatalf("ReadControl: %v", err)
	}
	if rec.C1 != 1.0 || rec.C2 != 0.25 {
		t.Errorf("expected C1=1 C2=0.25, got C1=%g C2=%g", rec.C1, rec.C2)
	}
	if rec.L1 != 1 || rec.L2 != 2 || rec.N1 != 33 || rec.N2 != 0 {
		t.Errorf("unexpected integer fields %+v", rec)
	}
}

// TestReadControlSkipC1C2 tests the directory-record case where the two
// floating fields are reserved and must not be decoded
func TestReadControlSkipC1C2(t *testing.T) {
	// C1 deliberately holds non-numeric content; only the skip path accepts it.
	line := card("<reserved>", "", "1", "452", "4", "0", 9228, 1, 451, 26)

	rec, err := tape(line).ReadControl(true)
	if err != nil {
		t.Fatalf("ReadControl(skipC1C2): %v", err)
	}
	if rec.C1 != 0 || rec.C2 != 0 {
		t.Errorf("expected skipped C1/C2 to stay zero, got %g %g", rec.C1, rec.C2)
	}
	if rec.L1 != 1 || rec.L2 != 452 || rec.N1 != 4 || rec.N2 != 0 {
		t.Errorf("unexpected integer fields %+v", rec)
	}

	if _, err := tape(line).ReadControl(false); err == nil {
		t.Error("expected decode error when C1 is read as a float")
	}
}

// TestReadHead tests HEAD record decoding, including the float-to-integer
// truncation of the ZA field
func TestReadHead(t *testing.T) {
	line := card("9.223500+4", "2.330248+2", "1", "1", "0", "6", 9228, 1, 451, 1)

	rec, err := tape(line).ReadHead()
	if err != nil {
		t.Fatalf("ReadHead: %v", err)
	}
	if rec.ZA != 92235 {
		t.Errorf("expected ZA 92235, got %d", rec.ZA)
	}
	if rec.AWR != 233.0248 {
		t.Errorf("expected AWR 233.0248, got %g", rec.AWR)
	}
	if rec.L1 != 1 || rec.L2 != 1 || rec.N1 != 0 || rec.N2 != 6 {
		t.Errorf("unexpected integer fields %+v", rec)
	}
}

// TestReadListUneven tests a LIST whose item count does not divide evenly
// into six-per-line cards
func TestReadListUneven(t *testing.T) {
	lines := []string{
		card("0.0", "0.0", "0", "0", "8", "0", 9228, 1, 455, 1),
		card("1.0", "2.0", "3.0", "4.0", "5.0", "6.0", 9228, 1, 455, 2),
		card("7.0", "8.0", "", "", "", "", 9228, 1, 455, 3),
	}

	rec, err := tape(lines...).ReadList()
	if err != nil {
		t.Fatalf("ReadList: %v", err)
	}
	if rec.NPL() != 8 {
		t.Errorf("expected NPL 8, got %d", rec.NPL())
	}
	if len(rec.Values) != 8 {
		t.Fatalf("expected 8 values, got %d", len(rec.Values))
	}
	for i, v := range rec.Values {
		if v != float64(i+1) {
			t.Errorf("value %d: expected %g, got %g", i, float64(i+1), v)
		}
	}
}

// TestReadListEmpty tests that NPL=0 consumes only the control record
func TestReadListEmpty(t *testing.T) {
	lines := []string{
		card("0.0", "0.0", "0", "0", "0", "0", 9228, 1, 455, 1),
		card("9.0", "", "", "", "", "", 9228, 1, 455, 2),
	}
	rr := tape(lines...)

	rec, err := rr.ReadList()
	if err != nil {
		t.Fatalf("ReadList: %v", err)
	}
	if len(rec.Values) != 0 {
		t.Errorf("expected no values, got %d", len(rec.Values))
	}

	// The follow-on line is untouched.
	next, err := rr.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine after empty list: %v", err)
	}
	if v, _ := next.Float(0); v != 9.0 {
		t.Errorf("expected next line to start with 9.0, got %g", v)
	}
}

// TestReadListTruncated tests that a missing continuation line fails hard
func TestReadListTruncated(t *testing.T) {
	lines := []string{
		card("0.0", "0.0", "0", "0", "8", "0", 9228, 1, 455, 1),
		card("1.0", "2.0", "3.0", "4.0", "5.0", "6.0", 9228, 1, 455, 2),
	}

	_, err := tape(lines...).ReadList()
	if err == nil {
		t.Fatal("expected truncation error")
	}
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

// TestReadTab1 tests assembly of a tabulated function with partially filled
// final lines in both blocks
func TestReadTab1(t *testing.T) {
	lines := []string{
		card("0.0", "0.0", "0", "0", "2", "5", 9228, 1, 456, 1),
		card("3", "1", "5", "2", "", "", 9228, 1, 456, 2),
		card("1.0e-5", "2.42", "0.0253", "2.43", "1.0e3", "2.44", 9228, 1, 456, 3),
		card("1.0e6", "2.52", "2.0e7", "2.72", "", "", 9228, 1, 456, 4),
	}

	rec, err := tape(lines...).ReadTab1()
	if err != nil {
		t.Fatalf("ReadTab1: %v", err)
	}
	if rec.NR() != 2 || rec.NP() != 5 {
		t.Fatalf("expected NR=2 NP=5, got NR=%d NP=%d", rec.NR(), rec.NP())
	}
	if len(rec.NBT) != 2 || len(rec.INT) != 2 {
		t.Fatalf("expected 2 interpolation regions, got %d/%d", len(rec.NBT), len(rec.INT))
	}
	if rec.NBT[0] != 3 || rec.NBT[1] != 5 || rec.INT[0] != 1 || rec.INT[1] != 2 {
		t.Errorf("unexpected region table NBT=%v INT=%v", rec.NBT, rec.INT)
	}
	if len(rec.X) != 5 || len(rec.Y) != 5 {
		t.Fatalf("expected 5 points, got %d/%d", len(rec.X), len(rec.Y))
	}
	wantX := []float64{1.0e-5, 0.0253, 1.0e3, 1.0e6, 2.0e7}
	wantY := []float64{2.42, 2.43, 2.44, 2.52, 2.72}
	for i := range wantX {
		if rec.X[i] != wantX[i] || rec.Y[i] != wantY[i] {
			t.Errorf("point %d: expected (%g, %g), got (%g, %g)",
				i, wantX[i], wantY[i], rec.X[i], rec.Y[i])
		}
	}
}

// TestReadTab1Truncated tests that removing the final continuation line
// fails with the truncation error rather than a silent partial result
func TestReadTab1Truncated(t *testing.T) {
	lines := []string{
		card("0.0", "0.0", "0", "0", "1", "5", 9228, 1, 456, 1),
		card("5", "2", "", "", "", "", 9228, 1, 456, 2),
		card("1.0e-5", "2.42", "0.0253", "2.43", "1.0e3", "2.44", 9228, 1, 456, 3),
	}

	_, err := tape(lines...).ReadTab1()
	if err == nil {
		t.Fatal("expected truncation error")
	}
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}

	var ue *UnexpectedEOFError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnexpectedEOFError, got %T", err)
	}
	if !strings.Contains(ue.Want, "TAB1 point line") {
		t.Errorf("expected the error to name the missing shape, got %q", ue.Want)
	}
}

// TestReadTab1BadBreakpoints tests breakpoint-table invariant enforcement
func TestReadTab1BadBreakpoints(t *testing.T) {
	decreasing := []string{
		card("0.0", "0.0", "0", "0", "2", "5", 9228, 1, 456, 1),
		card("5", "1", "3", "2", "", "", 9228, 1, 456, 2),
		card("1.0", "1.0", "2.0", "1.0", "3.0", "1.0", 9228, 1, 456, 3),
		card("4.0", "1.0", "5.0", "1.0", "", "", 9228, 1, 456, 4),
	}
	if _, err := tape(decreasing...).ReadTab1(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("decreasing NBT: expected ErrMalformedRecord, got %v", err)
	}

	shortFinal := []string{
		card("0.0", "0.0", "0", "0", "1", "5", 9228, 1, 456, 1),
		card("4", "2", "", "", "", "", 9228, 1, 456, 2),
		card("1.0", "1.0", "2.0", "1.0", "3.0", "1.0", 9228, 1, 456, 3),
		card("4.0", "1.0", "5.0", "1.0", "", "", 9228, 1, 456, 4),
	}
	if _, err := tape(shortFinal...).ReadTab1(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("NBT[last] != NP: expected ErrMalformedRecord, got %v", err)
	}
}

// TestReadTab1Empty tests that zero regions and zero points are legal
func TestReadTab1Empty(t *testing.T) {
	line := card("0.0", "0.0", "0", "0", "0", "0", 9228, 1, 456, 1)

	rec, err := tape(line).ReadTab1()
	if err != nil {
		t.Fatalf("ReadTab1: %v", err)
	}
	if len(rec.NBT) != 0 || len(rec.X) != 0 {
		t.Errorf("expected empty record, got NBT=%v X=%v", rec.NBT, rec.X)
	}
}

// TestUnreadLine tests single-line pushback
func TestUnreadLine(t *testing.T) {
	rr := tape(
		card("1.0", "", "", "", "", "", 1, 1, 1, 1),
		card("2.0", "", "", "", "", "", 1, 1, 1, 2),
	)

	first, err := rr.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	rr.UnreadLine(first)
	if rr.LineNumber() != 0 {
		t.Errorf("expected line number 0 after pushback, got %d", rr.LineNumber())
	}

	again, err := rr.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine after UnreadLine: %v", err)
	}
	if again.Number() != first.Number() || again.String() != first.String() {
		t.Error("expected pushed-back line to be returned again")
	}

	second, err := rr.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if second.Number() != 2 {
		t.Errorf("expected line 2, got %d", second.Number())
	}

	if _, err := rr.ReadLine(); err != io.EOF {
		t.Errorf("expected io.EOF at end of tape, got %v", err)
	}
}

// TestSkipLines tests bulk line skipping and its truncation error
func TestSkipLines(t *testing.T) {
	rr := tape(
		card("1.0", "", "", "", "", "", 1, 1, 1, 1),
		card("2.0", "", "", "", "", "", 1, 1, 1, 2),
		card("3.0", "", "", "", "", "", 1, 1, 1, 3),
	)

	if err := rr.SkipLines(2, "section body"); err != nil {
		t.Fatalf("SkipLines: %v", err)
	}
	l, err := rr.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if v, _ := l.Float(0); v != 3.0 {
		t.Errorf("expected to land on line 3, got value %g", v)
	}

	err = tape(card("1.0", "", "", "", "", "", 1, 1, 1, 1)).SkipLines(2, "section body")
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}
