package core

import (
	"errors"
	"strings"
	"testing"
)

// TestNewLinePadding tests that short physical lines are blank-padded to 80
// columns
func TestNewLinePadding(t *testing.T) {
	l := NewLine([]byte("abc"), 7)

	if l.Number() != 7 {
		t.Errorf("expected line number 7, got %d", l.Number())
	}
	if len(l.Text()) != 66 {
		t.Errorf("expected 66 text columns, got %d", len(l.Text()))
	}
	if !strings.HasPrefix(l.Text(), "abc ") {
		t.Errorf("expected padded text, got %q", l.Text())
	}

	// Tail columns of a padded line are blank and decode as zero
	mat, err := l.MAT()
	if err != nil {
		t.Fatalf("MAT on padded line: %v", err)
	}
	if mat != 0 {
		t.Errorf("expected MAT 0, got %d", mat)
	}
}

// TestLineSlots tests 11-column field addressing and tail decoding
func TestLineSlots(t *testing.T) {
	// A HEAD-shaped card: six fields, then MAT=9228 MF=1 MT=451 NS=1
	raw := " 9.223500+4 2.330248+2          1          1          0          69228 1451    1"
	l := NewLine([]byte(raw), 1)

	if got := l.Slot(0); got != " 9.223500+4" {
		t.Errorf("slot 0 = %q", got)
	}
	if got := l.Slot(5); got != "          6" {
		t.Errorf("slot 5 = %q", got)
	}

	v, err := l.Float(0)
	if err != nil {
		t.Fatalf("Float(0): %v", err)
	}
	if v != 92235.0 {
		t.Errorf("expected 92235.0, got %g", v)
	}

	n, err := l.Int(2)
	if err != nil {
		t.Fatalf("Int(2): %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1, got %d", n)
	}

	tail, err := l.Tail()
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	want := Tail{MAT: 9228, MF: 1, MT: 451, NS: 1}
	if tail != want {
		t.Errorf("expected tail %+v, got %+v", want, tail)
	}
}

// TestLineErrorPosition tests that field errors carry the line number and
// 1-based starting column of the offending slot
func TestLineErrorPosition(t *testing.T) {
	raw := " 1.000000+0      oops!          1          1          0          0"
	l := NewLine([]byte(raw), 42)

	_, err := l.Float(1)
	if err == nil {
		t.Fatal("expected error for garbage slot")
	}

	var fe *MalformedFieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected MalformedFieldError, got %T", err)
	}
	if fe.Line != 42 {
		t.Errorf("expected line 42, got %d", fe.Line)
	}
	if fe.Column != 12 {
		t.Errorf("expected column 12, got %d", fe.Column)
	}
	if !errors.Is(err, ErrMalformedField) {
		t.Error("expected error to match ErrMalformedField")
	}
}
