package core

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// TestParseInt tests integer slot decoding
func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		slot    string
		want    int
		wantErr bool
	}{
		{"right-justified", "          5", 5, false},
		{"left-justified", "5          ", 5, false},
		{"negative", "        -12", -12, false},
		{"explicit plus", "        +12", 12, false},
		{"blank is zero", "           ", 0, false},
		{"empty is zero", "", 0, false},
		{"zero", "          0", 0, false},
		{"garbage", "     twelve", 0, true},
		{"float is not int", "        1.5", 0, true},
		{"embedded space", "       1 2 ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt(tt.slot)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got error: %v", tt.wantErr, err)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedField) {
					t.Errorf("expected error to match ErrMalformedField, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

// TestParseFloat tests floating slot decoding, including the ENDF
// exponent-suffix convention
func TestParseFloat(t *testing.T) {
	tests := []struct {
		name    string
		slot    string
		want    float64
		wantErr bool
	}{
		{"fortran positive exponent", " 1.23456+5", 123456.0, false},
		{"fortran negative exponent", " 1.23456-5", 1.23456e-5, false},
		{"fortran two-digit exponent", " 1.234567-12", 1.234567e-12, false},
		{"fortran large exponent", " 9.99999+10", 9.99999e10, false},
		{"fortran signed mantissa", "-2.346000+1", -23.46, false},
		{"fortran no radix point", "      123+5", 123e5, false},
		{"plain decimal", "-2.5       ", -2.5, false},
		{"plain integer", "          4", 4.0, false},
		{"explicit exponent", "     1.5e+3", 1500.0, false},
		{"explicit upper exponent", "     1.5E-3", 0.0015, false},
		{"explicit unsigned exponent", "      2e10", 2e10, false},
		{"blank is zero", "           ", 0, false},
		{"trailing dot", "        25.", 25.0, false},
		{"garbage", "   abc     ", 0, true},
		{"double sign", "      --2.5", 0, true},
		{"lone sign", "          +", 0, true},
		{"infinity rejected", "       +Inf", 0, true},
		{"nan rejected", "        NaN", 0, true},
		{"hex rejected", "     0x1p-2", 0, true},
		{"expression rejected", "      2.5-1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloat(tt.slot)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got error: %v", tt.wantErr, err)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedField) {
					t.Errorf("expected error to match ErrMalformedField, got %v", err)
				}
				return
			}
			if math.Abs(got-tt.want) > math.Abs(tt.want)*1e-12 {
				t.Errorf("expected %g, got %g", tt.want, got)
			}
		})
	}
}

// endfSlot formats v in the exponent-suffix convention used on tapes,
// e.g. 123456.0 becomes "1.234560+5".
func endfSlot(v float64) string {
	if v == 0 {
		return " 0.000000+0"
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	mant := v / math.Pow(10, float64(exp))
	return fmt.Sprintf("%9.6f%+d", mant, exp)
}

// TestParseFloatRoundTrip checks that formatting a value in the tape
// convention and decoding it again reproduces the value within floating
// tolerance
func TestParseFloatRoundTrip(t *testing.T) {
	values := []float64{
		1.0, -1.0, 2.5, -2.5, 123456.0, 0.0253,
		1.0e-11, 6.022e23, -7.07e-39, 2.2e7, 9.80665,
		0.0,
	}

	for _, want := range values {
		slot := endfSlot(want)
		got, err := ParseFloat(slot)
		if err != nil {
			t.Fatalf("ParseFloat(%q) returned error: %v", slot, err)
		}
		if want == 0 {
			if got != 0 {
				t.Errorf("ParseFloat(%q) = %g, expected 0", slot, got)
			}
			continue
		}
		if rel := math.Abs(got-want) / math.Abs(want); rel > 1e-6 {
			t.Errorf("ParseFloat(%q) = %g, expected %g (rel err %g)", slot, got, want, rel)
		}
	}
}
