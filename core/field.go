package core

import (
	"regexp"
	"strconv"
	"strings"
)

// The two literal shapes a numeric slot may take. ENDF tapes conserve
// columns by dropping the exponent marker, so "1.23456+5" means 1.23456e5;
// the sign immediately before the exponent digits is the disambiguator.
// Restricting the grammar to exactly these shapes keeps malformed input on
// the error path instead of being guessed at.
var (
	plainNumber   = regexp.MustCompile(`^[+-]?[0-9]+(?:\.[0-9]*)?(?:[eE][+-]?[0-9]+)?$`)
	fortranNumber = regexp.MustCompile(`^([+-]?[0-9]+(?:\.[0-9]*)?)([+-][0-9]+)$`)
)

// ParseInt decodes a fixed-width slot as a base-10 integer. A blank slot
// decodes as 0.
func ParseInt(slot string) (int, error) {
	s := strings.TrimSpace(slot)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &MalformedFieldError{Slot: slot, Reason: "not a base-10 integer"}
	}
	return n, nil
}

// ParseFloat decodes a fixed-width slot as a floating value. A blank slot
// decodes as 0. Both ordinary literals ("-2.5", "6.02e23") and the ENDF
// exponent-suffix form ("1.23456+5", "1.234567-12") are accepted; anything
// else fails with MalformedFieldError.
func ParseFloat(slot string) (float64, error) {
	s := strings.TrimSpace(slot)
	if s == "" {
		return 0, nil
	}
	if m := fortranNumber.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1]+"e"+m[2], 64)
		if err != nil {
			return 0, &MalformedFieldError{Slot: slot, Reason: "exponent out of range"}
		}
		return v, nil
	}
	if !plainNumber.MatchString(s) {
		return 0, &MalformedFieldError{Slot: slot, Reason: "not a numeric literal"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &MalformedFieldError{Slot: slot, Reason: "value out of range"}
	}
	return v, nil
}
