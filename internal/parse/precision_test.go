// File: internal/parse/precision_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package parse

import "testing"

// TestPrecision tests the single adopted inference rule: digits after the
// first '.' up to the first non-digit.
func TestPrecision(t *testing.T) {
	cases := []struct {
		in   string
		want uint8
	}{
		{"1.2345", 4},
		{"42", 0},
		{"", 0},
		{"1.", 0},
		{".25", 2},
		{"0.000000001", 9},
		{"1.2x3", 1},
		{"1.2.3", 1},
		{"-3.75", 2},
		{"abc", 0},
		{".", 0},
	}
	for _, c := range cases {
		if got := Precision(c.in); got != c.want {
			t.Errorf("Precision(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

// TestPrecisionClamp tests clamping at the uint8 ceiling
func TestPrecisionClamp(t *testing.T) {
	long := "0."
	for i := 0; i < 300; i++ {
		long += "9"
	}
	if got := Precision(long); got != 255 {
		t.Errorf("Precision(300 digits) = %d, want 255", got)
	}
}
