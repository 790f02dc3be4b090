// File: internal/parse/precision.go
// Package parse infers decimal precision from numeral text.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package parse

import "strings"

// Precision returns the count of decimal digits after the first '.' in s,
// stopping at the first non-digit byte. Text without a '.' has precision 0,
// as does a trailing bare '.'. Counts beyond 255 clamp to 255 to fit the
// boundary's uint8 surface.
func Precision(s string) uint8 {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	n := 0
	for _, c := range []byte(s[i+1:]) {
		if c < '0' || c > '9' {
			break
		}
		n++
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}
