package domain

import (
	"fmt"
	"strings"
)

// DecodeHex turns a hex bit pattern into an assignment for numVars variables.
// Each digit contributes four bits, most significant first, and the digits
// are read as one big-endian number: variable v takes bit v of that number.
// Bits above numVars are ignored. An optional "0x" prefix is accepted.
func DecodeHex(s string, numVars int) ([]bool, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if 4*len(digits) < numVars {
		return nil, fmt.Errorf("%w: %q has %d bits, need %d", ErrInvalidAssignment, s, 4*len(digits), numVars)
	}

	assignment := make([]bool, numVars)
	for pos := 0; pos < len(digits); pos++ {
		c := digits[len(digits)-1-pos]
		nibble, ok := hexValue(c)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a hex digit", ErrInvalidAssignment, c)
		}
		for bit := range 4 {
			v := 4*pos + bit
			if v < numVars {
				assignment[v] = nibble>>bit&1 == 1
			}
		}
	}
	return assignment, nil
}

// EncodeHex is the inverse of DecodeHex. The result is padded to whole bytes
// so one to eight variables encode as two digits.
func EncodeHex(assignment []bool) string {
	if len(assignment) == 0 {
		return ""
	}
	numDigits := (len(assignment) + 7) / 8 * 2
	var sb strings.Builder
	for pos := numDigits - 1; pos >= 0; pos-- {
		var nibble byte
		for bit := range 4 {
			v := 4*pos + bit
			if v < len(assignment) && assignment[v] {
				nibble |= 1 << bit
			}
		}
		sb.WriteByte("0123456789abcdef"[nibble])
	}
	return sb.String()
}

// NoAssignment is how DisplayHex shows the assignment of a diagram
// without variables
const NoAssignment = "(none)"

// DisplayHex is EncodeHex for output, never empty
func DisplayHex(assignment []bool) string {
	if len(assignment) == 0 {
		return NoAssignment
	}
	return EncodeHex(assignment)
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
