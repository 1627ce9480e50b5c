// Package solidity has helpers for emitting Solidity source text safely.
package solidity

import (
	"regexp"
	"strconv"
	"strings"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var (
	intTypePattern   = regexp.MustCompile(`^u?int([1-9][0-9]*)$`)
	bytesTypePattern = regexp.MustCompile(`^bytes([1-9][0-9]*)$`)
	fixedTypePattern = regexp.MustCompile(`^u?fixed([1-9][0-9]*)x([0-9]+)$`)
)

var reserved = map[string]struct{}{}

func init() {
	words := `abstract after alias apply auto byte case catch copyof default define final implements in inline let
macro match mutable null of partial promise reference relocatable sealed sizeof static supports switch typedef typeof
var address anonymous as assembly bool break bytes calldata constant constructor continue contract delete do else emit
enum event external fallback false for function global if immutable import indexed interface internal is library
mapping memory modifier new override payable pragma private public pure receive return returns revert storage string
struct this true try type unchecked using view virtual while int uint fixed ufixed wei gwei ether seconds minutes
hours days weeks years`
	for _, w := range strings.Fields(words) {
		reserved[w] = struct{}{}
	}
}

// IsIdentifier reports whether s is a valid, non-reserved Solidity identifier.
func IsIdentifier(s string) bool {
	return identPattern.MatchString(s) && !isReserved(s)
}

func isReserved(s string) bool {
	if _, ok := reserved[s]; ok {
		return true
	}
	return isSizedType(s)
}

// isSizedType reports whether s names an elementary type with a size suffix,
// such as uint256, int8, bytes32 or ufixed128x18.
func isSizedType(s string) bool {
	if m := intTypePattern.FindStringSubmatch(s); m != nil {
		return validBits(m[1])
	}
	if m := bytesTypePattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		return err == nil && n <= 32
	}
	if m := fixedTypePattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[2])
		return validBits(m[1]) && err == nil && n <= 80
	}
	return false
}

func validBits(digits string) bool {
	n, err := strconv.Atoi(digits)
	return err == nil && n <= 256 && n%8 == 0
}
