package deploy

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"
)

// The address may directly follow other output such as an ANSI colour code;
// only a trailing hex digit disqualifies it.
var addressPattern = regexp.MustCompile(`0x([0-9a-fA-F]{40})(?:[^0-9a-fA-F]|$)`)

// ExtractAddress returns the first 0x-prefixed 40 hex digit token in output.
// Longer hex strings such as transaction hashes are skipped.
func ExtractAddress(output string) (common.Address, bool) {
	m := addressPattern.FindStringSubmatch(output)
	if m == nil {
		return common.Address{}, false
	}
	return common.HexToAddress(m[1]), true
}
