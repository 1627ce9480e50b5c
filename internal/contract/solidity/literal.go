package solidity

import "strings"

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Quote returns s as a double-quoted Solidity string literal.
func Quote(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}

// SingleLine reports whether s can be placed on one source line.
func SingleLine(s string) bool {
	return !strings.ContainsAny(s, "\r\n")
}
