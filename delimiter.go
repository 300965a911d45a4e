package radtidy

import (
	"fmt"
	"unicode/utf8"
)

// ParseDelimiter interprets a delimiter given on the command line or in a
// config file. An empty string means the delimiter should be detected, and is
// returned as 0. "tab" and a literal \t both mean a tab.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`, "\t":
		return '\t', nil
	case "comma":
		return ',', nil
	case "space":
		return ' ', nil
	}

	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}
