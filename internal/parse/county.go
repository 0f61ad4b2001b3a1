package parse

import (
	"strings"
	"unicode"
)

// CountyState splits a county code like "FL-MiamiDade" into its state prefix
// and county name. A state is only reported when the prefix is exactly two
// letters; otherwise state is empty and the whole string is the name.
func CountyState(county string) (state, name string) {
	idx := strings.Index(county, "-")
	if idx < 0 {
		return "", county
	}

	prefix := strings.TrimSpace(county[:idx])
	if !isStateCode(prefix) {
		return "", county
	}
	return strings.ToUpper(prefix), county[idx+1:]
}

func isStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
