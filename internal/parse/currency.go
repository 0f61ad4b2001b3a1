package parse

import (
	"strconv"
	"strings"
)

var currencyCleaner = strings.NewReplacer("$", "", ",", "")

// Currency converts a display-formatted amount like "$12,345" into a number.
// Every monetary field in the store is a formatted string, so any arithmetic
// goes through here. Returns ok=false for blank or non-numeric input.
func Currency(s string) (float64, bool) {
	cleaned := strings.TrimSpace(currencyCleaner.Replace(s))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
