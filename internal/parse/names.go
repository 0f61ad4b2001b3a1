package parse

import "strings"

// NameList splits a semicolon-delimited party list ("DOE, JOHN; DOE, JANE")
// into trimmed names, dropping empty segments.
func NameList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var names []string
	for _, part := range strings.Split(s, ";") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// FirstLast decomposes a full name into first and last: the token before the
// first whitespace and the token after the last. A name with no whitespace is
// both its own first and last name.
func FirstLast(fullName string) (first, last string) {
	fields := strings.Fields(fullName)
	switch len(fields) {
	case 0:
		return fullName, fullName
	case 1:
		return fields[0], fields[0]
	default:
		return fields[0], fields[len(fields)-1]
	}
}
