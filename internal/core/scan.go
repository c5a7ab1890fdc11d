package core

import "strings"

// ScanFragments splits contents on commas and returns the fragments that
// contain key as a substring. Matching is not boundary-aware: key "clear1"
// also matches a "clear10:9" fragment. The result files are not guaranteed
// to be well-formed JSON, so the scanner must not assume structure.
func ScanFragments(contents, key string) []string {
	var matched []string
	for _, fragment := range strings.Split(contents, ",") {
		if strings.Contains(fragment, key) {
			matched = append(matched, fragment)
		}
	}
	return matched
}

// ExtractValue returns everything after the first colon in fragment, raw.
// "jeopardy:3:risky" yields "3:risky". The bool is false when the fragment
// has no colon at all.
func ExtractValue(fragment string) (string, bool) {
	_, value, ok := strings.Cut(fragment, ":")
	return value, ok
}
