package core

import "github.com/tidwall/gjson"

// LookupKey resolves key against data as real JSON. Unlike the fragment
// scanner it is boundary-exact: "clear1" does not match a "clear10" field.
// Returns false for malformed JSON or a missing key. The value is the raw
// JSON token, so strings keep their quotes.
func LookupKey(data []byte, key string) (string, bool) {
	if !gjson.ValidBytes(data) {
		return "", false
	}
	result := gjson.GetBytes(data, key)
	if !result.Exists() {
		return "", false
	}
	return result.Raw, true
}
