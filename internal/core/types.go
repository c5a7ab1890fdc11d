package core

// Match is one extracted key/value occurrence in a result file
type Match struct {
	Name  string // file name without the trailing .json
	Value string // raw text after the key's first colon
	Key   string
}
