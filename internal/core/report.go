package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/asrcpq/ccreport/internal/config"
	"github.com/asrcpq/ccreport/internal/inputs"
)

type Processor struct {
	userInput inputs.UserInput
}

func NewProcessor(userInput inputs.UserInput) *Processor {
	return &Processor{userInput: userInput}
}

// Run prints one "name value key" line per match, key-major then file-major.
// An unreadable file is skipped with a warning; it must not abort the rest
// of the report.
func (p *Processor) Run(files []string) {
	for _, key := range p.userInput.Keys {
		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Printf("Warning: skipping %s: %v", file, err)
				continue
			}
			for _, match := range p.matchFile(file, data, key) {
				fmt.Printf("%s %s %s\n", match.Name, match.Value, match.Key)
			}
		}
	}
}

func (p *Processor) matchFile(file string, data []byte, key string) []Match {
	name := strings.TrimSuffix(filepath.Base(file), config.ResultSuffix)

	if p.userInput.Strict {
		value, ok := LookupKey(data, key)
		if !ok {
			return nil
		}
		return []Match{{Name: name, Value: value, Key: key}}
	}

	var matches []Match
	for _, fragment := range ScanFragments(string(data), key) {
		value, ok := ExtractValue(fragment)
		if !ok {
			continue
		}
		matches = append(matches, Match{Name: name, Value: value, Key: key})
	}
	return matches
}
