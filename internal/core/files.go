package core

import (
	"os"
	"path/filepath"
	"strings"
)

// FindResultFiles lists files in dir whose name contains "json". Matching is
// a plain case-sensitive substring check, same as the optimizer's own naming:
// "gen3json.txt" matches, "result.JSON" does not. Subdirectories are skipped;
// the optimizer writes every generation into one flat directory.
// os.ReadDir returns entries sorted by name, which fixes the report's file order.
func FindResultFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var resultFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.Contains(entry.Name(), "json") {
			resultFiles = append(resultFiles, filepath.Join(dir, entry.Name()))
		}
	}
	return resultFiles, nil
}
