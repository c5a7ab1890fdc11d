package inputs

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/asrcpq/ccreport/internal/config"
)

func TestResolveDir(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("argument wins", func(t *testing.T) {
		t.Setenv(config.ResultDirEnv, "/elsewhere")
		dir := resolveDir([]string{tempDir})
		if dir != tempDir {
			t.Errorf("Expected %s, got %s", tempDir, dir)
		}
	})

	t.Run("environment used when no argument", func(t *testing.T) {
		t.Setenv(config.ResultDirEnv, tempDir)
		dir := resolveDir(nil)
		if dir != tempDir {
			t.Errorf("Expected %s, got %s", tempDir, dir)
		}
	})

	t.Run("falls back to data directory under home", func(t *testing.T) {
		t.Setenv(config.ResultDirEnv, "")
		t.Setenv("HOME", tempDir)
		dir := resolveDir(nil)
		expected := filepath.Join(tempDir, filepath.FromSlash(config.DefaultDataSubdir))
		if dir != expected {
			t.Errorf("Expected %s, got %s", expected, dir)
		}
	})
}

func TestSplitKeys(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "empty uses default list",
			raw:      "",
			expected: config.DefaultKeys,
		},
		{
			name:     "explicit list keeps order",
			raw:      "jeopardy,clear1",
			expected: []string{"jeopardy", "clear1"},
		},
		{
			name:     "whitespace and empty entries dropped",
			raw:      " clear1 , ,clear2",
			expected: []string{"clear1", "clear2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := splitKeys(tt.raw)

			if strings.Join(keys, "|") != strings.Join(tt.expected, "|") {
				t.Errorf("Expected %v, got %v", tt.expected, keys)
			}
		})
	}
}
