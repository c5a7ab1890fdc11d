package inputs

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/asrcpq/ccreport/internal/config"
	"github.com/spf13/pflag"
)

type UserInput struct {
	Dir    string
	Keys   []string
	Strict bool
}

// ParseFlags returns parsed CLI flags and arguments
func ParseFlags() UserInput {
	var strict bool
	var keys string

	pflag.BoolVarP(&strict, "strict", "s", false, "exact key lookup instead of substring scan")
	pflag.StringVarP(&keys, "keys", "k", "", "comma-separated keys to report")
	pflag.Parse()

	return UserInput{
		Dir:    resolveDir(pflag.Args()),
		Keys:   splitKeys(keys),
		Strict: strict,
	}
}

// resolveDir picks the result directory: argument, then environment, then
// the optimizer's data directory under $HOME.
func resolveDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if dir := os.Getenv(config.ResultDirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatal("Error: cannot resolve home directory, pass the result directory as an argument")
	}
	return filepath.Join(home, filepath.FromSlash(config.DefaultDataSubdir))
}

func splitKeys(raw string) []string {
	if raw == "" {
		return config.DefaultKeys
	}
	var keys []string
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
