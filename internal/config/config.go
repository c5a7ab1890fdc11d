package config

const (
	// ResultDirEnv overrides the default result directory
	ResultDirEnv = "TTTZ_RESULT_DIR"

	// DefaultDataSubdir is where the optimizer writes result files, relative to $HOME
	DefaultDataSubdir = ".local/share/tttz"

	// ResultSuffix is stripped from file names in report rows
	ResultSuffix = ".json"
)

// DefaultKeys are the evaluator weights reported on, in output order
var DefaultKeys = []string{
	"clear1",
	"clear2",
	"clear4",
	"back_to_back",
	"bumpiness",
	"perfect_clear",
	"jeopardy",
}
