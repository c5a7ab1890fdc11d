package main

import (
	"log"

	"github.com/asrcpq/ccreport/internal/core"
	"github.com/asrcpq/ccreport/internal/inputs"
)

func main() {
	log.SetFlags(0) // remove timestamp from prints

	userInput := inputs.ParseFlags()

	files, err := core.FindResultFiles(userInput.Dir)
	if err != nil {
		log.Fatalf("Error: cannot list result directory %s: %v", userInput.Dir, err)
	}

	processor := core.NewProcessor(userInput)
	processor.Run(files)
}
