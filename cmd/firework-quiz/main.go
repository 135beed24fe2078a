package main

import (
	"os"

	"github.com/lixenwraith/firework-quiz/core"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer core.Recover()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
