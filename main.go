package main

import (
	"os"

	"github.com/skillsync-ai/simengine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
