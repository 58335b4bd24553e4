package main

import (
	"os"

	"github.com/jordyvandomselaar/design-prompts-creator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
