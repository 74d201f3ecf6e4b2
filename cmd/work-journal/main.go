package main

import (
	"os"

	"tableflip.dev/workjournal/pkg/commands"
)

func main() {
	// cobra has already reported the error.
	if err := commands.New().Execute(); err != nil {
		os.Exit(1)
	}
}
