package main

import (
	"os"

	"github.com/roadbook-dev/roadbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
