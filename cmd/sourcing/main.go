package main

import (
	"os"

	"github.com/npisim/sourcing/pkg/interfaces/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
