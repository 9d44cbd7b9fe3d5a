package main

import (
	"os"

	"github.com/ledgerize-dev/ledgerize/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
