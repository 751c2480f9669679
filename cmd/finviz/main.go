package main

import (
	"os"

	"github.com/finviz-dev/finviz/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
