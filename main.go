package main

import (
	"os"

	"github.com/deckplay/deckplay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
