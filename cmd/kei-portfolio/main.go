package main

import (
	"os"

	"kei-portfolio/cmd/kei-portfolio/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
