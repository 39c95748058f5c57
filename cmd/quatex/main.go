package main

import (
	"os"

	"quatex/cmd/quatex/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
