package main

import (
	"os"

	"fairdice/cmd/fairdice/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
