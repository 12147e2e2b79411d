package main

import (
	"os"

	"hacspec/cmd/hacspec/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
