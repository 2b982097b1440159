package main

import (
	"os"

	"rkpm/cmd/pmuctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
