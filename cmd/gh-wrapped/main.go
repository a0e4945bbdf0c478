package main

import (
	"fmt"
	"os"

	"gh-wrapped/cmd/gh-wrapped/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
