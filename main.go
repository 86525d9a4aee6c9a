package main

import (
	"fmt"
	"os"

	"github.com/sagarmandavkar-UX/proofly-sub001/presentation/terminal"
)

func main() {
	runner, err := terminal.NewRunner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if err := runner.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
