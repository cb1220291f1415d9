package main

import (
	"fmt"
	"os"

	"github.com/olafurjohannsson/ort-go/internal/cli"
)

var (
	rootCommand = cli.NewRootCommand
	osExit      = os.Exit
)

func main() {
	cmd := rootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		osExit(1)
	}
}
