package main

import (
	"os"

	"pfr/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
