package main

import (
	"os"

	"github.com/Philipp01105/colog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
