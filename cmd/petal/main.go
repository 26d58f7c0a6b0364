package main

import (
	"os"

	"github.com/petalhq/petal/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
