package main

import (
	"os"

	"github.com/nikverma/physlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
