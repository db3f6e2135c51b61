// Package main is the entry point for the seasons picker
package main

import (
	"os"

	"github.com/lixenwraith/seasons/cmd/seasons/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
