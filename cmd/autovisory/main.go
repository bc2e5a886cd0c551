// Package main provides the entry point for the autovisory CLI.
package main

import (
	"os"

	"github.com/autovisory/autovisory/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
