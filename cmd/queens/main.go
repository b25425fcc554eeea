// Package main provides the entry point for the queens CLI.
package main

import (
	"os"

	"github.com/pdrpinto/bestfirst/cmd/queens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
