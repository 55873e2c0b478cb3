package main

import (
	"os"

	"github.com/sdutta/revq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
