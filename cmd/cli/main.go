package main

import (
	"os"

	"freight-cost/cmd/cli/cmd"
	"freight-cost/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
