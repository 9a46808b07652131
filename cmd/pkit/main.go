package main

import (
	"os"

	"github.com/msto63/pkit/cmd/pkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
