package main

import (
	"os"

	"github.com/autovenv/autovenv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
