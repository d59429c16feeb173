package main

import (
	"os"

	"github.com/CommanderStorm/navigatum-data/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
