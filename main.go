package main

import (
	"os"

	"github.com/educreate/gamecore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
