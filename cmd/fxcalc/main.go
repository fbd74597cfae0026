package main

import (
	"os"

	"github.com/rustyeddy/fxcalc/cmd/fxcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
