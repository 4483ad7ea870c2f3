package main

import (
	"os"

	"github.com/neurofleetx/decision/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
