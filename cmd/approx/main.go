package main

import (
	"os"

	"github.com/GriffinCanCode/approx/cmd/approx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
