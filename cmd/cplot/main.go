package main

import (
	"os"

	"github.com/AdnanKapadia/ComplexPlot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
