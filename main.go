package main

import (
	"os"

	"github.com/ewei/lexikid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
