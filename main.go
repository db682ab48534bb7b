package main

import (
	"os"

	"github.com/mindfool/mindfool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
