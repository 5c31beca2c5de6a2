package main

import (
	"os"

	"github.com/abhisek/classim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
