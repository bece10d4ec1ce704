package main

import (
	"os"

	"github.com/legisclaro/legisclaro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
