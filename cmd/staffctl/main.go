package main

import (
	"os"

	"github.com/hugokent/staffctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
