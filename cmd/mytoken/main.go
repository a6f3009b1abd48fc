package main

import (
	"os"

	"github.com/anmol/mytoken/token/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
