package main

import (
	"os"

	"github.com/fharpR4/roomie-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
