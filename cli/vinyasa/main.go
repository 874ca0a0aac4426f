package main

import (
	"os"

	vinyasacmder "github.com/halfmoonlabs/vinyasa/cmd/vinyasa"
)

func main() {
	cmd := vinyasacmder.NewVinyasaCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
