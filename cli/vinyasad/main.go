package main

import (
	"os"

	servecmder "github.com/halfmoonlabs/vinyasa/cmd/vinyasa/serve"
)

func main() {
	cmd := servecmder.NewServeCmd()
	cmd.Use = "vinyasad"
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .vinyasa/ config directory")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
