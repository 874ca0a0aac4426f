// Package vinyasacmder
package vinyasacmder

import (
	"github.com/spf13/cobra"

	authcmder "github.com/halfmoonlabs/vinyasa/cmd/vinyasa/auth"
	chatcmder "github.com/halfmoonlabs/vinyasa/cmd/vinyasa/chat"
	configcmder "github.com/halfmoonlabs/vinyasa/cmd/vinyasa/config"
	flowcmder "github.com/halfmoonlabs/vinyasa/cmd/vinyasa/flow"
	ingestcmder "github.com/halfmoonlabs/vinyasa/cmd/vinyasa/ingest"
	knowledgecmder "github.com/halfmoonlabs/vinyasa/cmd/vinyasa/knowledge"
	servecmder "github.com/halfmoonlabs/vinyasa/cmd/vinyasa/serve"
	statuscmder "github.com/halfmoonlabs/vinyasa/cmd/vinyasa/status"
	versioncmder "github.com/halfmoonlabs/vinyasa/cmd/version"
)

const vinyasaLongDesc string = `Vinyasa is a cycle-aware yoga coach.

Generate practice plans adapted to where you are in your cycle, chat with
a yoga-literate assistant, and grow a personal knowledge base:

  vinyasa serve        Run the coaching server
  vinyasa flow         Generate a practice plan
  vinyasa chat         Interactive coaching chat
  vinyasa knowledge    Search the knowledge base
  vinyasa ingest       Feed new yoga texts into the knowledge base`

const vinyasaShortDesc string = "Vinyasa - Cycle-Aware Yoga Coach"

func NewVinyasaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vinyasa",
		Short: vinyasaShortDesc,
		Long:  vinyasaLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .vinyasa/ config directory")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(flowcmder.NewFlowCmd())
	cmd.AddCommand(chatcmder.NewChatCmd())
	cmd.AddCommand(knowledgecmder.NewKnowledgeCmd())
	cmd.AddCommand(ingestcmder.NewIngestCmd())
	cmd.AddCommand(statuscmder.NewStatusCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(authcmder.NewAuthCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
