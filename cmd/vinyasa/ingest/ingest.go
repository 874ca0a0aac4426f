// Package ingestcmder provides the ingest command for feeding yoga
// texts into the server's knowledge base.
package ingestcmder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halfmoonlabs/vinyasa/pkg/cliui"
	"github.com/halfmoonlabs/vinyasa/pkg/coach"
	"github.com/halfmoonlabs/vinyasa/pkg/config"
	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
)

type ingestCommander struct {
	target     string
	philosophy bool
}

const ingestLongDesc string = `Ingest yoga text into the knowledge base.

Sends the contents of a file (or stdin) to the running vinyasa server.
JSON input (an entries array, or {"entries": [...]}) is merged as
structured knowledge directly; anything else is freeform text the
server extracts entries from with its configured LLM, which therefore
requires the server to have an LLM provider.

Use --philosophy for non-asana texts (e.g. the Yoga Sutras); entries
are then extracted by topic instead of by pose.

Examples:
  vinyasa ingest entries.json
  vinyasa ingest poses.txt
  vinyasa ingest sutras.txt --philosophy
  cat notes.md | vinyasa ingest`

const ingestShortDesc string = "Ingest yoga text into the knowledge base"

func NewIngestCmd() *cobra.Command {
	cmder := &ingestCommander{}

	cmd := &cobra.Command{
		Use:   "ingest [file]",
		Short: ingestShortDesc,
		Long:  ingestLongDesc,
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			cfger, err := config.NewConfiger(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			cfg, err := cfger.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if !cmd.Flags().Changed("target") {
				cmder.target = cfg.Client.Target
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return cmder.run(path)
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.target, "target", "t", defaults.Client.Target, "Vinyasa server URL")
	cmd.Flags().BoolVar(&cmder.philosophy, "philosophy", false, "Extract by topic (for philosophy texts) instead of by pose")

	return cmd
}

func (c *ingestCommander) run(path string) error {
	text, err := readText(path)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("nothing to ingest: text is empty")
	}

	client := coach.New(coach.Config{Target: c.target})

	if entries, ok := parseEntries(text); ok {
		var saved int
		err = cliui.Step(os.Stderr, "Merging knowledge entries", func() error {
			var err error
			saved, err = client.IngestEntries(context.Background(), entries)
			return err
		})
		if err != nil {
			return err
		}

		fmt.Printf("\n  %s Merged %d entries\n\n", cliui.SuccessMark, saved)
		return nil
	}

	var report *coach.IngestReport
	err = cliui.Step(os.Stderr, "Extracting knowledge", func() error {
		var err error
		report, err = client.IngestText(context.Background(), text, c.philosophy)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n  %s Ingested %d entries %s\n",
		cliui.SuccessMark,
		report.Ingested,
		cliui.DimStyle.Render("→ "+report.Path),
	)
	for _, pose := range report.Poses {
		fmt.Printf("    %s %s\n", cliui.DimStyle.Render("●"), cliui.NameStyle.Render(pose))
	}
	fmt.Println()
	return nil
}

// parseEntries recognizes already-structured knowledge input: a JSON
// entries array, or an {"entries": [...]} envelope.
func parseEntries(text string) ([]knowledge.Entry, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}

	var entries []knowledge.Entry
	if err := json.Unmarshal([]byte(trimmed), &entries); err == nil && len(entries) > 0 {
		return entries, true
	}

	var envelope struct {
		Entries []knowledge.Entry `json:"entries"`
	}
	if err := json.Unmarshal([]byte(trimmed), &envelope); err == nil && len(envelope.Entries) > 0 {
		return envelope.Entries, true
	}
	return nil, false
}

// readText reads the input text from path, or stdin when no path is given.
func readText(path string) (string, error) {
	if path == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(raw), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(raw), nil
}
