// Package knowledgecmder provides the knowledge command for searching
// the server's yoga knowledge base.
package knowledgecmder

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halfmoonlabs/vinyasa/pkg/cliui"
	"github.com/halfmoonlabs/vinyasa/pkg/coach"
	"github.com/halfmoonlabs/vinyasa/pkg/config"
)

type knowledgeCommander struct {
	target string
	limit  int
	asJSON bool
}

const knowledgeLongDesc string = `Search the yoga knowledge base.

Queries the running vinyasa server for knowledge entries matching the
given terms. With semantic search configured on the server, results
also include conceptually related entries, not just keyword hits.

Examples:
  vinyasa knowledge "hip openers"
  vinyasa knowledge cramps --limit 3
  vinyasa knowledge "breath awareness" --json`

const knowledgeShortDesc string = "Search the yoga knowledge base"

func NewKnowledgeCmd() *cobra.Command {
	cmder := &knowledgeCommander{}

	cmd := &cobra.Command{
		Use:   "knowledge <query>...",
		Short: knowledgeShortDesc,
		Long:  knowledgeLongDesc,
		Args:  cobra.MinimumNArgs(1),
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
			return cmder.run(strings.Join(args, " "))
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.target, "target", "t", defaults.Client.Target, "Vinyasa server URL")
	cmd.Flags().IntVarP(&cmder.limit, "limit", "n", 0, "Maximum number of results (default: server default)")
	cmd.Flags().BoolVar(&cmder.asJSON, "json", false, "Print results as JSON")

	return cmd
}

func (c *knowledgeCommander) run(query string) error {
	client := coach.New(coach.Config{Target: c.target})

	results, err := client.SearchKnowledge(context.Background(), query, c.limit)
	if err != nil {
		return err
	}

	if c.asJSON {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(results) == 0 {
		fmt.Printf("\n  %s No knowledge matched %q.\n\n", cliui.DimStyle.Render("●"), query)
		return nil
	}

	var b strings.Builder
	for _, entry := range results {
		b.WriteString(entry.Markdown())
		b.WriteString("\n")
	}

	rendered, err := cliui.RenderMarkdown(b.String())
	if err != nil {
		return fmt.Errorf("rendering results: %w", err)
	}
	fmt.Print(rendered)
	return nil
}
