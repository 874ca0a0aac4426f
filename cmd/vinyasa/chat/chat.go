// Package chatcmder provides the chat command for interactive coaching
// chat against a running vinyasa server.
package chatcmder

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/halfmoonlabs/vinyasa/pkg/cliui"
	"github.com/halfmoonlabs/vinyasa/pkg/coach"
	"github.com/halfmoonlabs/vinyasa/pkg/config"
	"github.com/halfmoonlabs/vinyasa/pkg/stream"
)

var (
	userPrompt      = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true).Render("you> ")
	assistantPrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("coach> ")
)

type chatCommander struct {
	target   string
	noStream bool
}

const chatLongDesc string = `Start an interactive chat session with the vinyasa coach.

Messages are answered with the server's yoga knowledge base as context.
Responses stream token by token; use --no-stream to wait for the full
reply and render it as Markdown instead.

Examples:
  vinyasa chat
  vinyasa chat --target http://localhost:8080
  vinyasa chat --no-stream`

const chatShortDesc string = "Interactive chat with the vinyasa coach"

func NewChatCmd() *cobra.Command {
	cmder := &chatCommander{}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: chatShortDesc,
		Long:  chatLongDesc,
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
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmder.run()
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.target, "target", "t", defaults.Client.Target, "Vinyasa server URL")
	cmd.Flags().BoolVar(&cmder.noStream, "no-stream", false, "Wait for the full reply and render it as Markdown")

	return cmd
}

func (c *chatCommander) run() error {
	client := coach.New(coach.Config{Target: c.target})

	fmt.Println()
	fmt.Printf("  %s %s\n\n",
		cliui.KeyStyle.Render("Server:"),
		cliui.NameStyle.Render(client.Target()),
	)
	fmt.Printf("  %s\n\n", cliui.DimStyle.Render("Type your message and press Enter. /exit or Ctrl+D to quit."))

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(userPrompt)
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/exit" {
			break
		}

		if err := c.send(client, input); err != nil {
			fmt.Fprintf(os.Stderr, "  %s %v\n", cliui.FailMark, err)
			continue
		}

		fmt.Println()
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Println()
	return nil
}

func (c *chatCommander) send(client *coach.Client, message string) error {
	if c.noStream {
		reply, err := client.Chat(context.Background(), message)
		if err != nil {
			return err
		}
		rendered, err := cliui.RenderMarkdown(reply)
		if err != nil {
			rendered = reply
		}
		fmt.Print(assistantPrompt)
		fmt.Println()
		fmt.Print(rendered)
		return nil
	}

	fmt.Print(assistantPrompt)
	var streamErr error
	err := client.StreamChat(context.Background(), message, func(ev stream.Event) {
		switch ev.Kind {
		case stream.KindFragment:
			fmt.Print(ev.Text)
		case stream.KindError:
			streamErr = fmt.Errorf("model error: %s", ev.Text)
		case stream.KindEnd:
		}
	})
	if err != nil {
		return err
	}
	return streamErr
}
