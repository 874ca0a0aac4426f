// Package statuscmder provides the status command for checking the
// server and the local cycle profile.
package statuscmder

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/halfmoonlabs/vinyasa/pkg/cliui"
	"github.com/halfmoonlabs/vinyasa/pkg/coach"
	"github.com/halfmoonlabs/vinyasa/pkg/config"
	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/dotdir"
)

type statusCommander struct {
	target    string
	configDir string
}

const statusLongDesc string = `Show server and profile status.

Pings the configured vinyasa server and reports its version and
latency, then displays the local cycle profile (if saved with
"vinyasa flow --save-profile") and the phase it implies today.

Examples:
  vinyasa status`

const statusShortDesc string = "Show server and profile status"

func NewStatusCmd() *cobra.Command {
	cmder := &statusCommander{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: statusShortDesc,
		Long:  statusLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			cmder.configDir, _ = cmd.Flags().GetString("config-dir")
			cfger, err := config.NewConfiger(cmder.configDir)
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

	return cmd
}

func (c *statusCommander) run() error {
	client := coach.New(coach.Config{Target: c.target})

	fmt.Println()

	start := time.Now()
	health, err := client.Health(context.Background())
	latency := time.Since(start)
	if err != nil {
		fmt.Printf("  %s Server %s unreachable: %v\n",
			cliui.FailMark,
			cliui.NameStyle.Render(client.Target()),
			err,
		)
	} else {
		fmt.Printf("  %s Server %s %s\n",
			cliui.SuccessMark,
			cliui.NameStyle.Render(client.Target()),
			cliui.DimStyle.Render(fmt.Sprintf("(%s, %s)", health.Version, cliui.FormatDuration(latency))),
		)
	}

	profile, err := dotdir.NewManager().LoadProfile(c.configDir)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	if profile == nil {
		fmt.Printf("  %s No cycle profile. Save one with 'vinyasa flow --save-profile'.\n\n",
			cliui.DimStyle.Render("●"))
		return nil
	}

	fmt.Printf("\n  %s\n\n", cliui.HeaderStyle.Render("Cycle profile"))
	if profile.UserID != "" {
		fmt.Printf("  %s  %s\n", cliui.KeyStyle.Render("User:       "), cliui.ValueStyle.Render(profile.UserID))
	}
	fmt.Printf("  %s  %s\n", cliui.KeyStyle.Render("Last period:"), cliui.ValueStyle.Render(profile.LastPeriodDate))

	length := profile.CycleLength
	if length <= 0 {
		length = cycle.DefaultCycleLength
	}
	fmt.Printf("  %s  %s\n", cliui.KeyStyle.Render("Cycle length:"), cliui.ValueStyle.Render(strconv.Itoa(length)))

	phase, day, err := cycle.Locate(profile.LastPeriodDate, profile.CycleLength, time.Now())
	if err != nil {
		fmt.Printf("  %s %v\n\n", cliui.WarnStyle.Render("!"), err)
		return nil
	}

	fmt.Printf("  %s  %s %s\n\n",
		cliui.KeyStyle.Render("Today:      "),
		cliui.NameStyle.Render(string(phase)),
		cliui.DimStyle.Render(fmt.Sprintf("(day %d)", day)),
	)
	return nil
}
