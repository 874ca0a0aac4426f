// Package flowcmder provides the flow command for generating practice
// plans from a running vinyasa server.
package flowcmder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halfmoonlabs/vinyasa/pkg/cliui"
	"github.com/halfmoonlabs/vinyasa/pkg/coach"
	"github.com/halfmoonlabs/vinyasa/pkg/config"
	"github.com/halfmoonlabs/vinyasa/pkg/dotdir"
	"github.com/halfmoonlabs/vinyasa/pkg/flow"
)

type flowCommander struct {
	target      string
	lastPeriod  string
	cycleLength int
	energy      int
	pain        int
	duration    int
	userID      string
	focus       []string
	asJSON      bool
	saveProfile bool
	configDir   string
}

const flowLongDesc string = `Generate a practice plan adapted to your cycle.

The plan is shaped by where you are in your cycle (from --last-period
and --cycle-length) plus how you feel today (--energy, --pain). Cycle
details are remembered in your .vinyasa/ profile with --save-profile,
so later runs only need the day-to-day flags.

Examples:
  vinyasa flow --last-period 2026-08-18 --save-profile
  vinyasa flow --energy 2 --pain 4 --duration 20
  vinyasa flow --focus breathing,restorative --json`

const flowShortDesc string = "Generate a practice plan"

func NewFlowCmd() *cobra.Command {
	cmder := &flowCommander{}

	cmd := &cobra.Command{
		Use:   "flow",
		Short: flowShortDesc,
		Long:  flowLongDesc,
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

			// Saved profile fills in whatever flags the user left out.
			profile, err := dotdir.NewManager().LoadProfile(cmder.configDir)
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}
			if profile != nil {
				if !cmd.Flags().Changed("last-period") {
					cmder.lastPeriod = profile.LastPeriodDate
				}
				if !cmd.Flags().Changed("cycle-length") {
					cmder.cycleLength = profile.CycleLength
				}
				if !cmd.Flags().Changed("user") {
					cmder.userID = profile.UserID
				}
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmder.run()
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.target, "target", "t", defaults.Client.Target, "Vinyasa server URL")
	cmd.Flags().StringVar(&cmder.lastPeriod, "last-period", "", "First day of your last period (YYYY-MM-DD)")
	cmd.Flags().IntVar(&cmder.cycleLength, "cycle-length", 0, "Cycle length in days (default 28)")
	cmd.Flags().IntVarP(&cmder.energy, "energy", "e", 0, "Energy today, 1 (drained) to 5 (energized)")
	cmd.Flags().IntVarP(&cmder.pain, "pain", "p", 0, "Pain or cramping today, 1 (none) to 5 (severe)")
	cmd.Flags().IntVarP(&cmder.duration, "duration", "m", 0, "Practice length in minutes (default 20)")
	cmd.Flags().StringVarP(&cmder.userID, "user", "u", "", "User id the session is stored under")
	cmd.Flags().StringSliceVarP(&cmder.focus, "focus", "f", nil, "Training focus (e.g. breathing,restorative,strength)")
	cmd.Flags().BoolVar(&cmder.asJSON, "json", false, "Print the raw plan as JSON")
	cmd.Flags().BoolVar(&cmder.saveProfile, "save-profile", false, "Remember cycle details in the local profile")

	return cmd
}

func (c *flowCommander) run() error {
	if c.lastPeriod == "" {
		return fmt.Errorf("no last period date: pass --last-period YYYY-MM-DD (add --save-profile to remember it)")
	}

	client := coach.New(coach.Config{Target: c.target})

	var plan *flow.Plan
	err := cliui.Step(os.Stderr, "Planning your practice", func() error {
		var err error
		plan, err = client.PlanFlow(context.Background(), flow.Request{
			LastPeriodDate:  c.lastPeriod,
			CycleLength:     c.cycleLength,
			Energy:          c.energy,
			Pain:            c.pain,
			DurationMinutes: c.duration,
			UserID:          c.userID,
			TrainingFocus:   c.focus,
		})
		return err
	})
	if err != nil {
		return err
	}

	if c.saveProfile {
		profile := &dotdir.Profile{
			UserID:         c.userID,
			LastPeriodDate: c.lastPeriod,
			CycleLength:    c.cycleLength,
		}
		if err := dotdir.NewManager().SaveProfile(profile, c.configDir); err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}
	}

	if c.asJSON {
		out, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling plan: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	rendered, err := cliui.RenderMarkdown(renderPlan(plan))
	if err != nil {
		return fmt.Errorf("rendering plan: %w", err)
	}
	fmt.Print(rendered)
	return nil
}

// renderPlan lays the plan out as Markdown: cycle context first, then
// each section with its poses and the matching cues inline.
func renderPlan(plan *flow.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Your Practice\n\n")
	fmt.Fprintf(&b, "**Phase:** %s (day %d) · **Intensity:** %s · **%d minutes**\n\n",
		plan.BodyState.Phase, plan.BodyState.DayInCycle, plan.BodyState.Intensity, plan.Structure.TotalMinutes)
	if plan.Structure.Rationale != "" {
		fmt.Fprintf(&b, "_%s_\n\n", plan.Structure.Rationale)
	}

	cuesByPose := make(map[string]flow.Cue, len(plan.Cues.Cues))
	for _, cue := range plan.Cues.Cues {
		cuesByPose[cue.Section+"/"+cue.Pose] = cue
	}

	for _, section := range plan.Sequence.Sections {
		minutes := 0
		for _, s := range plan.Structure.Sections {
			if s.Section == section.Section {
				minutes = s.Minutes
			}
		}
		fmt.Fprintf(&b, "## %s (%d min)\n\n", titleCase(section.Section), minutes)

		for _, entry := range section.Poses {
			fmt.Fprintf(&b, "### %s", titleCase(entry.Pose))
			switch {
			case entry.Reps > 0:
				fmt.Fprintf(&b, " — %d reps\n\n", entry.Reps)
			case entry.Duration != "":
				fmt.Fprintf(&b, " — %s\n\n", entry.Duration)
			default:
				fmt.Fprint(&b, "\n\n")
			}

			cue, ok := cuesByPose[section.Section+"/"+entry.Pose]
			if !ok {
				continue
			}
			for _, line := range cue.AlignmentCues {
				fmt.Fprintf(&b, "- %s\n", line)
			}
			if cue.Breathing != "" {
				fmt.Fprintf(&b, "- *Breath:* %s\n", cue.Breathing)
			}
			if cue.Modifications != "" {
				fmt.Fprintf(&b, "- *Modify:* %s\n", cue.Modifications)
			}
			b.WriteString("\n")
			if cue.Encouragement != "" {
				fmt.Fprintf(&b, "> %s\n\n", cue.Encouragement)
			}
		}
	}

	if plan.SessionID != "" {
		fmt.Fprintf(&b, "---\n\nSession `%s`\n", plan.SessionID)
	}
	return b.String()
}

func titleCase(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
