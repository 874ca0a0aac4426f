package configcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halfmoonlabs/vinyasa/pkg/cliui"
	"github.com/halfmoonlabs/vinyasa/pkg/config"
)

const presetLongDesc string = `Reset configuration to a provider preset.

Replaces the config.toml in the .vinyasa/ directory with sane defaults
for the named LLM provider. Supported presets: groq, gemini, ollama.

Groq and gemini additionally need an API key; see "vinyasa auth".

Examples:
  vinyasa config preset groq
  vinyasa config preset ollama`

const presetShortDesc string = "Reset configuration to a provider preset"

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset <name>",
		Short: presetShortDesc,
		Long:  presetLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return runPreset(args[0], configDir)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidPresetNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runPreset(name, configDir string) error {
	cfg, err := config.PresetConfig(name)
	if err != nil {
		return fmt.Errorf("%w\n\nValid presets: %s", err, strings.Join(config.ValidPresetNames(), ", "))
	}

	cfger, err := config.NewConfiger(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfger.SaveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\n  %s Applied preset %s %s\n\n",
		cliui.SuccessMark,
		cliui.NameStyle.Render(name),
		cliui.DimStyle.Render(fmt.Sprintf("(llm.provider=%s, llm.model=%s)", cfg.LLM.Provider, cfg.LLM.Model)),
	)
	return nil
}
