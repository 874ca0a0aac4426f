package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/halfmoonlabs/vinyasa/pkg/engine"
	"github.com/halfmoonlabs/vinyasa/pkg/llm"
	"github.com/halfmoonlabs/vinyasa/pkg/safety"
)

// agentTemperature is shared by all three agents.
const agentTemperature = 0.5

// Planner designs the structure and rhythm of a session.
type Planner struct {
	llm    llm.Client
	logger *slog.Logger
}

// NewPlanner builds a Planner. A nil client means rule-based only.
func NewPlanner(client llm.Client, log *slog.Logger) *Planner {
	return &Planner{llm: client, logger: log}
}

// Structure plans the session sections for the given body state. The
// model is asked first; a call failure, unparseable output, or an empty
// section list falls back to the rule-based structure.
func (p *Planner) Structure(ctx context.Context, state engine.BodyState) Structure {
	if p.llm == nil {
		return p.ruleBased(state)
	}

	prompt := fmt.Sprintf(plannerPromptTemplate,
		state.Phase,
		state.Intensity,
		state.DurationMinutes,
		joinTypes(state.AllowedTypes),
		state.Energy,
		state.Pain,
		state.DurationMinutes,
		joinTypes(state.ForbiddenTypes),
	)

	raw, err := p.llm.Generate(ctx, llm.Request{
		System:      plannerSystemPrompt,
		Prompt:      prompt,
		Temperature: agentTemperature,
	})
	if err != nil {
		p.logger.Warn("planner model call failed, using rule-based structure", "error", err)
		return p.ruleBased(state)
	}

	var out Structure
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &out); err != nil || len(out.Sections) == 0 {
		p.logger.Warn("planner output unusable, using rule-based structure", "error", err)
		return p.ruleBased(state)
	}
	return out
}

// ruleBased allocates section time deterministically: short sessions
// get three lean sections, longer ones more generous bookends. The
// main section name follows the intensity grade.
func (p *Planner) ruleBased(state engine.BodyState) Structure {
	duration := state.DurationMinutes

	var breathing, coolDown int
	switch {
	case duration <= 15:
		breathing, coolDown = 2, 3
	case duration <= 30:
		breathing, coolDown = 3, 5
	default:
		breathing, coolDown = 5, 7
	}
	main := duration - breathing - coolDown

	mainSection := "moderate_flow"
	switch state.Intensity {
	case safety.Low:
		mainSection = "gentle_flow"
	case safety.High:
		mainSection = "dynamic_flow"
	}

	return Structure{
		Sections: []Section{
			{
				Section:     "breathing",
				Minutes:     breathing,
				Description: "Centering and breath awareness to begin the practice",
			},
			{
				Section:     mainSection,
				Minutes:     main,
				Description: fmt.Sprintf("Main practice adapted for %s phase with %s intensity", state.Phase, state.Intensity),
			},
			{
				Section:     "cool_down",
				Minutes:     coolDown,
				Description: "Restorative poses and gentle release",
			},
		},
		TotalMinutes: duration,
		Rationale: fmt.Sprintf(
			"Designed for %s phase with %s intensity, respecting energy level %d/5 and pain level %d/5",
			state.Phase, state.Intensity, state.Energy, state.Pain,
		),
	}
}

func joinTypes[T ~string](types []T) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
