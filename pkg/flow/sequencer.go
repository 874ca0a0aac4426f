package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/engine"
	"github.com/halfmoonlabs/vinyasa/pkg/llm"
	"github.com/halfmoonlabs/vinyasa/pkg/pose"
	"github.com/halfmoonlabs/vinyasa/pkg/rag"
	"github.com/halfmoonlabs/vinyasa/pkg/safety"
)

// maxPromptPoses caps how many enriched poses go into the model prompt.
const maxPromptPoses = 20

// Sequencer fills planned sections with concrete poses.
type Sequencer struct {
	llm    llm.Client
	logger *slog.Logger
}

// NewSequencer builds a Sequencer. A nil client means rule-based only.
func NewSequencer(client llm.Client, log *slog.Logger) *Sequencer {
	return &Sequencer{llm: client, logger: log}
}

// Sequence arranges poses from the enriched candidates into the planned
// structure. Model output that fails to parse or carries no sections
// falls back to the rule-based arrangement.
func (s *Sequencer) Sequence(ctx context.Context, structure Structure, state engine.BodyState, enriched []rag.EnrichedPose) Sequence {
	if s.llm == nil {
		return s.ruleBased(structure, state, enriched)
	}

	structureJSON, _ := json.Marshal(structure)
	promptPoses := enriched
	if len(promptPoses) > maxPromptPoses {
		promptPoses = promptPoses[:maxPromptPoses]
	}
	posesJSON, _ := json.Marshal(promptPoses)

	prompt := fmt.Sprintf(sequencerPromptTemplate,
		structureJSON,
		posesJSON,
		state.Phase,
		state.Intensity,
		state.DurationMinutes,
	)

	raw, err := s.llm.Generate(ctx, llm.Request{
		System:      sequencerSystemPrompt,
		Prompt:      prompt,
		Temperature: agentTemperature,
	})
	if err != nil {
		s.logger.Warn("sequencer model call failed, using rule-based sequence", "error", err)
		return s.ruleBased(structure, state, enriched)
	}

	var out Sequence
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &out); err != nil || len(out.Sections) == 0 {
		s.logger.Warn("sequencer output unusable, using rule-based sequence", "error", err)
		return s.ruleBased(structure, state, enriched)
	}
	return out
}

func (s *Sequencer) ruleBased(structure Structure, state engine.BodyState, enriched []rag.EnrichedPose) Sequence {
	suitable := filterForPhase(enriched, state.Phase, state.Intensity)

	sections := make([]SequenceSection, 0, len(structure.Sections))
	for _, section := range structure.Sections {
		var poses []PoseEntry
		switch section.Section {
		case "breathing":
			poses = []PoseEntry{{
				Pose:     "breath_awareness",
				Duration: fmt.Sprintf("%d min", section.Minutes),
				Notes:    "Focus on natural breathing, then deepen gradually",
			}}
		case "gentle_flow", "moderate_flow", "dynamic_flow":
			poses = selectMainPoses(suitable, section.Minutes)
		case "cool_down":
			poses = selectCoolDownPoses(suitable, section.Minutes)
		}
		sections = append(sections, SequenceSection{Section: section.Section, Poses: poses})
	}

	total := structure.TotalMinutes
	if total == 0 {
		total = state.DurationMinutes
	}
	return Sequence{Sections: sections, TotalEstimatedMinutes: total}
}

// filterForPhase narrows candidates by cycle phase and intensity. An
// empty result falls back to the first ten candidates so every section
// can still be filled.
func filterForPhase(candidates []rag.EnrichedPose, phase cycle.Phase, intensity safety.Intensity) []rag.EnrichedPose {
	var filtered []rag.EnrichedPose
	for _, p := range candidates {
		switch phase {
		case cycle.Menstrual:
			if p.HasAnyType([]pose.Type{pose.Restorative, pose.GentleStretch, pose.Breathing, pose.ForwardFold}) &&
				(intensity == safety.Low || p.Difficulty == pose.Beginner) {
				filtered = append(filtered, p)
			}
		case cycle.Ovulation:
			if intensity == safety.High || p.Difficulty != pose.Advanced {
				filtered = append(filtered, p)
			}
		default:
			if p.Difficulty != pose.Advanced {
				filtered = append(filtered, p)
			}
		}
	}
	if len(filtered) == 0 {
		if len(candidates) > 10 {
			return candidates[:10]
		}
		return candidates
	}
	return filtered
}

// selectMainPoses picks a warm-up stretch first, then fills the section
// time budget with up to five further poses.
func selectMainPoses(candidates []rag.EnrichedPose, minutes int) []PoseEntry {
	var selected []PoseEntry
	used := map[string]bool{}
	timeUsed := 0

	for _, p := range candidates {
		if p.HasType(pose.GentleStretch) {
			selected = append(selected, PoseEntry{Pose: p.Name, Reps: 6, Notes: "Move with breath"})
			used[p.Name] = true
			timeUsed += 2
			break
		}
	}

	count := 0
	for _, p := range candidates {
		if used[p.Name] || count >= 5 {
			continue
		}
		if timeUsed >= minutes-2 {
			break
		}
		duration := p.DurationHint
		if duration == "" {
			duration = "1 min"
		}
		selected = append(selected, PoseEntry{
			Pose:     p.Name,
			Duration: duration,
			Notes:    fmt.Sprintf("Hold or flow through %s", p.Name),
		})
		used[p.Name] = true
		timeUsed++
		count++
	}
	return selected
}

// selectCoolDownPoses takes up to three restorative candidates, with
// child's pose as the last-resort ending.
func selectCoolDownPoses(candidates []rag.EnrichedPose, minutes int) []PoseEntry {
	coolTypes := []pose.Type{pose.Restorative, pose.GentleStretch, pose.ForwardFold}

	var selected []PoseEntry
	for _, p := range candidates {
		if len(selected) >= 3 {
			break
		}
		if !p.HasAnyType(coolTypes) {
			continue
		}
		duration := p.DurationHint
		if duration == "" {
			duration = "1 min"
		}
		selected = append(selected, PoseEntry{Pose: p.Name, Duration: duration, Notes: "Rest and release"})
	}

	if len(selected) == 0 {
		return []PoseEntry{{
			Pose:     "child_pose",
			Duration: fmt.Sprintf("%d min", minutes),
			Notes:    "Final resting pose",
		}}
	}
	return selected
}
