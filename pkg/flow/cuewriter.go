package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/engine"
	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
	"github.com/halfmoonlabs/vinyasa/pkg/llm"
)

// phaseTones shape the voice of the written cues.
var phaseTones = map[cycle.Phase]string{
	cycle.Menstrual:  "gentle, nurturing, rest-focused",
	cycle.Follicular: "energizing, building",
	cycle.Ovulation:  "confident, empowering",
	cycle.Luteal:     "supportive, grounding",
}

// phaseEncouragements are cycled through in pose order so generated
// cues stay deterministic for a given sequence.
var phaseEncouragements = map[cycle.Phase][]string{
	cycle.Menstrual: {
		"This is a beautiful resting pose. Allow yourself to fully relax here.",
		"Honor your body's need for rest today.",
		"There's no need to push. Simply be present.",
	},
	cycle.Follicular: {
		"Feel your strength building.",
		"Notice the energy flowing through your body.",
		"You're building toward your peak.",
	},
	cycle.Ovulation: {
		"Feel your power and grace.",
		"You're at your peak - embrace this strength.",
		"Move with confidence and ease.",
	},
	cycle.Luteal: {
		"Ground yourself here. You are supported.",
		"Gentle movement is medicine.",
		"Be kind to yourself in this pose.",
	},
}

// CueWriter turns a sequence into per-pose teaching cues, drawing
// alignment and breathing detail from the knowledge base.
type CueWriter struct {
	llm    llm.Client
	base   *knowledge.Base
	logger *slog.Logger
}

// NewCueWriter builds a CueWriter. A nil client means rule-based only.
func NewCueWriter(client llm.Client, base *knowledge.Base, log *slog.Logger) *CueWriter {
	if base == nil {
		base = knowledge.New(knowledge.Config{})
	}
	return &CueWriter{llm: client, base: base, logger: log}
}

// Cues writes cues for every pose in the sequence. Model output that
// fails to parse or carries no cues falls back to knowledge-based cues.
func (w *CueWriter) Cues(ctx context.Context, sequence Sequence, state engine.BodyState) Cues {
	if w.llm == nil {
		return w.ruleBased(sequence, state)
	}

	poseKnowledge := map[string]knowledge.Entry{}
	for _, section := range sequence.Sections {
		for _, entry := range section.Poses {
			if k, ok := w.base.ByPose(entry.Pose); ok {
				poseKnowledge[entry.Pose] = k
			}
		}
	}

	sequenceJSON, _ := json.Marshal(sequence)
	knowledgeJSON, _ := json.Marshal(poseKnowledge)

	prompt := fmt.Sprintf(cueWriterPromptTemplate,
		sequenceJSON,
		knowledgeJSON,
		state.Phase,
		state.Energy,
	)

	raw, err := w.llm.Generate(ctx, llm.Request{
		System:      cueWriterSystemPrompt,
		Prompt:      prompt,
		Temperature: agentTemperature,
	})
	if err != nil {
		w.logger.Warn("cue writer model call failed, using knowledge-based cues", "error", err)
		return w.ruleBased(sequence, state)
	}

	var out Cues
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &out); err != nil || len(out.Cues) == 0 {
		w.logger.Warn("cue writer output unusable, using knowledge-based cues", "error", err)
		return w.ruleBased(sequence, state)
	}
	return out
}

func (w *CueWriter) ruleBased(sequence Sequence, state engine.BodyState) Cues {
	tones := phaseEncouragements[state.Phase]
	if len(tones) == 0 {
		tones = phaseEncouragements[cycle.Luteal]
	}

	var cues []Cue
	for _, section := range sequence.Sections {
		for _, entry := range section.Poses {
			cue := Cue{
				Pose:          entry.Pose,
				Section:       section.Section,
				Breathing:     "Breathe deeply and steadily",
				Encouragement: tones[len(cues)%len(tones)],
			}
			if k, ok := w.base.ByPose(entry.Pose); ok {
				cue.AlignmentCues = k.Alignment
				if k.Breathing != "" {
					cue.Breathing = k.Breathing
				}
				cue.Modifications = k.Modifications
			} else {
				cue.AlignmentCues = []string{"Find a comfortable position", "Listen to your body"}
				cue.Encouragement = fmt.Sprintf("Take your time in %s. Honor where you are today.", entry.Pose)
			}
			cues = append(cues, cue)
		}
	}
	return Cues{Cues: cues}
}
