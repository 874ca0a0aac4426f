// Package flow generates complete practice sessions: a planned
// structure, a concrete pose sequence, and per-pose cues. Each agent
// asks the language model first and falls back to deterministic rules
// when no model is configured or its output cannot be used, so a plan
// is always produced.
package flow

import "github.com/halfmoonlabs/vinyasa/pkg/engine"

// Request carries the user's ask for a practice session. It is the
// request body of the flow endpoint and the payload of PlanFlow.
type Request struct {
	// LastPeriodDate is the first day of the most recent period,
	// YYYY-MM-DD. Required.
	LastPeriodDate string `json:"last_period_date"`

	// CycleLength in days. Zero means the 28-day default.
	CycleLength int `json:"cycle_length,omitempty"`

	// Energy on a 1-5 scale. Zero means unset.
	Energy int `json:"energy,omitempty"`

	// Pain on a 1-5 scale. Zero means unset.
	Pain int `json:"pain,omitempty"`

	// DurationMinutes is the requested session length.
	DurationMinutes int `json:"duration_minutes,omitempty"`

	// UserID owns the stored session. Empty means anonymous.
	UserID string `json:"user_id,omitempty"`

	// TrainingFocus optionally narrows the practice by pose type name
	// or focus keyword.
	TrainingFocus []string `json:"training_focus,omitempty"`
}

// Section is one block of the planned session structure.
type Section struct {
	Section     string `json:"section"`
	Minutes     int    `json:"minutes"`
	Description string `json:"description"`
}

// Structure is the planned shape of a session before poses are chosen.
type Structure struct {
	Sections     []Section `json:"structure"`
	TotalMinutes int       `json:"total_minutes"`
	Rationale    string    `json:"rationale"`
}

// PoseEntry is one pose placed in a sequence section. Duration and Reps
// are alternatives: held poses carry a duration, flowing ones a rep count.
type PoseEntry struct {
	Pose     string `json:"pose"`
	Duration string `json:"duration,omitempty"`
	Reps     int    `json:"reps,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// SequenceSection binds concrete poses to one structure section.
type SequenceSection struct {
	Section string      `json:"section"`
	Poses   []PoseEntry `json:"poses"`
}

// Sequence is the ordered pose program for a whole session.
type Sequence struct {
	Sections              []SequenceSection `json:"sequence"`
	TotalEstimatedMinutes int               `json:"total_estimated_minutes"`
}

// Cue is the teaching detail for one pose in the sequence.
type Cue struct {
	Pose          string   `json:"pose"`
	Section       string   `json:"section"`
	AlignmentCues []string `json:"alignment_cues"`
	Breathing     string   `json:"breathing"`
	Modifications string   `json:"modifications"`
	Encouragement string   `json:"encouragement"`
}

// Cues collects the cues for every pose in sequence order.
type Cues struct {
	Cues []Cue `json:"cues"`
}

// Plan is a fully generated session.
type Plan struct {
	BodyState engine.BodyState `json:"body_state"`
	Structure Structure        `json:"structure"`
	Sequence  Sequence         `json:"sequence"`
	Cues      Cues             `json:"cues"`

	// SessionID identifies the stored session.
	SessionID string `json:"session_id,omitempty"`
}
