// Package engine derives the body state that drives flow generation.
// The derivation is fully deterministic: cycle phase plus the safety
// rules decide what a session may contain before any agent runs.
package engine

import (
	"time"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/pose"
	"github.com/halfmoonlabs/vinyasa/pkg/safety"
)

// Defaults applied when the caller leaves a field zero.
const (
	DefaultEnergy          = 3
	DefaultPain            = 1
	DefaultDurationMinutes = 20
)

// Input carries everything a user reports about their body today.
type Input struct {
	// LastPeriodDate is the first day of the most recent period, YYYY-MM-DD.
	LastPeriodDate string

	// CycleLength in days. Zero means the 28-day default.
	CycleLength int

	// Energy on a 1-5 scale. Zero means unset.
	Energy int

	// Pain on a 1-5 scale. Zero means unset.
	Pain int

	// DurationMinutes is the requested session length.
	DurationMinutes int

	// TrainingFocus optionally narrows the practice, either by pose type
	// name (e.g. "backbend") or by a focus keyword (e.g. "strength").
	TrainingFocus []string
}

// BodyState is the derived state handed to the flow agents and returned
// in API responses.
type BodyState struct {
	Phase           cycle.Phase      `json:"cycle_phase"`
	DayInCycle      int              `json:"day_in_cycle"`
	Intensity       safety.Intensity `json:"intensity"`
	AllowedTypes    []pose.Type      `json:"allowed_pose_types"`
	ForbiddenTypes  []pose.Type      `json:"forbidden_pose_types"`
	Energy          int              `json:"energy_level"`
	Pain            int              `json:"pain_level"`
	DurationMinutes int              `json:"duration_minutes"`
	TrainingFocus   []pose.Type      `json:"training_focus"`

	LastPeriodDate string `json:"-"`
	CycleLength    int    `json:"-"`
}

// Derive computes the body state for the given input as of now.
// A training focus narrows the allowed types, but never to nothing:
// when the focus and the safety rules share no types the focus is
// dropped so a flow can still be generated.
func Derive(in Input, now time.Time) (BodyState, error) {
	energy := in.Energy
	if energy == 0 {
		energy = DefaultEnergy
	}
	pain := in.Pain
	if pain == 0 {
		pain = DefaultPain
	}
	duration := in.DurationMinutes
	if duration == 0 {
		duration = DefaultDurationMinutes
	}
	length := in.CycleLength
	if length <= 0 {
		length = cycle.DefaultCycleLength
	}

	phase, day, err := cycle.Locate(in.LastPeriodDate, length, now)
	if err != nil {
		return BodyState{}, err
	}

	state := BodyState{
		Phase:           phase,
		DayInCycle:      day,
		Intensity:       safety.IntensityFor(phase, energy, pain),
		AllowedTypes:    safety.AllowedTypes(phase, energy, pain),
		ForbiddenTypes:  safety.ForbiddenTypes(phase, energy, pain),
		Energy:          energy,
		Pain:            pain,
		DurationMinutes: duration,
		TrainingFocus:   FocusTypes(in.TrainingFocus),
		LastPeriodDate:  in.LastPeriodDate,
		CycleLength:     length,
	}

	if len(state.TrainingFocus) > 0 {
		if focused := intersect(state.AllowedTypes, state.TrainingFocus); len(focused) > 0 {
			state.AllowedTypes = focused
		}
	}

	return state, nil
}

func intersect(allowed, focus []pose.Type) []pose.Type {
	want := map[pose.Type]bool{}
	for _, t := range focus {
		want[t] = true
	}

	var out []pose.Type
	for _, t := range allowed {
		if want[t] {
			out = append(out, t)
		}
	}
	return out
}
