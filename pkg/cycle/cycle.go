// Package cycle locates a point in the menstrual cycle from the last
// period date and derives the hormonal phase used to shape a practice.
package cycle

import (
	"fmt"
	"time"
)

// Phase identifies one of the four hormonal phases of the cycle.
type Phase string

const (
	Menstrual  Phase = "menstrual"
	Follicular Phase = "follicular"
	Ovulation  Phase = "ovulation"
	Luteal     Phase = "luteal"
)

// DateLayout is the wire format for period dates.
const DateLayout = "2006-01-02"

// Locate computes the phase and day-in-cycle for the given last period
// date (YYYY-MM-DD) as of now. The day is normalized into the current
// cycle by cycle length, so stale period dates still resolve.
func Locate(lastPeriodDate string, cycleLength int, now time.Time) (Phase, int, error) {
	if lastPeriodDate == "" {
		return "", 0, fmt.Errorf("last period date is required")
	}
	if cycleLength <= 0 {
		cycleLength = DefaultCycleLength
	}

	last, err := time.Parse(DateLayout, lastPeriodDate)
	if err != nil {
		return "", 0, fmt.Errorf("parsing last period date: %w", err)
	}

	days := int(now.Sub(last).Hours() / 24)
	day := days % cycleLength
	if day < 0 {
		day += cycleLength
	}

	return phaseForDay(day), day, nil
}

// DefaultCycleLength is assumed when the caller provides none.
const DefaultCycleLength = 28

func phaseForDay(day int) Phase {
	switch {
	case day <= 5:
		return Menstrual
	case day <= 13:
		return Follicular
	case day <= 16:
		return Ovulation
	default:
		return Luteal
	}
}

// Guidance describes how a phase usually feels and what the practice
// should lean toward. Used verbatim in agent prompts.
type Guidance struct {
	Intensity string
	Energy    string
	Focus     string
}

var phaseGuidance = map[Phase]Guidance{
	Menstrual:  {Intensity: "low", Energy: "low", Focus: "restorative"},
	Follicular: {Intensity: "moderate to high", Energy: "increasing", Focus: "strength building"},
	Ovulation:  {Intensity: "high", Energy: "peak", Focus: "peak performance"},
	Luteal:     {Intensity: "moderate to low", Energy: "decreasing", Focus: "gentle movement"},
}

// GuidanceFor returns the practice guidance for a phase. Unknown phases
// get the menstrual (most conservative) guidance.
func GuidanceFor(p Phase) Guidance {
	if g, ok := phaseGuidance[p]; ok {
		return g
	}
	return phaseGuidance[Menstrual]
}

// Valid reports whether p is one of the four known phases.
func (p Phase) Valid() bool {
	switch p {
	case Menstrual, Follicular, Ovulation, Luteal:
		return true
	}
	return false
}
