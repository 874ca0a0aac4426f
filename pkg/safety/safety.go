// Package safety holds the deterministic pose restriction rules. Everything
// here is rule-based; no model output ever widens what these rules allow.
package safety

import (
	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/pose"
)

// Intensity grades how demanding a session should be.
type Intensity string

const (
	Low      Intensity = "low"
	Moderate Intensity = "moderate"
	High     Intensity = "high"
)

// gentleSet is all that survives when pain is high.
var gentleSet = map[pose.Type]bool{
	pose.Restorative:   true,
	pose.GentleStretch: true,
	pose.Breathing:     true,
	pose.Yin:           true,
	pose.Somatic:       true,
	pose.Mobility:      true,
}

// strenuous poses stripped on moderate pain or low energy.
var strenuousSet = map[pose.Type]bool{
	pose.Inversion:  true,
	pose.ArmBalance: true,
	pose.StrongCore: true,
}

// AllowedTypes returns the pose types permitted for the given phase, energy
// and pain, in the canonical pose.AllTypes order.
func AllowedTypes(phase cycle.Phase, energy, pain int) []pose.Type {
	allowed := map[pose.Type]bool{}

	switch phase {
	case cycle.Menstrual:
		add(allowed, pose.Restorative, pose.GentleStretch, pose.Breathing,
			pose.ForwardFold, pose.Seated, pose.Yin, pose.Somatic, pose.Mobility)
		if energy <= 2 {
			add(allowed, pose.HipOpener)
		}
	case cycle.Follicular:
		add(allowed, pose.Standing, pose.Balance, pose.GentleStretch, pose.Breathing,
			pose.HipOpener, pose.ForwardFold, pose.Twist, pose.Seated, pose.SideBend,
			pose.Yin, pose.Somatic, pose.Mobility)
		if energy >= 3 {
			add(allowed, pose.Backbend, pose.ArmBalance)
		}
	case cycle.Ovulation:
		add(allowed, pose.Standing, pose.Balance, pose.Backbend, pose.ForwardFold,
			pose.Twist, pose.ArmBalance, pose.StrongCore, pose.HipOpener,
			pose.Breathing, pose.GentleStretch, pose.Seated, pose.SideBend,
			pose.Yin, pose.Somatic, pose.Mobility)
		if energy >= 4 {
			add(allowed, pose.Inversion)
		}
	case cycle.Luteal:
		add(allowed, pose.GentleStretch, pose.Breathing, pose.ForwardFold,
			pose.HipOpener, pose.Twist, pose.Restorative, pose.Seated,
			pose.Yin, pose.Somatic, pose.Mobility)
		if energy >= 3 {
			add(allowed, pose.Standing, pose.Balance, pose.SideBend)
		}
	}

	// Pain overrides phase rules.
	switch {
	case pain >= 4:
		for t := range allowed {
			if !gentleSet[t] {
				delete(allowed, t)
			}
		}
	case pain >= 3:
		for t := range allowed {
			if strenuousSet[t] || t == pose.Backbend {
				delete(allowed, t)
			}
		}
	}

	// Energy overrides come last.
	switch {
	case energy <= 1:
		allowed = map[pose.Type]bool{pose.Restorative: true, pose.Breathing: true}
	case energy <= 2:
		for t := range allowed {
			if strenuousSet[t] {
				delete(allowed, t)
			}
		}
	}

	var out []pose.Type
	for _, t := range pose.AllTypes {
		if allowed[t] {
			out = append(out, t)
		}
	}
	return out
}

// ForbiddenTypes returns the complement of AllowedTypes over the full
// type list, in canonical order.
func ForbiddenTypes(phase cycle.Phase, energy, pain int) []pose.Type {
	allowed := map[pose.Type]bool{}
	for _, t := range AllowedTypes(phase, energy, pain) {
		allowed[t] = true
	}

	var out []pose.Type
	for _, t := range pose.AllTypes {
		if !allowed[t] {
			out = append(out, t)
		}
	}
	return out
}

// IntensityFor grades the session. Pain trumps energy, energy trumps phase.
func IntensityFor(phase cycle.Phase, energy, pain int) Intensity {
	if pain >= 3 {
		return Low
	}
	if energy <= 2 {
		return Low
	}

	switch phase {
	case cycle.Menstrual:
		return Low
	case cycle.Ovulation:
		if energy >= 4 {
			return High
		}
	case cycle.Follicular:
		if energy >= 3 {
			return Moderate
		}
	case cycle.Luteal:
		if energy <= 2 {
			return Low
		}
		return Moderate
	}

	return Moderate
}

func add(set map[pose.Type]bool, types ...pose.Type) {
	for _, t := range types {
		set[t] = true
	}
}
