package engine

import (
	"strings"

	"github.com/halfmoonlabs/vinyasa/pkg/pose"
)

// focusableTypes are the pose types a user can target directly.
var focusableTypes = map[string]pose.Type{
	"seated":       pose.Seated,
	"forward_fold": pose.ForwardFold,
	"backbend":     pose.Backbend,
	"twist":        pose.Twist,
	"side_bend":    pose.SideBend,
	"balance":      pose.Balance,
	"inversion":    pose.Inversion,
}

// focusKeywords expand friendly goals into pose-type sets.
var focusKeywords = map[string][]pose.Type{
	"relaxation":  {pose.Restorative, pose.Yin, pose.Breathing},
	"flexibility": {pose.ForwardFold, pose.HipOpener, pose.GentleStretch},
	"strength":    {pose.Standing, pose.StrongCore, pose.ArmBalance},
	"core":        {pose.StrongCore},
}

// FocusTypes resolves raw focus strings into pose types. Direct type
// names and focus keywords both work; unknown strings are dropped.
// The result is de-duplicated and in canonical type order.
func FocusTypes(raw []string) []pose.Type {
	if len(raw) == 0 {
		return nil
	}

	want := map[pose.Type]bool{}
	for _, s := range raw {
		key := strings.ToLower(strings.TrimSpace(s))
		if t, ok := focusableTypes[key]; ok {
			want[t] = true
			continue
		}
		if set, ok := focusKeywords[key]; ok {
			for _, t := range set {
				want[t] = true
			}
		}
	}

	var out []pose.Type
	for _, t := range pose.AllTypes {
		if want[t] {
			out = append(out, t)
		}
	}
	return out
}
