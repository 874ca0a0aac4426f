// Package pose holds the built-in pose catalog and its filtering helpers.
package pose

// Type categorizes a pose by the kind of work it asks of the body.
// A pose usually carries more than one type.
type Type string

const (
	Restorative   Type = "restorative"
	GentleStretch Type = "gentle_stretch"
	Standing      Type = "standing"
	Balance       Type = "balance"
	Backbend      Type = "backbend"
	ForwardFold   Type = "forward_fold"
	Twist         Type = "twist"
	Inversion     Type = "inversion"
	ArmBalance    Type = "arm_balance"
	StrongCore    Type = "strong_core"
	HipOpener     Type = "hip_opener"
	Breathing     Type = "breathing"
	Seated        Type = "seated"
	SideBend      Type = "side_bend"
	Yin           Type = "yin"
	Somatic       Type = "somatic"
	Mobility      Type = "mobility"
)

// AllTypes lists every pose type in canonical order. Safety rules and
// serialization both rely on this ordering being stable.
var AllTypes = []Type{
	Restorative, GentleStretch, Standing, Balance,
	Backbend, ForwardFold, Twist, Inversion,
	ArmBalance, StrongCore, HipOpener, Breathing,
	Seated, SideBend, Yin, Somatic, Mobility,
}

// Difficulty levels, ordered.
const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Advanced     = "advanced"
)

var difficultyRank = map[string]int{
	Beginner:     1,
	Intermediate: 2,
	Advanced:     3,
}

// Pose is one entry in the catalog.
type Pose struct {
	// Name is the catalog id, e.g. "child_pose".
	Name string `json:"name"`

	// Sanskrit holds the traditional name where one exists.
	Sanskrit string `json:"sanskrit"`

	// Types lists every category the pose belongs to.
	Types []Type `json:"types"`

	// Difficulty is beginner, intermediate or advanced.
	Difficulty string `json:"difficulty"`

	// DurationHint suggests how long to hold or repeat,
	// e.g. "1-3 min" or "6-10 reps".
	DurationHint string `json:"duration_suggestion"`
}

// HasAnyType reports whether the pose carries at least one of the given types.
func (p Pose) HasAnyType(types []Type) bool {
	for _, want := range types {
		for _, have := range p.Types {
			if have == want {
				return true
			}
		}
	}
	return false
}

// HasType reports whether the pose carries the given type.
func (p Pose) HasType(t Type) bool {
	for _, have := range p.Types {
		if have == t {
			return true
		}
	}
	return false
}

// FilterByTypes returns the poses carrying at least one of the allowed types,
// in catalog order.
func FilterByTypes(poses []Pose, allowed []Type) []Pose {
	var out []Pose
	for _, p := range poses {
		if p.HasAnyType(allowed) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByDifficulty returns the poses at or below the given difficulty.
// Unknown difficulties rank as intermediate.
func FilterByDifficulty(poses []Pose, maxDifficulty string) []Pose {
	maxRank, ok := difficultyRank[maxDifficulty]
	if !ok {
		maxRank = difficultyRank[Intermediate]
	}

	var out []Pose
	for _, p := range poses {
		rank, ok := difficultyRank[p.Difficulty]
		if !ok {
			rank = difficultyRank[Intermediate]
		}
		if rank <= maxRank {
			out = append(out, p)
		}
	}
	return out
}

// ByName looks a pose up by catalog id.
func ByName(poses []Pose, name string) (Pose, bool) {
	for _, p := range poses {
		if p.Name == name {
			return p, true
		}
	}
	return Pose{}, false
}
