package agents

import (
	"encoding/json"

	"github.com/talgya/mini-world/internal/world"
)

// ThoughtSource is the closed set of origins a candidate thought can come
// from (§4.6).
type ThoughtSource uint8

const (
	ThoughtNeed ThoughtSource = iota
	ThoughtSocial
	ThoughtEnvironment
	ThoughtExplore
	ThoughtWork
	ThoughtRest
	ThoughtEmotional
	ThoughtMemory
	ThoughtRandom
)

func (s ThoughtSource) String() string {
	switch s {
	case ThoughtNeed:
		return "need"
	case ThoughtSocial:
		return "social"
	case ThoughtEnvironment:
		return "environment"
	case ThoughtExplore:
		return "explore"
	case ThoughtWork:
		return "work"
	case ThoughtRest:
		return "rest"
	case ThoughtEmotional:
		return "emotional"
	case ThoughtMemory:
		return "memory"
	case ThoughtRandom:
		return "random"
	default:
		return "need"
	}
}

// Complexity gates which thoughts get downweighted under stress (§4.6).
type Complexity uint8

const (
	ComplexityBasic Complexity = iota
	ComplexitySimple
	ComplexityNormal
	ComplexityComplex
	ComplexityAbstract
)

// Thought is a prioritized candidate describing what an agent wants to do.
type Thought struct {
	Source     ThoughtSource
	Subtype    string
	Urgency    float64
	Complexity Complexity
	Target     *ID
	// TargetPos is a raw world-space destination for thoughts whose
	// subject isn't another entity (return-home, seek-shelter).
	TargetPos *world.Vec2
	Content   string

	// Priority is computed by the thought system (urgency * personality
	// weight, with stress downweighting); thoughts are ranked on it.
	Priority float64
}

// MaxRecentThoughts bounds the per-agent thought history (§4.6: "up to 10").
const MaxRecentThoughts = 10

// ThoughtHistory is a small FIFO of recent thoughts, most useful for
// debugging/inspection and for the "avoid repeating the same thought"
// heuristics a thought generator may apply.
type ThoughtHistory struct {
	entries []Thought
}

func (h *ThoughtHistory) Push(t Thought) {
	if len(h.entries) >= MaxRecentThoughts {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, t)
}

func (h *ThoughtHistory) Recent() []Thought {
	return h.entries
}

// MarshalJSON/UnmarshalJSON expose entries for persistence snapshots even
// though the field itself stays unexported.
func (h ThoughtHistory) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.entries)
}

func (h *ThoughtHistory) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &h.entries)
}
