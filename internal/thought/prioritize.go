package thought

import (
	"sort"

	"github.com/talgya/mini-world/internal/agents"
)

// minFloorPriority is the floor below which no candidate qualifies as the
// chosen thought (§4.6 step 3: "or none, if no candidate meets a floor
// priority").
const minFloorPriority = 0.05

// Prioritize computes Priority for each candidate (urgency times a
// personality-weighted multiplier, with stress downweighting complex
// thoughts) and sorts descending (§4.6 step 2).
func Prioritize(candidates []agents.Thought, h *agents.Human) []agents.Thought {
	stress := h.Emotion.Stress()
	for i := range candidates {
		c := &candidates[i]
		mult := sourceMultiplier(c.Source, &h.Personality)
		c.Priority = c.Urgency * mult
		if stress > 50 && (c.Complexity == agents.ComplexityComplex || c.Complexity == agents.ComplexityAbstract) {
			c.Priority *= 0.5
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority > candidates[j].Priority
	})
	return candidates
}

// sourceMultiplier implements the per-source personality weighting
// (§4.6: "explore×openness, social×extraversion, work×conscientiousness,
// need×1.5 base").
func sourceMultiplier(s agents.ThoughtSource, p *agents.Personality) float64 {
	switch s {
	case agents.ThoughtExplore:
		return p.Openness
	case agents.ThoughtSocial:
		return p.Extraversion
	case agents.ThoughtWork:
		return p.Conscientiousness
	case agents.ThoughtNeed:
		return 1.5
	default:
		return 1.0
	}
}

// Top returns the single highest-priority candidate, or false if none
// clears the floor priority.
func Top(candidates []agents.Thought) (agents.Thought, bool) {
	if len(candidates) == 0 || candidates[0].Priority < minFloorPriority {
		return agents.Thought{}, false
	}
	return candidates[0], true
}
