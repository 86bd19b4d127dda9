package thought

import (
	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/weather"
)

// lowLightThreshold below which "return home at night" thoughts trigger.
const lowLightThreshold = 0.4

// Generate enumerates candidate thoughts for h given ctx (§4.6 step 1).
func Generate(ctx Context, h *agents.Human) []agents.Thought {
	var out []agents.Thought

	for _, u := range h.Needs.Urgent() {
		out = append(out, agents.Thought{
			Source:     agents.ThoughtNeed,
			Subtype:    u.Kind.String(),
			Urgency:    u.Urgency,
			Complexity: agents.ComplexityBasic,
		})
	}

	if ctx.Weather.Current == weather.Storm || ctx.Weather.Current == weather.Rain {
		out = append(out, agents.Thought{
			Source:     agents.ThoughtEnvironment,
			Subtype:    "shelter",
			Urgency:    0.6,
			Complexity: agents.ComplexitySimple,
			TargetPos:  ctx.ShelterPos,
		})
	}

	if ctx.Time.LightLevel() < lowLightThreshold && ctx.FarFromHome {
		home := h.HomeLocation
		out = append(out, agents.Thought{
			Source:     agents.ThoughtEnvironment,
			Subtype:    "return_home",
			Urgency:    0.5,
			Complexity: agents.ComplexitySimple,
			TargetPos:  &home,
		})
	}

	if h.Needs.Social < 50 {
		for _, n := range ctx.Nearby {
			if !n.IsHuman {
				continue
			}
			id := n.ID
			out = append(out, agents.Thought{
				Source:     agents.ThoughtSocial,
				Subtype:    "chat",
				Urgency:    clampUrgency((100 - h.Needs.Social) / 100),
				Complexity: agents.ComplexityNormal,
				Target:     &id,
			})
			break
		}
	}

	if h.Needs.Energy > 40 {
		for _, n := range ctx.Nearby {
			if n.Kind != agents.KindResource || n.Resource == nil {
				continue
			}
			id := n.ID
			out = append(out, agents.Thought{
				Source:     agents.ThoughtWork,
				Subtype:    "gather",
				Urgency:    0.4,
				Complexity: agents.ComplexitySimple,
				Target:     &id,
			})
			break
		}
	}

	if h.Personality.Openness > 0.7 {
		out = append(out, agents.Thought{
			Source:     agents.ThoughtExplore,
			Subtype:    "wander",
			Urgency:    0.15,
			Complexity: agents.ComplexityNormal,
		})
	}
	if h.Personality.Conscientiousness > 0.7 {
		out = append(out, agents.Thought{
			Source:     agents.ThoughtWork,
			Subtype:    "plan",
			Urgency:    0.2,
			Complexity: agents.ComplexityComplex,
		})
	}

	if h.Needs.Energy < 30 {
		out = append(out, agents.Thought{
			Source:     agents.ThoughtRest,
			Subtype:    "sleep",
			Urgency:    clampUrgency((100 - h.Needs.Energy) / 100),
			Complexity: agents.ComplexityBasic,
		})
	}

	return out
}

func clampUrgency(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
