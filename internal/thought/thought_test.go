package thought

import (
	"testing"

	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/clock"
	"github.com/talgya/mini-world/internal/weather"
	"github.com/talgya/mini-world/internal/world"
)

// TestHungerThoughtGeneratesGatherCandidate is the S4 scenario precursor:
// a human with hunger=10 (need value low => urgent) and a berry resource
// nearby should surface both a need thought and a work/gather thought.
func TestHungerThoughtGeneratesGatherCandidate(t *testing.T) {
	h := agents.NewHuman(1, world.Vec2{})
	h.Needs.Hunger = 10
	h.Needs.Energy = 80

	resID := agents.ID(2)
	ctx := Context{
		Time:    *clock.NewState(),
		Weather: weather.State{Current: weather.Clear},
		Nearby: []NearbyEntity{
			{ID: resID, Kind: agents.KindResource, Resource: &world.ResourceRef{Kind: world.ResourceBerry}},
		},
	}

	top, ok := Decide(ctx, h)
	if !ok {
		t.Fatalf("expected a thought to be selected")
	}
	if top.Source != agents.ThoughtNeed {
		t.Fatalf("expected the urgent hunger need to dominate, got %v (%v)", top.Source, top.Subtype)
	}
}

func TestStormGeneratesShelterThought(t *testing.T) {
	h := agents.NewHuman(1, world.Vec2{})
	ctx := Context{
		Time:    *clock.NewState(),
		Weather: weather.State{Current: weather.Storm},
	}
	candidates := Generate(ctx, h)
	found := false
	for _, c := range candidates {
		if c.Source == agents.ThoughtEnvironment && c.Subtype == "shelter" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a shelter thought during a storm")
	}
}

func TestHighOpennessInjectsExploreThought(t *testing.T) {
	h := agents.NewHuman(1, world.Vec2{})
	h.Personality.Openness = 0.9
	ctx := Context{Time: *clock.NewState(), Weather: weather.State{Current: weather.Clear}}
	candidates := Generate(ctx, h)
	found := false
	for _, c := range candidates {
		if c.Source == agents.ThoughtExplore {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an explore thought for high-openness personality")
	}
}

func TestStressDownweightsComplexThoughts(t *testing.T) {
	h := agents.NewHuman(1, world.Vec2{})
	h.Emotion[agents.EmotionAnger] = 0.6
	h.Emotion[agents.EmotionFear] = 0.6 // stress = (0.6+0.6)*50 = 60 > 50
	// Work thoughts are weighted by conscientiousness; a fresh human has 0,
	// which would zero both priorities.
	h.Personality.Conscientiousness = 0.8

	complex := []agents.Thought{{Source: agents.ThoughtWork, Urgency: 0.5, Complexity: agents.ComplexityComplex}}
	simple := []agents.Thought{{Source: agents.ThoughtWork, Urgency: 0.5, Complexity: agents.ComplexityBasic}}

	pComplex := Prioritize(complex, h)[0].Priority
	pSimple := Prioritize(simple, h)[0].Priority
	if pComplex >= pSimple {
		t.Fatalf("expected complex thought to be downweighted under stress: complex=%v simple=%v", pComplex, pSimple)
	}
}

func TestNoCandidatesReturnsFalse(t *testing.T) {
	_, ok := Top(nil)
	if ok {
		t.Fatalf("expected no candidates to yield ok=false")
	}
}
