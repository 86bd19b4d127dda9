package thought

import "github.com/talgya/mini-world/internal/agents"

// Decide runs the full thought cycle for h: generate candidates from ctx,
// prioritize them, select the top one, and record it in h's history
// (§4.6). Returns false if no candidate met the floor priority, in which
// case h's current thought and action queue are left untouched.
func Decide(ctx Context, h *agents.Human) (agents.Thought, bool) {
	candidates := Generate(ctx, h)
	candidates = Prioritize(candidates, h)
	top, ok := Top(candidates)
	if !ok {
		return agents.Thought{}, false
	}
	h.ThoughtHistory.Push(top)
	h.CurrentThought = top
	return top, true
}
