// Package action implements the Action System: translating a selected
// thought into a queued Action, enforcing prerequisites/cooldowns, and
// running start/completion effects (§4.7).
package action

import "github.com/talgya/mini-world/internal/agents"

// FromThought maps a selected thought to the Action it should enqueue
// (§4.9 step 6: "convert to a queued Action via a thought→action mapping").
func FromThought(t agents.Thought) agents.Action {
	a := agents.Action{Priority: t.Priority, Target: t.Target, TargetPos: t.TargetPos}

	switch t.Source {
	case agents.ThoughtNeed:
		switch t.Subtype {
		case "hunger", "thirst":
			a.Type = agents.ActionGather
		case "energy":
			a.Type = agents.ActionRest
		case "social":
			a.Type = agents.ActionInteract
		default:
			a.Type = agents.ActionRest
		}
	case agents.ThoughtSocial:
		a.Type = agents.ActionInteract
	case agents.ThoughtEnvironment:
		if t.Subtype == "shelter" || t.Subtype == "return_home" {
			a.Type = agents.ActionMove
		} else {
			a.Type = agents.ActionWalk
		}
	case agents.ThoughtWork:
		if t.Subtype == "gather" {
			a.Type = agents.ActionGather
		} else {
			a.Type = agents.ActionWork
		}
	case agents.ThoughtRest:
		a.Type = agents.ActionSleep
	case agents.ThoughtExplore:
		a.Type = agents.ActionWalk
	default:
		a.Type = agents.ActionIdle
	}
	return a
}
