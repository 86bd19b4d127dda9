package action

import (
	"math/rand"

	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/world"
)

// World is the narrow slice of world state the action system needs to
// check prerequisites and apply effects, implemented by the engine's
// orchestrator. Keeping it as an interface avoids an import cycle between
// action and engine.
type World interface {
	TileAt(pos world.Vec2) world.Tile
	InBounds(pos world.Vec2) bool
	ResourceAt(id agents.ID) (*agents.Resource, bool)
	HumanAt(id agents.ID) (*agents.Human, bool)
	WeatherMovementMod() float64
}

// moveDestination resolves a move-type action's destination, whether it
// names another entity or a raw world position. Returns false if the
// action carries no resolvable destination (e.g. an undirected wander).
func moveDestination(w World, target *agents.ID, targetPos *world.Vec2) (world.Vec2, bool) {
	if targetPos != nil {
		return *targetPos, true
	}
	if target != nil {
		if other, ok := w.HumanAt(*target); ok {
			return other.Pos, true
		}
	}
	return world.Vec2{}, false
}

// Prerequisites reports whether a's prerequisites currently hold (§4.7).
func Prerequisites(w World, h *agents.Human, a agents.Action) bool {
	switch a.Type {
	case agents.ActionWalk, agents.ActionRun, agents.ActionMove:
		dest, ok := moveDestination(w, a.Target, a.TargetPos)
		if !ok {
			return true
		}
		return w.InBounds(dest) && w.TileAt(dest).Walkable
	case agents.ActionInteract:
		if a.Target == nil {
			return false
		}
		other, ok := w.HumanAt(*a.Target)
		if !ok {
			return false
		}
		return world.Distance(h.Pos, other.Pos) <= h.InteractionRange
	case agents.ActionGather:
		if a.Target == nil {
			return false
		}
		res, ok := w.ResourceAt(*a.Target)
		if !ok || res.IsDepleted {
			return false
		}
		tool := res.Type.Tool()
		return tool == "" || h.Inventory.Has(tool, 1)
	case agents.ActionCraft:
		return craftable(h, a.Recipe)
	default:
		return true
	}
}

// StartEffects applies the on-start effects for a on h (§4.7).
func StartEffects(w World, h *agents.Human, a *agents.Action) {
	h.Energy = clampEnergy(h.Energy-a.Type.EnergyCost(), h.MaxEnergy)
	switch a.Type {
	case agents.ActionMove, agents.ActionWalk, agents.ActionRun:
		if dest, ok := moveDestination(w, a.Target, a.TargetPos); ok {
			dx, dy := dest.X-h.Pos.X, dest.Y-h.Pos.Y
			h.Velocity = normalizeTo(dx, dy, h.Speed)
		}
	case agents.ActionGather:
		if a.Target != nil {
			if res, ok := w.ResourceAt(*a.Target); ok {
				res.CurrentUsers[h.ID] = struct{}{}
			}
		}
	}
}

// CompleteEffects applies the on-completion effects for a on h at
// simulated time now (§4.7).
func CompleteEffects(w World, h *agents.Human, a agents.Action, now float64) {
	switch a.Type {
	case agents.ActionMove, agents.ActionWalk, agents.ActionRun:
		h.Velocity = world.Vec2{}
		if a.NextAction != nil {
			h.Actions.QueueAction(agents.Action{Type: *a.NextAction, Priority: a.Priority})
		}
	case agents.ActionGather:
		if a.Target == nil {
			return
		}
		res, ok := w.ResourceAt(*a.Target)
		if !ok {
			return
		}
		efficiency := (0.8 + h.Skills.Bonus(res.Type.String())) * w.WeatherMovementMod()
		amount := res.Harvest(10, efficiency)
		if res.IsDepleted && amount > 0 {
			res.DepletionTime = now
		}
		h.Inventory.Add(res.Type.String(), int(amount), res.Quality)
		delete(res.CurrentUsers, h.ID)
		if res.Type.IsFood() {
			h.Needs.Hunger = clampNeed(h.Needs.Hunger + amount)
		}
	case agents.ActionInteract:
		if a.Target == nil {
			return
		}
		delta := 5.0
		if a.Reason == "help" {
			delta = 10.0
		}
		r := h.RelationshipWith(*a.Target, now, 0.5)
		r.Interact(now, delta)
	case agents.ActionRest, agents.ActionSleep:
		rate := 5.0
		if a.Type == agents.ActionSleep {
			rate = 20.0
		}
		h.Energy = clampEnergy(h.Energy+rate*a.Duration, h.MaxEnergy)
	case agents.ActionCraft:
		consumeRecipe(h, a.Recipe)
	}
}

// Tick advances h's action state by dt: decrement the running action, run
// CompleteEffects on expiry, otherwise pop and start the next queued
// action whose prerequisites hold (§4.7).
func Tick(w World, h *agents.Human, dt float64, now float64, rng *rand.Rand) {
	h.Actions.TickCooldowns(dt)

	if h.Actions.Current != nil {
		h.Actions.Current.RemainingDuration -= dt
		if h.Actions.Current.RemainingDuration <= 0 {
			CompleteEffects(w, h, *h.Actions.Current, now)
			h.Actions.SetCooldown(h.Actions.Current.Type)
			h.Actions.Current = nil
		} else {
			return
		}
	}

	for {
		next, ok := h.Actions.PopNext()
		if !ok {
			return
		}
		if !Prerequisites(w, h, next) {
			continue // dropped silently, next in queue considered
		}
		lo, hi := next.Type.DurationRange()
		next.Duration = lo + rng.Float64()*(hi-lo)
		next.RemainingDuration = next.Duration
		next.Started = true
		StartEffects(w, h, &next)
		h.Actions.Current = &next
		return
	}
}

func craftable(h *agents.Human, recipe string) bool {
	ing, ok := recipes[recipe]
	if !ok {
		return false
	}
	for item, qty := range ing {
		if !h.Inventory.Has(item, qty) {
			return false
		}
	}
	return true
}

func consumeRecipe(h *agents.Human, recipe string) {
	ing, ok := recipes[recipe]
	if !ok {
		return
	}
	for item, qty := range ing {
		h.Inventory.Remove(item, qty)
	}
	h.Inventory.Add(recipe, 1, 1.0)
}

// recipes is a small closed crafting table; real content would grow with
// the game's item list, but the action system only needs the shape.
var recipes = map[string]map[string]int{
	"torch": {"tree": 1},
}

func clampEnergy(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func clampNeed(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func normalizeTo(dx, dy, speed float64) world.Vec2 {
	dist := world.Distance(world.Vec2{}, world.Vec2{X: dx, Y: dy})
	if dist == 0 {
		return world.Vec2{}
	}
	return world.Vec2{X: dx / dist * speed, Y: dy / dist * speed}
}
