package engine

import (
	"math"

	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/weather"
)

// activeEntitySet collects every entity id currently tracked by an active
// chunk (§4: "every active entity is in an active chunk").
func (w *World) activeEntitySet() map[agents.ID]bool {
	set := make(map[agents.ID]bool)
	for _, c := range w.Index.ActiveChunks() {
		for _, id := range c.Entities() {
			set[agents.ID(id)] = true
		}
	}
	return set
}

// updateActiveEntities runs each active entity's per-kind update pipeline,
// isolated by safeUpdate so a single entity's failure never aborts the
// tick (§4.9 step 5, §7).
func (w *World) updateActiveEntities(dt float64) {
	active := w.activeEntitySet()

	for _, id := range sortedIDs(w.Humans) {
		h := w.Humans[id]
		h.Active = active[id]
		if !h.Active {
			continue
		}
		w.safeUpdate("human", uint64(id), func() { w.updateHuman(h, dt) })
	}

	for _, id := range sortedIDs(w.Animals) {
		a := w.Animals[id]
		a.Active = active[id]
		if !a.Active {
			continue
		}
		w.safeUpdate("animal", uint64(id), func() { w.updateAnimal(a, dt) })
	}

	for _, id := range sortedIDs(w.Plants) {
		p := w.Plants[id]
		p.Active = active[id]
		if !p.Active {
			continue
		}
		w.safeUpdate("plant", uint64(id), func() { p.Grow(dt) })
	}

	for _, id := range sortedIDs(w.Resources) {
		r := w.Resources[id]
		r.Active = active[id]
		if !r.Active {
			continue
		}
		w.safeUpdate("resource", uint64(id), func() { w.updateResource(r, dt) })
	}
}

// peersNearby reports whether any other human lies within social range of
// h, cheaply approximated via vision range.
func (w *World) peersNearby(h *agents.Human) bool {
	for _, other := range w.Humans {
		if other.ID == h.ID {
			continue
		}
		if dist := distance(h.Pos.X-other.Pos.X, h.Pos.Y-other.Pos.Y); dist <= h.VisionRange {
			return true
		}
	}
	return false
}

func distance(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// updateHuman runs decay_needs -> update_stats -> update_status_effects ->
// move -> update_relationships -> check_level_up (§4.8). Thought/action
// processing happens separately in processThoughts (§4.9 step 6), since it
// needs a world-level context snapshot that updateActiveEntities doesn't
// assemble per entity.
func (w *World) updateHuman(h *agents.Human, dt float64) {
	peers := w.peersNearby(h)
	h.DecayNeeds(dt, peers)
	h.UpdateStats(dt, w.Time.Elapsed)
	h.UpdateStatusEffects(dt)

	h.Pos.X += h.Velocity.X * dt
	h.Pos.Y += h.Velocity.Y * dt
	if h.Velocity.X != 0 || h.Velocity.Y != 0 {
		h.FacingDirection = h.Velocity
	}

	h.FarFromHome = distance(h.Pos.X-h.HomeLocation.X, h.Pos.Y-h.HomeLocation.Y) > h.VisionRange*4

	h.UpdateRelationships(dt)
	h.CheckLevelUp()
	h.ClampVitals()
}

// updateAnimal runs decay_needs -> assess_threats -> decide_behavior ->
// execute_behavior(dt) -> move(dt) -> update_awareness(dt) (§4.8).
func (w *World) updateAnimal(a *agents.Animal, dt float64) {
	a.DecayNeeds(dt)

	ctx := w.buildAnimalContext(a)
	threatened := a.AssessThreats(ctx)
	a.TickBehaviorCooldown(dt)
	a.DecideBehavior(ctx, threatened)
	w.executeAnimalBehavior(a, ctx, dt)

	a.Pos.X += a.Velocity.X * dt
	a.Pos.Y += a.Velocity.Y * dt

	a.UpdateAwareness(ctx)
	a.ClampVitals()
}

// updateResource regenerates or weather-damages a resource depending on
// exposure (§4.5 exposure rule, §4.8).
func (w *World) updateResource(r *agents.Resource, dt float64) {
	tile, ok := w.Index.TileAt(r.Pos)
	sheltered := ok && tile.HasShelter()

	ws := w.Weather.State()
	if !sheltered && (ws.Current == weather.Storm || ws.Current == weather.Rain) {
		r.ApplyWeatherDamage(dt, ws.Current == weather.Storm)
	}
	r.Regenerate(dt, w.Time.Elapsed, seasonGrowthMod(w.Time.Season))
}
