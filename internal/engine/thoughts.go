package engine

import (
	"github.com/talgya/mini-world/internal/action"
	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/thought"
	"github.com/talgya/mini-world/internal/world"
)

// processThoughts assembles a context snapshot for each active human,
// invokes the Thought System, converts the winning thought into a queued
// Action, then runs the Action System's tick (§4.9 step 6, §4.6, §4.7).
func (w *World) processThoughts(dt float64) {
	for _, id := range sortedIDs(w.Humans) {
		h := w.Humans[id]
		if !h.Active {
			continue
		}
		w.safeUpdate("human-thought", uint64(id), func() {
			ctx := w.buildContext(h)
			if top, ok := thought.Decide(ctx, h); ok {
				h.Actions.QueueAction(action.FromThought(top))
			}
			action.Tick(w, h, dt, w.Time.Elapsed, w.rng)
		})
	}
}

// buildContext assembles the per-agent context snapshot (§4.6).
func (w *World) buildContext(h *agents.Human) thought.Context {
	tile, _ := w.Index.TileAt(h.Pos)

	var nearby []thought.NearbyEntity
	for _, other := range w.Index.ChunksInRadius(h.Pos, h.VisionRange) {
		for _, eid := range other.Entities() {
			id := agents.ID(eid)
			if id == h.ID {
				continue
			}
			if oh, ok := w.Humans[id]; ok {
				nearby = append(nearby, thought.NearbyEntity{ID: id, Kind: agents.KindHuman, Pos: oh.Pos, IsHuman: true})
				continue
			}
			if r, ok := w.Resources[id]; ok {
				ref := world.ResourceRef{Kind: r.Type, Quality: r.Quality}
				nearby = append(nearby, thought.NearbyEntity{ID: id, Kind: agents.KindResource, Pos: r.Pos, Resource: &ref})
			}
		}
	}

	ctx := thought.Context{
		Now:         w.Time.Elapsed,
		Time:        *w.Time,
		Weather:     w.Weather.State(),
		Tile:        tile,
		Nearby:      nearby,
		FarFromHome: h.FarFromHome,
	}
	if !tile.HasShelter() {
		ctx.ShelterPos = nearestTileMatching(w.Index, h.Pos, h.VisionRange, world.Tile.HasShelter)
	}
	return ctx
}

// applyEffects pushes weather exposure effects onto every active human not
// sheltered by their current tile's features (§4.5 exposure rule).
func (w *World) applyEffects(dt float64) {
	ws := w.Weather.State()
	for _, id := range sortedIDs(w.Humans) {
		h := w.Humans[id]
		if !h.Active {
			continue
		}
		tile, ok := w.Index.TileAt(h.Pos)
		if ok && tile.HasShelter() {
			continue
		}
		for _, name := range ws.Effects.StatusEffects {
			h.StatusEffects.Apply(name, 5, nil)
		}
	}
}
