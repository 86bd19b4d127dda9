package engine

import (
	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/clock"
	"github.com/talgya/mini-world/internal/weather"
	"github.com/talgya/mini-world/internal/world"
)

// Rect is an axis-aligned world-space query rectangle (§6).
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) contains(p world.Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// EntityView is a read-only snapshot of one entity, independent of its
// concrete variant, suitable for a host renderer (§6: get_entity_view;
// §9: "the core emits a... record with fields; the renderer decides
// presentation").
type EntityView struct {
	ID     agents.ID
	Kind   agents.Kind
	Pos    world.Vec2
	Health float64
	Active bool
}

// QueryEntitiesInRect enumerates every tracked entity whose position lies
// within rect (§6).
func (w *World) QueryEntitiesInRect(rect Rect) []EntityView {
	var out []EntityView
	for _, id := range sortedIDs(w.Humans) {
		h := w.Humans[id]
		if rect.contains(h.Pos) {
			out = append(out, EntityView{ID: id, Kind: agents.KindHuman, Pos: h.Pos, Health: h.Health, Active: h.Active})
		}
	}
	for _, id := range sortedIDs(w.Animals) {
		a := w.Animals[id]
		if rect.contains(a.Pos) {
			out = append(out, EntityView{ID: id, Kind: agents.KindAnimal, Pos: a.Pos, Health: a.Health, Active: a.Active})
		}
	}
	for _, id := range sortedIDs(w.Plants) {
		p := w.Plants[id]
		if rect.contains(p.Pos) {
			out = append(out, EntityView{ID: id, Kind: agents.KindPlant, Pos: p.Pos, Health: p.Health, Active: p.Active})
		}
	}
	for _, id := range sortedIDs(w.Resources) {
		r := w.Resources[id]
		if rect.contains(r.Pos) {
			out = append(out, EntityView{ID: id, Kind: agents.KindResource, Pos: r.Pos, Health: r.Health, Active: r.Active})
		}
	}
	return out
}

// QueryEntitiesNear enumerates chunks overlapping the query disk, then
// filters by true Euclidean distance, excluding exclude if given (§4.3).
func (w *World) QueryEntitiesNear(x, y, r float64, exclude *agents.ID) []EntityView {
	center := world.Vec2{X: x, Y: y}
	var out []EntityView
	for _, c := range w.Index.ChunksInRadius(center, r) {
		for _, eid := range c.Entities() {
			id := agents.ID(eid)
			if exclude != nil && id == *exclude {
				continue
			}
			view, ok := w.entityView(id)
			if !ok {
				continue
			}
			if distance(view.Pos.X-x, view.Pos.Y-y) <= r {
				out = append(out, view)
			}
		}
	}
	return out
}

func (w *World) entityView(id agents.ID) (EntityView, bool) {
	if h, ok := w.Humans[id]; ok {
		return EntityView{ID: id, Kind: agents.KindHuman, Pos: h.Pos, Health: h.Health, Active: h.Active}, true
	}
	if a, ok := w.Animals[id]; ok {
		return EntityView{ID: id, Kind: agents.KindAnimal, Pos: a.Pos, Health: a.Health, Active: a.Active}, true
	}
	if p, ok := w.Plants[id]; ok {
		return EntityView{ID: id, Kind: agents.KindPlant, Pos: p.Pos, Health: p.Health, Active: p.Active}, true
	}
	if r, ok := w.Resources[id]; ok {
		return EntityView{ID: id, Kind: agents.KindResource, Pos: r.Pos, Health: r.Health, Active: r.Active}, true
	}
	return EntityView{}, false
}

// GetTile returns the tile at world position (x,y), or false if it has
// never been generated (§6: get_tile).
func (w *World) GetTile(x, y float64) (world.Tile, bool) {
	return w.Index.TileAt(world.Vec2{X: x, Y: y})
}

// GetTimeState returns a read-only snapshot of the clock (§6).
func (w *World) GetTimeState() clock.State {
	return *w.Time
}

// GetWeatherState returns a read-only snapshot of the weather system (§6).
func (w *World) GetWeatherState() weather.State {
	return w.Weather.State()
}

// GetEntityView returns a read-only snapshot of one entity (§6).
func (w *World) GetEntityView(id agents.ID) (EntityView, bool) {
	return w.entityView(id)
}

// SetTimeSpeed selects a named time multiplier (§6: set_time_speed).
func (w *World) SetTimeSpeed(name clock.Speed) {
	w.Time.SetSpeed(name)
}
