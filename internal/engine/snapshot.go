package engine

import (
	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/clock"
	"github.com/talgya/mini-world/internal/weather"
	"github.com/talgya/mini-world/internal/world"
)

// MutatedChunk carries one chunk's full tile grid, persisted only for
// chunks marked Dirty (§6 persistence note — "... mutated chunks"). Dirty
// is set by tile edits and also by entity membership changes, so a chunk
// whose tiles still match generation is included once an entity has
// entered or left it.
type MutatedChunk struct {
	Coord world.ChunkCoord
	Tiles [world.ChunkSize * world.ChunkSize]world.Tile
}

// SnapshotData is the host-facing projection of world state that
// internal/persistence stores and restores. It is deliberately narrower
// than the live World: the spatial index's untouched, procedurally
// generated chunks are never serialized — only the ones marked Dirty by a
// tile edit or an entity entering or leaving them (§6 expansion, §9 Design
// Notes).
type SnapshotData struct {
	Seed      int64
	Time      clock.State
	Weather   weather.State
	Humans    []*agents.Human
	Animals   []*agents.Animal
	Plants    []*agents.Plant
	Resources []*agents.Resource
	Mutated   []MutatedChunk
}

// Snapshot captures a point-in-time, serializable projection of w (§6
// expansion). Entity slices are produced in sorted-id order so repeated
// snapshots of an unchanged world are byte-identical once serialized.
func (w *World) Snapshot() *SnapshotData {
	data := &SnapshotData{
		Seed:    w.Config.Seed,
		Time:    *w.Time,
		Weather: w.Weather.State(),
	}

	for _, id := range sortedIDs(w.Humans) {
		data.Humans = append(data.Humans, w.Humans[id])
	}
	for _, id := range sortedIDs(w.Animals) {
		data.Animals = append(data.Animals, w.Animals[id])
	}
	for _, id := range sortedIDs(w.Plants) {
		data.Plants = append(data.Plants, w.Plants[id])
	}
	for _, id := range sortedIDs(w.Resources) {
		data.Resources = append(data.Resources, w.Resources[id])
	}

	for _, c := range w.Index.AllChunks() {
		if !c.Dirty {
			continue
		}
		data.Mutated = append(data.Mutated, MutatedChunk{Coord: c.Coord, Tiles: c.Tiles})
	}

	return data
}

// Restore replaces w's live entities, clock, and weather state with data,
// and reapplies any persisted tile mutations to freshly generated chunks
// (§6 expansion). The spatial index's entity membership is rebuilt from
// each entity's current position, not from data.Mutated.
func (w *World) Restore(data *SnapshotData) {
	w.Humans = make(map[agents.ID]*agents.Human, len(data.Humans))
	w.Animals = make(map[agents.ID]*agents.Animal, len(data.Animals))
	w.Plants = make(map[agents.ID]*agents.Plant, len(data.Plants))
	w.Resources = make(map[agents.ID]*agents.Resource, len(data.Resources))

	var maxID agents.ID
	place := func(id agents.ID, pos world.Vec2) {
		if id > maxID {
			maxID = id
		}
		w.Index.ChunkAt(pos).AddEntity(world.EntityID(id))
	}

	for _, h := range data.Humans {
		w.Humans[h.ID] = h
		place(h.ID, h.Pos)
	}
	for _, a := range data.Animals {
		w.Animals[a.ID] = a
		place(a.ID, a.Pos)
	}
	for _, p := range data.Plants {
		w.Plants[p.ID] = p
		place(p.ID, p.Pos)
	}
	for _, r := range data.Resources {
		w.Resources[r.ID] = r
		place(r.ID, r.Pos)
	}
	w.nextID = uint64(maxID) + 1

	*w.Time = data.Time
	w.Weather.ForceState(data.Weather)
	w.cachedSeason = data.Time.Season

	for _, mc := range data.Mutated {
		c := w.Index.Chunk(mc.Coord)
		c.Tiles = mc.Tiles
		c.Dirty = true
	}
}
