package engine

import (
	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/world"
)

// migrate checks whether an entity's chunk coordinate changed since its
// last recorded chunk and, if so, moves its membership from the old chunk
// to the new one, generating the new chunk on demand (§4.3 migration
// contract, §3 invariant: "every entity belongs to exactly one chunk").
func (w *World) migrate(id agents.ID, pos world.Vec2, last *world.ChunkCoord) {
	current := world.ChunkForPosition(pos)
	if current == *last {
		return
	}
	if oldChunk := w.Index.Chunk(*last); oldChunk != nil {
		oldChunk.RemoveEntity(world.EntityID(id))
	}
	newChunk := w.Index.ChunkAt(pos)
	newChunk.AddEntity(world.EntityID(id))
	*last = current
}

// migrateAll runs the chunk migration check for every tracked entity.
// Called once per tick after every entity's position has been updated
// (§4.9 step 5).
func (w *World) migrateAll() {
	for id, h := range w.Humans {
		w.migrate(id, h.Pos, &h.LastChunk)
	}
	for id, a := range w.Animals {
		w.migrate(id, a.Pos, &a.LastChunk)
	}
	for id, p := range w.Plants {
		w.migrate(id, p.Pos, &p.LastChunk)
	}
	for id, r := range w.Resources {
		w.migrate(id, r.Pos, &r.LastChunk)
	}
}
