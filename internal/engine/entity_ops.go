package engine

import (
	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/world"
)

// maxPendingAdds bounds the add queue so a runaway producer can't grow it
// unbounded (§7: CapacityExceeded — "reject the addition, surface a flag").
const maxPendingAdds = 10000

// AddHuman enqueues a human for insertion at the next
// process_entity_changes pass (§3 lifecycle, §6: add_entity). Returns
// ErrCapacityExceeded if the pending queue is full.
func (w *World) AddHuman(pos world.Vec2) (agents.ID, error) {
	if len(w.pendingAdds) >= maxPendingAdds {
		return 0, ErrCapacityExceeded
	}
	id := w.nextEntityID()
	h := agents.NewHuman(id, pos)
	h.Age = 18 + w.rng.Intn(50)
	h.Gender = agents.Genders[w.rng.Intn(len(agents.Genders))]
	w.pendingAdds = append(w.pendingAdds, pendingAdd{human: h})
	return id, nil
}

func (w *World) AddAnimal(pos world.Vec2, species string, diet agents.Diet) (agents.ID, error) {
	if len(w.pendingAdds) >= maxPendingAdds {
		return 0, ErrCapacityExceeded
	}
	id := w.nextEntityID()
	a := agents.NewAnimal(id, pos, species, diet)
	w.pendingAdds = append(w.pendingAdds, pendingAdd{animal: a})
	return id, nil
}

func (w *World) AddPlant(pos world.Vec2, typ agents.PlantType, growthRate float64) (agents.ID, error) {
	if len(w.pendingAdds) >= maxPendingAdds {
		return 0, ErrCapacityExceeded
	}
	id := w.nextEntityID()
	p := agents.NewPlant(id, pos, typ, growthRate)
	w.pendingAdds = append(w.pendingAdds, pendingAdd{plant: p})
	return id, nil
}

func (w *World) AddResource(pos world.Vec2, kind world.ResourceKind, maxQty, quality float64) (agents.ID, error) {
	if len(w.pendingAdds) >= maxPendingAdds {
		return 0, ErrCapacityExceeded
	}
	id := w.nextEntityID()
	r := agents.NewResource(id, pos, kind, maxQty, quality)
	w.pendingAdds = append(w.pendingAdds, pendingAdd{resource: r})
	return id, nil
}

// RemoveEntity enqueues id for removal at the next process_entity_changes
// pass (§6: remove_entity). Returns ErrEntityNotFound if id names no live
// entity and isn't already pending removal.
func (w *World) RemoveEntity(id agents.ID) error {
	if _, ok := w.entityView(id); !ok {
		return ErrEntityNotFound
	}
	w.pendingRemoves = append(w.pendingRemoves, id)
	return nil
}

// processEntityChanges drains pending_additions and pending_removals into
// the live entity maps and the spatial index (§4.9 step 8).
func (w *World) processEntityChanges() {
	for _, add := range w.pendingAdds {
		switch {
		case add.human != nil:
			w.Humans[add.human.ID] = add.human
			w.Index.ChunkAt(add.human.Pos).AddEntity(world.EntityID(add.human.ID))
		case add.animal != nil:
			w.Animals[add.animal.ID] = add.animal
			w.Index.ChunkAt(add.animal.Pos).AddEntity(world.EntityID(add.animal.ID))
		case add.plant != nil:
			w.Plants[add.plant.ID] = add.plant
			w.Index.ChunkAt(add.plant.Pos).AddEntity(world.EntityID(add.plant.ID))
		case add.resource != nil:
			w.Resources[add.resource.ID] = add.resource
			w.Index.ChunkAt(add.resource.Pos).AddEntity(world.EntityID(add.resource.ID))
		}
	}
	w.pendingAdds = w.pendingAdds[:0]

	for _, id := range w.pendingRemoves {
		w.removeNow(id)
	}
	w.pendingRemoves = w.pendingRemoves[:0]
}

func (w *World) removeNow(id agents.ID) {
	if h, ok := w.Humans[id]; ok {
		w.Index.Chunk(h.LastChunk).RemoveEntity(world.EntityID(id))
		delete(w.Humans, id)
		return
	}
	if a, ok := w.Animals[id]; ok {
		w.Index.Chunk(a.LastChunk).RemoveEntity(world.EntityID(id))
		delete(w.Animals, id)
		return
	}
	if p, ok := w.Plants[id]; ok {
		w.Index.Chunk(p.LastChunk).RemoveEntity(world.EntityID(id))
		delete(w.Plants, id)
		return
	}
	if r, ok := w.Resources[id]; ok {
		w.Index.Chunk(r.LastChunk).RemoveEntity(world.EntityID(id))
		delete(w.Resources, id)
		return
	}
}
