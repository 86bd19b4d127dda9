package world

// EntityID is an opaque reference to an entity tracked by a chunk. The
// world package never resolves it back to an entity — ownership lives in
// the engine/agents layer, avoiding the cyclic chunk<->entity back-references
// the Design Notes call out.
type EntityID uint64

// Chunk owns a fixed tile grid and the set of entities currently within its
// bounds.
type Chunk struct {
	Coord    ChunkCoord
	Tiles    [ChunkSize * ChunkSize]Tile
	entities map[EntityID]struct{}
	Active   bool
	Dirty    bool
}

func newChunk(coord ChunkCoord) *Chunk {
	return &Chunk{
		Coord:    coord,
		entities: make(map[EntityID]struct{}),
	}
}

// GetTile returns the tile at local indices, or false if out of bounds.
func (c *Chunk) GetTile(localX, localY int) (Tile, bool) {
	if localX < 0 || localX >= ChunkSize || localY < 0 || localY >= ChunkSize {
		return Tile{}, false
	}
	return c.Tiles[localY*ChunkSize+localX], true
}

// SetTile replaces the tile at local indices and marks the chunk dirty.
func (c *Chunk) SetTile(localX, localY int, t Tile) {
	if localX < 0 || localX >= ChunkSize || localY < 0 || localY >= ChunkSize {
		return
	}
	c.Tiles[localY*ChunkSize+localX] = t
	c.Dirty = true
}

// AddEntity inserts an entity reference. Idempotent.
func (c *Chunk) AddEntity(id EntityID) {
	if _, ok := c.entities[id]; ok {
		return
	}
	c.entities[id] = struct{}{}
	c.Dirty = true
}

// RemoveEntity removes an entity reference. Idempotent.
func (c *Chunk) RemoveEntity(id EntityID) {
	if _, ok := c.entities[id]; !ok {
		return
	}
	delete(c.entities, id)
	c.Dirty = true
}

// Entities returns a snapshot slice of entity references in the chunk.
// Sorted for deterministic iteration order (§5).
func (c *Chunk) Entities() []EntityID {
	out := make([]EntityID, 0, len(c.entities))
	for id := range c.entities {
		out = append(out, id)
	}
	sortEntityIDs(out)
	return out
}

// Activate marks the chunk active (within view distance).
func (c *Chunk) Activate() { c.Active = true }

// Deactivate marks the chunk inactive.
func (c *Chunk) Deactivate() { c.Active = false }

func sortEntityIDs(ids []EntityID) {
	// Small insertion sort — chunks hold few entities and this avoids
	// importing sort for a trivial comparison, keeping allocation-free
	// sorting on the hot per-tick path.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
