package world

import "math"

// Index maps chunk coordinates to chunks, generating them on demand via its
// Generator and tracking which chunks are currently active.
type Index struct {
	Generator *Generator
	chunks    map[ChunkCoord]*Chunk
}

// NewIndex creates a spatial index backed by a fresh generator for seed.
func NewIndex(seed int64) *Index {
	gen := NewGenerator(seed)
	return &Index{
		Generator: gen,
		chunks:    gen.cache, // the generator's cache *is* the canonical chunk store
	}
}

// Chunk returns the chunk at the given coordinates, generating it on first
// access. Chunks are never destroyed once created.
func (idx *Index) Chunk(coord ChunkCoord) *Chunk {
	return idx.Generator.GenerateChunk(coord.X, coord.Y)
}

// ChunkAt returns the chunk containing a world position.
func (idx *Index) ChunkAt(pos Vec2) *Chunk {
	return idx.Chunk(ChunkForPosition(pos))
}

// TileAt returns the tile at a world position, or false if the coordinates
// are degenerate (NaN/Inf).
func (idx *Index) TileAt(pos Vec2) (Tile, bool) {
	if !isRealVec(pos) {
		return Tile{}, false
	}
	c := idx.ChunkAt(pos)
	lx, ly := TileForPosition(pos)
	return c.GetTile(lx, ly)
}

// ActiveChunks returns every chunk currently marked active, sorted for
// deterministic iteration.
func (idx *Index) ActiveChunks() []*Chunk {
	var out []*Chunk
	for _, c := range idx.chunks {
		if c.Active {
			out = append(out, c)
		}
	}
	sortChunks(out)
	return out
}

// AllChunks returns every generated chunk, sorted for deterministic
// iteration. Used sparingly (e.g. collecting dirty chunks for a snapshot).
func (idx *Index) AllChunks() []*Chunk {
	out := make([]*Chunk, 0, len(idx.chunks))
	for _, c := range idx.chunks {
		out = append(out, c)
	}
	sortChunks(out)
	return out
}

// UpdateActiveSet activates every chunk within viewDistance chunks of the
// viewport position (generating missing ones) and deactivates the rest.
// Returns the newly-activated chunks, useful for logging/telemetry.
func (idx *Index) UpdateActiveSet(viewport Vec2, viewDistance int) []*Chunk {
	center := ChunkForPosition(viewport)
	wanted := make(map[ChunkCoord]bool)

	var activated []*Chunk
	for dx := -viewDistance; dx <= viewDistance; dx++ {
		for dy := -viewDistance; dy <= viewDistance; dy++ {
			cc := ChunkCoord{X: center.X + dx, Y: center.Y + dy}
			wanted[cc] = true
			c := idx.Chunk(cc)
			if !c.Active {
				c.Activate()
				activated = append(activated, c)
			}
		}
	}

	for coord, c := range idx.chunks {
		if !wanted[coord] && c.Active {
			c.Deactivate()
		}
	}

	return activated
}

func isRealVec(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func sortChunks(cs []*Chunk) {
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0 && coordLess(cs[j].Coord, cs[j-1].Coord); j-- {
			cs[j-1], cs[j] = cs[j], cs[j-1]
		}
	}
}

func coordLess(a, b ChunkCoord) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
