package world

import "testing"

func TestUpdateActiveSetClosure(t *testing.T) {
	idx := NewIndex(1)
	idx.UpdateActiveSet(Vec2{X: 0, Y: 0}, 2)

	for _, c := range idx.ActiveChunks() {
		if ChunkDistance(c.Coord, ChunkCoord{0, 0}) > 2 {
			t.Fatalf("chunk %v active but outside view distance", c.Coord)
		}
	}

	// Move viewport far away; old chunks must deactivate.
	idx.UpdateActiveSet(Vec2{X: 100 * ChunkWorldSize, Y: 0}, 1)
	for _, c := range idx.ActiveChunks() {
		if ChunkDistance(c.Coord, ChunkCoord{100, 0}) > 1 {
			t.Fatalf("stale chunk %v still active after viewport moved", c.Coord)
		}
	}
}

func TestChunkEntityMembership(t *testing.T) {
	idx := NewIndex(1)
	c := idx.ChunkAt(Vec2{X: 10, Y: 10})
	c.AddEntity(EntityID(7))
	if len(c.Entities()) != 1 {
		t.Fatalf("expected 1 entity after add")
	}
	c.RemoveEntity(EntityID(7))
	if len(c.Entities()) != 0 {
		t.Fatalf("expected 0 entities after remove")
	}
}

func TestChunksInRadiusExcludesFar(t *testing.T) {
	idx := NewIndex(1)
	idx.UpdateActiveSet(Vec2{X: 0, Y: 0}, 3)

	near := idx.ChunksInRadius(Vec2{X: 0, Y: 0}, ChunkWorldSize)
	if len(near) == 0 {
		t.Fatalf("expected at least the origin chunk in range")
	}

	far := idx.ChunksInRadius(Vec2{X: 0, Y: 0}, ChunkWorldSize*0.1)
	for _, c := range far {
		if ChunkDistance(c.Coord, ChunkCoord{0, 0}) > 1 {
			t.Fatalf("chunk %v should not be within a tiny radius", c.Coord)
		}
	}
}
