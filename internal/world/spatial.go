package world

import "math"

// ChunksInRadius returns every generated chunk whose bounding box intersects
// the disk of radius r centered at pos. Callers needing entities, not
// chunks, should follow up with a per-entity Euclidean distance filter
// (§4.3) — the index has no notion of entity position.
func (idx *Index) ChunksInRadius(pos Vec2, r float64) []*Chunk {
	minCoord := ChunkForPosition(Vec2{X: pos.X - r, Y: pos.Y - r})
	maxCoord := ChunkForPosition(Vec2{X: pos.X + r, Y: pos.Y + r})

	var out []*Chunk
	for x := minCoord.X; x <= maxCoord.X; x++ {
		for y := minCoord.Y; y <= maxCoord.Y; y++ {
			cc := ChunkCoord{X: x, Y: y}
			c, ok := idx.chunks[cc]
			if !ok {
				continue
			}
			if chunkIntersectsDisk(cc, pos, r) {
				out = append(out, c)
			}
		}
	}
	sortChunks(out)
	return out
}

func chunkIntersectsDisk(cc ChunkCoord, pos Vec2, r float64) bool {
	minX := float64(cc.X) * ChunkWorldSize
	minY := float64(cc.Y) * ChunkWorldSize
	maxX := minX + ChunkWorldSize
	maxY := minY + ChunkWorldSize

	closestX := clampf(pos.X, minX, maxX)
	closestY := clampf(pos.Y, minY, maxY)
	dx := pos.X - closestX
	dy := pos.Y - closestY
	return dx*dx+dy*dy <= r*r
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
