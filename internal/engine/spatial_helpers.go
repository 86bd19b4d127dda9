package engine

import (
	"math"

	"github.com/talgya/mini-world/internal/world"
)

// nearestTileMatching scans every tile in chunks overlapping the disk of
// radius r centered on from and returns the closest one satisfying pred, or
// nil if none qualifies. Shared by human shelter-seeking and animal
// water-source awareness.
func nearestTileMatching(idx *world.Index, from world.Vec2, r float64, pred func(world.Tile) bool) *world.Vec2 {
	var best *world.Vec2
	bestDist := math.MaxFloat64

	for _, c := range idx.ChunksInRadius(from, r) {
		for ly := 0; ly < world.ChunkSize; ly++ {
			for lx := 0; lx < world.ChunkSize; lx++ {
				tile, ok := c.GetTile(lx, ly)
				if !ok || !pred(tile) {
					continue
				}
				pos := world.Vec2{
					X: float64(c.Coord.X)*world.ChunkWorldSize + float64(lx)*world.TileSize,
					Y: float64(c.Coord.Y)*world.ChunkWorldSize + float64(ly)*world.TileSize,
				}
				d := world.Distance(from, pos)
				if d <= r && d < bestDist {
					bestDist = d
					p := pos
					best = &p
				}
			}
		}
	}
	return best
}

// isWatersideTile reports whether t's biome borders drinkable water,
// standing in for a dedicated lake/river feature the generator doesn't
// model (§3: animal known_water_sources).
func isWatersideTile(t world.Tile) bool {
	return t.Biome == world.BiomeOcean || t.Biome == world.BiomeBeach
}
