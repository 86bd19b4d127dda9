package world

import "testing"

func TestGenerateChunkDeterministic(t *testing.T) {
	g1 := NewGenerator(42)
	g2 := NewGenerator(42)

	c1 := g1.GenerateChunk(3, -2)
	c2 := g2.GenerateChunk(3, -2)

	for i := range c1.Tiles {
		if c1.Tiles[i].Biome != c2.Tiles[i].Biome ||
			c1.Tiles[i].Elevation != c2.Tiles[i].Elevation ||
			c1.Tiles[i].Moisture != c2.Tiles[i].Moisture ||
			c1.Tiles[i].Temperature != c2.Tiles[i].Temperature {
			t.Fatalf("tile %d differs between identically-seeded generators", i)
		}
	}
}

func TestGenerateChunkCached(t *testing.T) {
	g := NewGenerator(7)
	a := g.GenerateChunk(0, 0)
	b := g.GenerateChunk(0, 0)
	if a != b {
		t.Fatalf("expected cached chunk pointer to be identical across calls")
	}
}

func TestGenerateChunkDiffersAcrossSeeds(t *testing.T) {
	a := NewGenerator(42).GenerateChunk(0, 0)
	b := NewGenerator(43).GenerateChunk(0, 0)

	differs := false
	for i := range a.Tiles {
		if a.Tiles[i].Biome != b.Tiles[i].Biome || a.Tiles[i].Elevation != b.Tiles[i].Elevation {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatalf("expected seed 42 and 43 to diverge in at least one tile")
	}
}

func TestWalkableMatchesBiome(t *testing.T) {
	g := NewGenerator(1)
	c := g.GenerateChunk(0, 0)
	for _, tile := range c.Tiles {
		if tile.Walkable != tile.Biome.Walkable() {
			t.Fatalf("tile walkable flag doesn't match biome derivation")
		}
		if tile.Biome == BiomeDeepOcean || tile.Biome == BiomeOcean {
			if tile.Walkable {
				t.Fatalf("%v biome must not be walkable", tile.Biome)
			}
		}
	}
}

func TestResourceValuesInRange(t *testing.T) {
	g := NewGenerator(5)
	for cx := -2; cx <= 2; cx++ {
		for cy := -2; cy <= 2; cy++ {
			c := g.GenerateChunk(cx, cy)
			for _, tile := range c.Tiles {
				for _, r := range tile.Resources {
					if r.Size < 0.8 || r.Size > 1.2 {
						t.Fatalf("resource size out of range: %v", r.Size)
					}
					if r.Quality < 0.7 || r.Quality > 1.0 {
						t.Fatalf("resource quality out of range: %v", r.Quality)
					}
				}
			}
		}
	}
}
