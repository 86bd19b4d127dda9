// Terrain generation: deterministic layered noise -> elevation/moisture/
// temperature grids -> biome -> resource placement, one chunk at a time.
package world

import (
	"math"

	"github.com/talgya/mini-world/internal/noise"
)

// Noise sample scales, fixed per channel per §4.2 step 1.
const (
	elevationScale   = 100.0
	moistureScale    = 150.0
	temperatureScale = 200.0
	featureScale     = 50.0
)

// Biome thresholds, expressed in noise-value units (§4.2 step 4).
const (
	elevDeepOcean = 0.2
	elevOcean     = 0.4
	elevBeach     = 0.45
	elevHighland  = 0.6
	elevPeak      = 0.8

	tempCold = 0.4
	tempMild = 0.6
	tempWarm = 0.8

	moistDry = 0.4
	moistWet = 0.8
)

// latitudeSpan is the tile-unit distance from the equator (world y=0) at
// which the latitude contribution to temperature bottoms out.
const latitudeSpan = 600.0

// Generator produces chunk terrain deterministically from a world seed,
// caching results so repeated calls for the same coordinates are free and
// byte-identical.
type Generator struct {
	seed   int64
	noises *noise.Set
	cache  map[ChunkCoord]*Chunk
}

// NewGenerator creates a terrain generator for the given world seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:   seed,
		noises: noise.NewSet(seed),
		cache:  make(map[ChunkCoord]*Chunk),
	}
}

// GenerateChunk returns the chunk at the given coordinates, generating and
// caching it on first access. Pure and total: never fails.
func (g *Generator) GenerateChunk(cx, cy int) *Chunk {
	coord := ChunkCoord{X: cx, Y: cy}
	if c, ok := g.cache[coord]; ok {
		return c
	}

	c := newChunk(coord)
	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			wx := float64(cx*ChunkSize + lx)
			wy := float64(cy*ChunkSize + ly)
			c.Tiles[ly*ChunkSize+lx] = g.generateTile(wx, wy)
		}
	}

	g.cache[coord] = c
	return c
}

func (g *Generator) generateTile(wx, wy float64) Tile {
	ex, ey := wx/elevationScale, wy/elevationScale
	mx, my := wx/moistureScale, wy/moistureScale
	tx, ty := wx/temperatureScale, wy/temperatureScale
	fx, fy := wx/featureScale, wy/featureScale

	rawElev := g.noises.Sample2D(noise.Elevation, ex, ey)
	roughness := math.Abs(g.noises.Sample2D(noise.Elevation, ex*2, ey*2)*2 - 1)
	elevation := clamp01(0.8*rawElev + 0.2*roughness)

	rawMoist := g.noises.Sample2D(noise.Moisture, mx, my)
	moisture := clamp01(0.7*rawMoist + 0.3)

	rawTemp := g.noises.Sample2D(noise.Temperature, tx, ty)
	latitude := clamp01(1 - math.Abs(wy)/latitudeSpan)
	temperature := clamp01(0.6*rawTemp + 0.4*latitude)

	feature := g.noises.Sample2D(noise.Feature, fx, fy)
	combinedElev := clamp01(0.8*elevation + 0.2*feature)

	biome := deriveBiome(combinedElev, moisture, temperature)

	return Tile{
		Biome:       biome,
		Elevation:   elevation,
		Moisture:    moisture,
		Temperature: temperature,
		Walkable:    biome.Walkable(),
		Resources:   placeResources(g.noises, biome, elevation, moisture, temperature, wx, wy),
		Features:    placeFeatures(biome),
	}
}

// deriveBiome applies the §4.2 step 4 threshold table, elevation first.
func deriveBiome(elev, moist, temp float64) Biome {
	switch {
	case elev < elevDeepOcean:
		return BiomeDeepOcean
	case elev < elevOcean:
		return BiomeOcean
	case elev < elevBeach:
		return BiomeBeach
	case elev < elevHighland:
		return lowlandBiome(temp, moist)
	case elev < elevPeak:
		if temp < tempCold {
			return BiomeSnowyMountains
		}
		if moist >= moistWet {
			return BiomeForestHills
		}
		return BiomeHills
	default:
		if temp < tempCold {
			return BiomeSnowyPeaks
		}
		return BiomeMountains
	}
}

// lowlandBiome implements Table-B: elevation in [0.45, 0.6).
func lowlandBiome(temp, moist float64) Biome {
	switch {
	case temp < tempCold:
		if moist < moistDry {
			return BiomeTundra
		}
		return BiomeSnowyPlains
	case temp < tempMild:
		switch {
		case moist < moistDry:
			return BiomePlains
		case moist < moistWet:
			return BiomeForest
		default:
			return BiomeRainforest
		}
	default: // mild..warm and beyond — warm row covers both per spec.
		switch {
		case moist < moistDry:
			return BiomeDesert
		case moist < moistWet:
			return BiomeSavanna
		default:
			return BiomeJungle
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
