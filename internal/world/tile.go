// Package world provides the chunked tile grid, terrain generator, and
// spatial index the rest of the simulation is built on.
package world

// Grid constants. A tile is TILE_SIZE world units square; a chunk is
// CHUNK_SIZE x CHUNK_SIZE tiles.
const (
	ChunkSize = 32
	TileSize  = 32.0

	// DefaultWorldWidth and DefaultWorldHeight are expressed in tiles.
	DefaultWorldWidth  = 1000
	DefaultWorldHeight = 1000
)

// ChunkWorldSize is the length of one chunk edge in world units.
const ChunkWorldSize = ChunkSize * TileSize

// Biome is a closed classification of a tile's terrain/climate.
type Biome uint8

const (
	BiomeDeepOcean Biome = iota
	BiomeOcean
	BiomeBeach
	BiomeTundra
	BiomeSnowyPlains
	BiomePlains
	BiomeForest
	BiomeRainforest
	BiomeDesert
	BiomeSavanna
	BiomeJungle
	BiomeHills
	BiomeForestHills
	BiomeSnowyMountains
	BiomeMountains
	BiomeSnowyPeaks
	numBiomes
)

// String returns a human-readable biome name.
func (b Biome) String() string {
	switch b {
	case BiomeDeepOcean:
		return "deep_ocean"
	case BiomeOcean:
		return "ocean"
	case BiomeBeach:
		return "beach"
	case BiomeTundra:
		return "tundra"
	case BiomeSnowyPlains:
		return "snowy_plains"
	case BiomePlains:
		return "plains"
	case BiomeForest:
		return "forest"
	case BiomeRainforest:
		return "rainforest"
	case BiomeDesert:
		return "desert"
	case BiomeSavanna:
		return "savanna"
	case BiomeJungle:
		return "jungle"
	case BiomeHills:
		return "hills"
	case BiomeForestHills:
		return "forest_hills"
	case BiomeSnowyMountains:
		return "snowy_mountains"
	case BiomeMountains:
		return "mountains"
	case BiomeSnowyPeaks:
		return "snowy_peaks"
	default:
		return "plains"
	}
}

// Walkable reports whether an entity may stand on this biome. Ocean and
// deep ocean are impassable.
func (b Biome) Walkable() bool {
	return b != BiomeDeepOcean && b != BiomeOcean
}

// ResourceKind is a closed enumeration of tile-bound harvestable resources.
type ResourceKind uint8

const (
	ResourceTree ResourceKind = iota
	ResourceBerry
	ResourceFlower
	ResourceRock
	ResourceOreVein
	ResourceFish
	numResourceKinds
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceTree:
		return "tree"
	case ResourceBerry:
		return "berry"
	case ResourceFlower:
		return "flower"
	case ResourceRock:
		return "rock"
	case ResourceOreVein:
		return "ore_vein"
	case ResourceFish:
		return "fish"
	default:
		return "unknown"
	}
}

// IsFood reports whether harvesting this kind restores hunger (§4.7's
// gather completion effect only applies to food-bearing resources).
func (k ResourceKind) IsFood() bool {
	return k == ResourceBerry || k == ResourceFish
}

// Tool names the equipment required to harvest a resource kind, per §4.7's
// gather prerequisite ("agent carries any required tool"). The empty string
// means no tool is required.
func (k ResourceKind) Tool() string {
	switch k {
	case ResourceTree:
		return "axe"
	case ResourceOreVein:
		return "pickaxe"
	case ResourceFish:
		return "fishing_rod"
	default:
		return ""
	}
}

// ResourceRef is a resource instance bound to a specific tile.
type ResourceRef struct {
	Kind    ResourceKind
	Quality float64 // [0.7, 1.0]
	Size    float64 // [0.8, 1.2]
}

// Feature is a biome decoration with no simulation effect beyond shelter.
type Feature struct {
	Name            string
	ProvidesShelter bool
}

// Tile is one cell of the world grid, owned by its Chunk.
type Tile struct {
	Biome       Biome
	Elevation   float64
	Moisture    float64
	Temperature float64
	Walkable    bool
	Resources   []ResourceRef
	Features    []Feature
}

// HasShelter reports whether any feature on the tile shelters occupants from
// weather exposure.
func (t Tile) HasShelter() bool {
	for _, f := range t.Features {
		if f.ProvidesShelter {
			return true
		}
	}
	return false
}
