package agents

import "github.com/talgya/mini-world/internal/world"

// PlantType enumerates the placeable flora kinds, mirroring the resource
// kinds that share their biome niches (§4.8).
type PlantType uint8

const (
	PlantTree PlantType = iota
	PlantBerryBush
	PlantFlower
)

func (p PlantType) String() string {
	switch p {
	case PlantTree:
		return "tree"
	case PlantBerryBush:
		return "berry_bush"
	case PlantFlower:
		return "flower"
	default:
		return "tree"
	}
}

// Plant is the Entity variant modeling growable flora (§3, §4.8).
type Plant struct {
	Header

	Type                   PlantType
	GrowthStage            float64 // [0,1]
	GrowthRate             float64
	SeasonalGrowthModifier float64
}

// NewPlant constructs a plant seedling at pos.
func NewPlant(id ID, pos world.Vec2, typ PlantType, growthRate float64) *Plant {
	return &Plant{
		Header:                 NewHeader(id, KindPlant, pos),
		Type:                   typ,
		GrowthRate:             growthRate,
		SeasonalGrowthModifier: 1.0,
	}
}

// Grow advances growth_stage, clamped to 1.0 (§4.8).
func (p *Plant) Grow(dt float64) {
	p.GrowthStage = clamp(p.GrowthStage+p.GrowthRate*p.SeasonalGrowthModifier*dt, 0, 1)
}

// Mature reports whether the plant has finished growing.
func (p *Plant) Mature() bool {
	return p.GrowthStage >= 1.0
}
