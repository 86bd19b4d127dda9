// Package agents implements the entity data model: a shared Header plus
// Human/Animal/Plant/Resource payloads, and the needs/mood/memory/
// relationship state that the thought and action systems operate on.
package agents

import (
	"github.com/talgya/mini-world/internal/world"
)

// ID is unique within a world; it doubles as the opaque world.EntityID used
// by the chunk/spatial-index layer, so the two packages never need to know
// about each other's concrete entity representation.
type ID = world.EntityID

// Kind is the closed set of entity variants (§3, §9 tagged-variant model).
type Kind uint8

const (
	KindHuman Kind = iota
	KindAnimal
	KindPlant
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindAnimal:
		return "animal"
	case KindPlant:
		return "plant"
	case KindResource:
		return "resource"
	default:
		return "unknown"
	}
}

// Header holds the fields every entity variant shares. Variant payloads
// (Human, Animal, Plant, Resource) embed it rather than inheriting from a
// base class.
type Header struct {
	ID   ID
	Kind Kind

	Pos       world.Vec2
	Velocity  world.Vec2
	LastChunk world.ChunkCoord // cached for migration detection

	Size             float64
	Speed            float64
	VisionRange      float64
	InteractionRange float64

	Health    float64
	MaxHealth float64
	Energy    float64
	MaxEnergy float64

	Active bool
}

// NewHeader builds a header with the given id/kind/position and reasonable
// defaults; callers override fields as needed for their variant.
func NewHeader(id ID, kind Kind, pos world.Vec2) Header {
	return Header{
		ID:               id,
		Kind:             kind,
		Pos:              pos,
		LastChunk:        world.ChunkForPosition(pos),
		Size:             1.0,
		Speed:            1.0,
		VisionRange:      64,
		InteractionRange: 8,
		Health:           100,
		MaxHealth:        100,
		Energy:           100,
		MaxEnergy:        100,
	}
}

// ClampVitals keeps Health/Energy within their declared bounds (invariant
// 5: needs/health/energy bounds).
func (h *Header) ClampVitals() {
	h.Health = clamp(h.Health, 0, h.MaxHealth)
	h.Energy = clamp(h.Energy, 0, h.MaxEnergy)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
