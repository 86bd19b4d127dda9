// Package thought implements the per-agent Thought System: it turns a
// Context snapshot into a single prioritized Thought driving the next
// action (§4.6).
package thought

import (
	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/clock"
	"github.com/talgya/mini-world/internal/weather"
	"github.com/talgya/mini-world/internal/world"
)

// NearbyEntity is a lightweight view of another entity visible to the
// thinking agent; the thought system never mutates other entities
// directly (§5).
type NearbyEntity struct {
	ID       agents.ID
	Kind     agents.Kind
	Pos      world.Vec2
	IsHuman  bool
	Resource *world.ResourceRef // non-nil when Kind == KindResource and the tile resource is known
}

// Context is assembled fresh by the world orchestrator for each agent,
// every thought cycle (§4.6).
type Context struct {
	Now         float64
	Time        clock.State
	Weather     weather.State
	Tile        world.Tile
	Nearby      []NearbyEntity
	FarFromHome bool

	// ShelterPos is the nearest sheltered tile within vision range, or nil
	// if the current tile already provides shelter or none was found.
	ShelterPos *world.Vec2
}
