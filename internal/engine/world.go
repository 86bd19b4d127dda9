// Package engine implements the World Orchestrator: the tick loop that
// owns time, weather, the spatial index, and every entity, running them
// through the §4.9 sequence each tick.
package engine

import (
	"log/slog"
	"math/rand"

	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/clock"
	"github.com/talgya/mini-world/internal/weather"
	"github.com/talgya/mini-world/internal/world"
)

// Config is the immutable set of knobs fixed at world construction (§9:
// "Global mutable constants... model as an immutable configuration
// struct").
type Config struct {
	Seed         int64
	Width        int
	Height       int
	ViewDistance int
}

// DefaultConfig mirrors the closed defaults from §6.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:         seed,
		Width:        world.DefaultWorldWidth,
		Height:       world.DefaultWorldHeight,
		ViewDistance: 3,
	}
}

type pendingAdd struct {
	human    *agents.Human
	animal   *agents.Animal
	plant    *agents.Plant
	resource *agents.Resource
}

// World owns every subsystem and is the sole mutator of shared state
// (§5). All public methods are synchronous; none block on I/O.
type World struct {
	Config Config
	Index  *world.Index
	Time   *clock.State
	Weather *weather.System

	Humans    map[agents.ID]*agents.Human
	Animals   map[agents.ID]*agents.Animal
	Plants    map[agents.ID]*agents.Plant
	Resources map[agents.ID]*agents.Resource

	nextID uint64

	pendingAdds    []pendingAdd
	pendingRemoves []agents.ID

	cachedSeason clock.Season

	viewport     world.Vec2
	viewDistance int

	rng *rand.Rand
	log *slog.Logger
}

// NewWorld constructs a world from cfg, generating no chunks until the
// first tick or explicit activation (§6: new_world).
func NewWorld(cfg Config, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	t := clock.NewState()
	w := &World{
		Config:       cfg,
		Index:        world.NewIndex(cfg.Seed),
		Time:         t,
		Weather:      weather.NewSystem(cfg.Seed, t.Season),
		Humans:       make(map[agents.ID]*agents.Human),
		Animals:      make(map[agents.ID]*agents.Animal),
		Plants:       make(map[agents.ID]*agents.Plant),
		Resources:    make(map[agents.ID]*agents.Resource),
		cachedSeason: t.Season,
		viewDistance: cfg.ViewDistance,
		rng:          rand.New(rand.NewSource(cfg.Seed ^ 0x1234ABCD)),
		log:          log,
	}
	return w
}

// nextEntityID hands out monotonically increasing entity ids (§3: "unique
// within a world (monotonic counter)").
func (w *World) nextEntityID() agents.ID {
	w.nextID++
	return agents.ID(w.nextID)
}

// --- action.World interface, so internal/action can check prerequisites
// and apply effects without importing engine. ---

func (w *World) TileAt(pos world.Vec2) world.Tile {
	t, _ := w.Index.TileAt(pos)
	return t
}

// InBounds reports whether pos lies within the configured world extent
// (§4.7's move prerequisite: "target within world bounds and tile
// walkable").
func (w *World) InBounds(pos world.Vec2) bool {
	maxX := float64(w.Config.Width) * world.TileSize
	maxY := float64(w.Config.Height) * world.TileSize
	return pos.X >= 0 && pos.Y >= 0 && pos.X < maxX && pos.Y < maxY
}

func (w *World) ResourceAt(id agents.ID) (*agents.Resource, bool) {
	r, ok := w.Resources[id]
	return r, ok
}

func (w *World) HumanAt(id agents.ID) (*agents.Human, bool) {
	h, ok := w.Humans[id]
	return h, ok
}

// WeatherMovementMod exposes the active weather's movement multiplier,
// used by the action system's gather-efficiency formula (§4.7).
func (w *World) WeatherMovementMod() float64 {
	return w.Weather.State().Effects.MovementSpeedMod
}
