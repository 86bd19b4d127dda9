package engine

import (
	"github.com/talgya/mini-world/internal/clock"
	"github.com/talgya/mini-world/internal/world"
)

// Tick runs one cooperative tick of dt simulated seconds, against the
// given viewport (§4.9, §6). It never blocks and never aborts due to a
// single entity's failure (§7).
func (w *World) Tick(dt float64, viewport world.Vec2, zoom float64) {
	w.viewport = viewport

	w.Time.Update(dt)
	w.Weather.Update(dt, w.Time.Season, w.Time.DayProgress)

	if w.Time.Season != w.cachedSeason {
		w.onSeasonChange(w.cachedSeason, w.Time.Season)
		w.cachedSeason = w.Time.Season
	}

	w.Index.UpdateActiveSet(w.viewport, w.viewDistance)

	w.updateActiveEntities(dt)
	w.migrateAll()

	w.processThoughts(dt)
	w.applyEffects(dt)
	w.processEntityChanges()
}

// onSeasonChange fires the per-entity seasonal hook (§4.9 step 3):
// plants pick up the new season's growth modifier. Resources are not
// touched here.
func (w *World) onSeasonChange(prev, next clock.Season) {
	mod := seasonGrowthMod(next)
	for _, id := range sortedIDs(w.Plants) {
		w.Plants[id].SeasonalGrowthModifier = mod
	}
	w.log.Info("season changed", "from", prev.String(), "to", next.String())
}

func seasonGrowthMod(s clock.Season) float64 {
	switch s {
	case clock.Spring:
		return 1.3
	case clock.Summer:
		return 1.1
	case clock.Autumn:
		return 0.8
	case clock.Winter:
		return 0.3
	default:
		return 1.0
	}
}

// safeUpdate isolates a single entity's update: a panic is logged and
// swallowed rather than aborting the tick (§7: "a failure logs... and
// continues").
func (w *World) safeUpdate(kind string, id uint64, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Warn("entity update panicked, skipping", "kind", kind, "id", id, "error", r)
		}
	}()
	fn()
}
