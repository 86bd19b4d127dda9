package engine

import (
	"math"

	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/world"
)

// nightLightThreshold mirrors the thought system's low-light cutoff;
// defined separately since animal awareness has no dependency on
// internal/thought.
const nightLightThreshold = 0.4

// attackRange is how close a hunting predator, or a foraging/drinking
// animal, must be to its target before it acts rather than keeps closing.
const attackRange = 12.0

// buildAnimalContext assembles the nearby-world snapshot a's behavior
// pipeline decides from (§4.8): nearest predator/prey among other animals
// in vision range, nearest known food resource, and nearest water tile.
func (w *World) buildAnimalContext(a *agents.Animal) agents.AnimalContext {
	isNight := w.Time.LightLevel() < nightLightThreshold
	ctx := agents.AnimalContext{
		IsPreferredTime: preferredTimeOK(a.PreferredTime, isNight),
		IsNight:         isNight,
	}

	bestPredatorDist := math.MaxFloat64
	bestPreyDist := math.MaxFloat64
	bestFoodDist := math.MaxFloat64

	for _, c := range w.Index.ChunksInRadius(a.Pos, a.VisionRange) {
		for _, eid := range c.Entities() {
			id := agents.ID(eid)
			if id == a.ID {
				continue
			}
			if other, ok := w.Animals[id]; ok {
				d := distance(a.Pos.X-other.Pos.X, a.Pos.Y-other.Pos.Y)
				if d > a.VisionRange {
					continue
				}
				if a.IsPrey && other.IsPredator && d < bestPredatorDist {
					bestPredatorDist = d
					pos := other.Pos
					oid := other.ID
					ctx.NearestPredatorPos = &pos
					ctx.NearestPredatorID = &oid
					ctx.NearestPredatorDist = d
				}
				if a.IsPredator && other.IsPrey && d < bestPreyDist {
					bestPreyDist = d
					pos := other.Pos
					oid := other.ID
					ctx.NearestPreyPos = &pos
					ctx.NearestPreyID = &oid
				}
				continue
			}
			if r, ok := w.Resources[id]; ok && r.Type.IsFood() {
				d := distance(a.Pos.X-r.Pos.X, a.Pos.Y-r.Pos.Y)
				if d <= a.VisionRange && d < bestFoodDist {
					bestFoodDist = d
					pos := r.Pos
					ctx.NearestFoodPos = &pos
				}
			}
		}
	}

	if tile, ok := w.Index.TileAt(a.Pos); ok && isWatersideTile(tile) {
		pos := a.Pos
		ctx.NearestWaterPos = &pos
	} else {
		ctx.NearestWaterPos = nearestTileMatching(w.Index, a.Pos, a.VisionRange, isWatersideTile)
	}

	return ctx
}

// preferredTimeOK reports whether the current day/night phase matches an
// animal's activity preference (§3: preferred_time ∈ {day, night, any}).
func preferredTimeOK(pref agents.TimePreference, isNight bool) bool {
	switch pref {
	case agents.PreferDay:
		return !isNight
	case agents.PreferNight:
		return isNight
	default:
		return true
	}
}

// executeAnimalBehavior applies a's just-decided State: sets Velocity
// toward the relevant destination, or performs an in-place effect (attack,
// drink, graze, rest) once in range (§4.8 execute_behavior(dt)).
func (w *World) executeAnimalBehavior(a *agents.Animal, ctx agents.AnimalContext, dt float64) {
	switch a.State {
	case agents.AnimalFleeing:
		if ctx.NearestPredatorPos != nil {
			dx := a.Pos.X - ctx.NearestPredatorPos.X
			dy := a.Pos.Y - ctx.NearestPredatorPos.Y
			a.Velocity = normalizeVelocity(dx, dy, a.Speed*1.5)
			return
		}
		a.Velocity = world.Vec2{}

	case agents.AnimalHunting:
		if ctx.NearestPreyID == nil {
			a.Velocity = world.Vec2{}
			return
		}
		prey, ok := w.Animals[*ctx.NearestPreyID]
		if !ok {
			a.Velocity = world.Vec2{}
			return
		}
		if distance(a.Pos.X-prey.Pos.X, a.Pos.Y-prey.Pos.Y) <= attackRange {
			a.Velocity = world.Vec2{}
			prey.Health = clampFloat(prey.Health-a.AttackDamage(), 0, prey.MaxHealth)
			prey.StatusEffects.Apply("injured", 10, nil)
		} else {
			a.Velocity = normalizeVelocity(prey.Pos.X-a.Pos.X, prey.Pos.Y-a.Pos.Y, a.Speed)
		}

	case agents.AnimalMoving:
		if ctx.NearestFoodPos == nil {
			a.Velocity = world.Vec2{}
			return
		}
		if distance(a.Pos.X-ctx.NearestFoodPos.X, a.Pos.Y-ctx.NearestFoodPos.Y) <= attackRange {
			a.Velocity = world.Vec2{}
			a.Needs.Hunger = clampFloat(a.Needs.Hunger+20*dt, 0, 100)
		} else {
			a.Velocity = normalizeVelocity(ctx.NearestFoodPos.X-a.Pos.X, ctx.NearestFoodPos.Y-a.Pos.Y, a.Speed)
		}

	case agents.AnimalDrinking:
		if ctx.NearestWaterPos == nil {
			a.Velocity = world.Vec2{}
			return
		}
		if distance(a.Pos.X-ctx.NearestWaterPos.X, a.Pos.Y-ctx.NearestWaterPos.Y) <= attackRange {
			a.Velocity = world.Vec2{}
			a.Needs.Thirst = clampFloat(a.Needs.Thirst+20*dt, 0, 100)
		} else {
			a.Velocity = normalizeVelocity(ctx.NearestWaterPos.X-a.Pos.X, ctx.NearestWaterPos.Y-a.Pos.Y, a.Speed)
		}

	case agents.AnimalReturningHome:
		a.Velocity = normalizeVelocity(a.HomeLocation.X-a.Pos.X, a.HomeLocation.Y-a.Pos.Y, a.Speed)

	case agents.AnimalResting:
		a.Velocity = world.Vec2{}
		a.Needs.Rest = clampFloat(a.Needs.Rest+10*dt, 0, 100)

	default:
		a.Velocity = world.Vec2{}
	}
}

func normalizeVelocity(dx, dy, speed float64) world.Vec2 {
	d := distance(dx, dy)
	if d == 0 {
		return world.Vec2{}
	}
	return world.Vec2{X: dx / d * speed, Y: dy / d * speed}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
