package weather

import (
	"math"
	"math/rand"

	"github.com/talgya/mini-world/internal/clock"
)

// State is the full externally-visible weather snapshot.
type State struct {
	Current  Kind
	Previous Kind

	// RemainingDuration is simulated seconds left before the current kind
	// considers transitioning to a new one.
	RemainingDuration float64

	// TransitionProgress is [0,1]: 0 means effects are still Previous's,
	// 1 means effects are fully Current's. It ramps linearly over the
	// first transitionWindow seconds of a new kind.
	TransitionProgress float64

	WindSpeed     float64
	WindDirection float64 // radians, [0, 2pi)
	Temperature   float64 // derived, degrees
	Effects       Effects
}

// transitionWindow is how long (in simulated seconds) a newly-entered kind
// takes to fully interpolate its scalar effects in.
const transitionWindow = 60.0

// System drives the weather Markov chain for one world. It owns its own
// random source, seeded once at construction, so two systems built from the
// same seed produce identical weather sequences (§5, §8).
type System struct {
	rng   *rand.Rand
	state State
}

// NewSystem builds a weather system seeded deterministically from the
// world seed, starting in Clear weather with a freshly rolled duration.
func NewSystem(seed int64, season clock.Season) *System {
	sys := &System{rng: rand.New(rand.NewSource(seed ^ 0x5EA5075))}
	sys.state = State{
		Current:            Clear,
		Previous:           Clear,
		TransitionProgress: 1,
		WindSpeed:          2 + sys.rng.Float64()*3,
		WindDirection:      sys.rng.Float64() * 2 * math.Pi,
		Effects:            table[Clear].Effects,
	}
	sys.state.RemainingDuration = sys.rollDuration(Clear)
	return sys
}

// State returns the current snapshot.
func (sys *System) State() State {
	return sys.state
}

// ForceState overrides the current snapshot directly. Used by tests and by
// scenario/debug tooling; never called from the regular tick path.
func (sys *System) ForceState(s State) {
	sys.state = s
}

func (sys *System) rollDuration(k Kind) float64 {
	d := table[k]
	return d.DurationMin + sys.rng.Float64()*(d.DurationMax-d.DurationMin)
}

// Update advances the weather system by dt seconds as passed to the world
// tick (not scaled by clock.State's speed multiplier), given the current
// season and day progress (for the diurnal temperature term).
func (sys *System) Update(dt float64, season clock.Season, dayProgress float64) {
	if dt <= 0 {
		return
	}

	s := &sys.state
	s.RemainingDuration -= dt
	if s.RemainingDuration <= 0 {
		next := sys.chooseNext(s.Current, season)
		s.Previous = s.Current
		s.Current = next
		s.RemainingDuration = sys.rollDuration(next)
		s.TransitionProgress = 0
	}

	if s.TransitionProgress < 1 {
		s.TransitionProgress += dt / transitionWindow
		if s.TransitionProgress > 1 {
			s.TransitionProgress = 1
		}
	}

	s.Effects = lerpEffects(table[s.Previous].Effects, table[s.Current].Effects, s.TransitionProgress)
	sys.updateWind(dt)
	s.Temperature = sys.temperature(season, dayProgress, s.Effects.TemperatureMod)
}

// chooseNext performs a weighted, season-filtered draw over every kind
// except the current one, falling back to Clear if nothing else is
// eligible in this season (§4.5).
func (sys *System) chooseNext(current Kind, season clock.Season) Kind {
	type weighted struct {
		kind   Kind
		weight float64
	}
	var candidates []weighted
	total := 0.0
	for k := Kind(0); k < numKinds; k++ {
		if k == current {
			continue
		}
		if !possibleInSeason(k, season) {
			continue
		}
		d := table[k]
		w := d.BaseProbability * d.SeasonMod[int(season)]
		if w <= 0 {
			continue
		}
		candidates = append(candidates, weighted{k, w})
		total += w
	}
	if len(candidates) == 0 || total <= 0 {
		return Clear
	}

	roll := sys.rng.Float64() * total
	acc := 0.0
	for _, c := range candidates {
		acc += c.weight
		if roll <= acc {
			return c.kind
		}
	}
	return candidates[len(candidates)-1].kind
}

func (sys *System) updateWind(dt float64) {
	s := &sys.state
	base := 2.0
	switch s.Current {
	case Storm, Blizzard:
		base = 12.0
	case Snow, Rain:
		base = 6.0
	case Cloudy:
		base = 3.0
	}
	target := base + sys.rng.Float64()*base*0.5
	smoothing := dt / 30.0
	if smoothing > 1 {
		smoothing = 1
	}
	s.WindSpeed += (target - s.WindSpeed) * smoothing

	drift := (sys.rng.Float64() - 0.5) * 0.2 * dt
	s.WindDirection = math.Mod(s.WindDirection+drift+2*math.Pi, 2*math.Pi)
}

// seasonBaseline is the mean temperature (degrees) for each season before
// diurnal and weather modifiers are applied.
var seasonBaseline = [4]float64{15, 27, 12, -2}

// temperature derives the ambient temperature from season, time of day, and
// the active weather's additive modifier (§4.5).
func (sys *System) temperature(season clock.Season, dayProgress float64, weatherMod float64) float64 {
	base := seasonBaseline[int(season)]
	diurnal := 6 * math.Sin(2*math.Pi*(dayProgress-0.2))
	return base + diurnal + weatherMod
}

// LightningFlash reports whether a lightning flash should occur this tick,
// valid only while Current is Storm; probability scales with dt so the
// expected flash rate is independent of tick size.
func (sys *System) LightningFlash(dt float64) bool {
	if sys.state.Current != Storm {
		return false
	}
	pPerSecond := 0.05
	return sys.rng.Float64() < pPerSecond*dt
}
