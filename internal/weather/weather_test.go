package weather

import (
	"testing"

	"github.com/talgya/mini-world/internal/clock"
)

// statesEqual compares everything but the StatusEffects slice (Go structs
// containing slices aren't comparable with ==).
func statesEqual(a, b State) bool {
	return a.Current == b.Current &&
		a.Previous == b.Previous &&
		a.RemainingDuration == b.RemainingDuration &&
		a.TransitionProgress == b.TransitionProgress &&
		a.WindSpeed == b.WindSpeed &&
		a.WindDirection == b.WindDirection &&
		a.Temperature == b.Temperature &&
		a.Effects.TemperatureMod == b.Effects.TemperatureMod &&
		a.Effects.Humidity == b.Effects.Humidity &&
		a.Effects.RainIntensity == b.Effects.RainIntensity &&
		a.Effects.SnowIntensity == b.Effects.SnowIntensity &&
		a.Effects.Darkness == b.Effects.Darkness &&
		a.Effects.Fog == b.Effects.Fog &&
		a.Effects.Thunder == b.Effects.Thunder &&
		a.Effects.CloudCover == b.Effects.CloudCover &&
		a.Effects.MovementSpeedMod == b.Effects.MovementSpeedMod
}

func TestNewSystemDeterministic(t *testing.T) {
	a := NewSystem(7, clock.Summer)
	b := NewSystem(7, clock.Summer)
	if !statesEqual(a.State(), b.State()) {
		t.Fatalf("same seed produced different initial states: %+v vs %+v", a.State(), b.State())
	}
}

func TestUpdateSequenceDeterministic(t *testing.T) {
	a := NewSystem(42, clock.Autumn)
	b := NewSystem(42, clock.Autumn)
	for i := 0; i < 500; i++ {
		a.Update(5, clock.Autumn, 0.4)
		b.Update(5, clock.Autumn, 0.4)
	}
	if !statesEqual(a.State(), b.State()) {
		t.Fatalf("identical seeds diverged after equal updates")
	}
}

// TestWeatherTransitionSummer is the "force current=storm, remaining
// duration exhausted, season=summer" scenario: the successor must be one of
// the four kinds the summer season allows, and storm's own duration range
// must be respected if storm itself is redrawn.
func TestWeatherTransitionSummer(t *testing.T) {
	sys := NewSystem(7, clock.Summer)
	sys.ForceState(State{
		Current:            Storm,
		Previous:           Storm,
		RemainingDuration:  0,
		TransitionProgress: 1,
		Effects:            table[Storm].Effects,
	})

	sys.Update(1, clock.Summer, 0.5)

	allowed := map[Kind]bool{Clear: true, Cloudy: true, Rain: true, Storm: true}
	got := sys.State().Current
	if !allowed[got] {
		t.Fatalf("unexpected successor kind %v after storm in summer", got)
	}

	d := table[got]
	if sys.State().RemainingDuration < d.DurationMin-1 || sys.State().RemainingDuration > d.DurationMax {
		t.Fatalf("remaining duration %v outside [%v,%v] for kind %v",
			sys.State().RemainingDuration, d.DurationMin, d.DurationMax, got)
	}
}

func TestChooseNextNeverPicksIneligibleSeason(t *testing.T) {
	sys := NewSystem(3, clock.Summer)
	for i := 0; i < 2000; i++ {
		k := sys.chooseNext(Clear, clock.Summer)
		if !possibleInSeason(k, clock.Summer) {
			t.Fatalf("chose %v which is not possible in summer", k)
		}
	}
}

func TestChooseNextFallsBackToClear(t *testing.T) {
	sys := NewSystem(9, clock.Winter)
	// In winter Clear, Cloudy, Snow and Blizzard are possible. Verify the
	// degenerate case directly: patch every kind other than the current one
	// (Blizzard) to be impossible, so no candidate remains and the draw must
	// fall back to Clear.
	orig := make(map[Kind]def, len(table))
	for k, d := range table {
		orig[k] = d
	}
	defer func() {
		for k, d := range orig {
			table[k] = d
		}
	}()
	for k, d := range orig {
		if k == Blizzard {
			continue
		}
		d.Possible = [4]bool{false, false, false, false}
		table[k] = d
	}

	k := sys.chooseNext(Blizzard, clock.Winter)
	if k != Clear {
		t.Fatalf("expected fallback to clear, got %v", k)
	}
}

func TestTransitionProgressRampsToOne(t *testing.T) {
	sys := NewSystem(1, clock.Spring)
	sys.ForceState(State{
		Current:            Rain,
		Previous:           Clear,
		RemainingDuration:  1000,
		TransitionProgress: 0,
		Effects:            table[Clear].Effects,
	})
	for i := 0; i < 100; i++ {
		sys.Update(1, clock.Spring, 0.5)
	}
	if sys.State().TransitionProgress != 1 {
		t.Fatalf("expected transition progress to saturate at 1, got %v", sys.State().TransitionProgress)
	}
}

func TestLightningOnlyDuringStorm(t *testing.T) {
	sys := NewSystem(5, clock.Summer)
	sys.ForceState(State{Current: Clear})
	for i := 0; i < 100; i++ {
		if sys.LightningFlash(1) {
			t.Fatalf("lightning flash occurred outside storm")
		}
	}
}

func TestWindSpeedStaysNonNegative(t *testing.T) {
	sys := NewSystem(11, clock.Winter)
	for i := 0; i < 1000; i++ {
		sys.Update(10, clock.Winter, 0.1)
		if sys.State().WindSpeed < 0 {
			t.Fatalf("wind speed went negative: %v", sys.State().WindSpeed)
		}
	}
}
