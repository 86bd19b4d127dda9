// Package clock implements the world's time system: a monotonic simulated
// clock deriving day/hour/minute/season/light-level from elapsed seconds.
package clock

import (
	"math"
	"time"

	strftime "github.com/ncruces/go-strftime"
)

// Fixed world time constants (§6).
const (
	// TimeScale converts one real second of dt, at speed 1.0, into this many
	// simulated seconds.
	TimeScale = 60.0

	// DayLength is the number of simulated seconds in one day.
	DayLength = 1440.0

	// SeasonLength is the number of days in one season.
	SeasonLength = 30
)

// Speed names the closed set of selectable time multipliers.
type Speed string

const (
	SpeedPaused Speed = "paused"
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
	SpeedUltra  Speed = "ultra"
)

// speedMultiplier maps named speeds to their multiplier (§6).
var speedMultiplier = map[Speed]float64{
	SpeedPaused: 0,
	SpeedSlow:   0.5,
	SpeedNormal: 1.0,
	SpeedFast:   2.0,
	SpeedUltra:  5.0,
}

// Season is an ordered closed enumeration of the four climate phases.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return "spring"
	}
}

// State is the full derived time snapshot. All fields besides Elapsed,
// Speed, and Paused are recomputed from Elapsed on every Update.
type State struct {
	Elapsed float64 // monotonic simulated seconds

	Day         int
	Hour        int
	Minute      int
	DayProgress float64 // [0,1)
	Season      Season
	SeasonDay   int

	SpeedName Speed
	Paused    bool
}

// NewState returns a time state starting at simulated second zero, running
// at normal speed.
func NewState() *State {
	s := &State{SpeedName: SpeedNormal}
	s.recompute()
	return s
}

// SetSpeed selects a named time multiplier. Unknown names are ignored (the
// previous speed is kept) rather than corrupting the clock.
func (s *State) SetSpeed(name Speed) {
	if _, ok := speedMultiplier[name]; !ok {
		return
	}
	s.SpeedName = name
	s.Paused = name == SpeedPaused
}

// Update advances the clock by dt real seconds, scaled by the current speed
// multiplier and TimeScale. A no-op while paused.
func (s *State) Update(dt float64) {
	if s.Paused || dt <= 0 {
		return
	}
	mult := speedMultiplier[s.SpeedName]
	s.Elapsed += dt * mult * TimeScale
	s.recompute()
}

func (s *State) recompute() {
	s.Day = int(math.Floor(s.Elapsed / DayLength))
	fracDay := s.Elapsed/DayLength - math.Floor(s.Elapsed/DayLength)
	s.DayProgress = fracDay

	totalMinutes := fracDay * 24 * 60
	s.Hour = int(totalMinutes) / 60
	s.Minute = int(totalMinutes) % 60

	s.Season = Season((s.Day / SeasonLength) % 4)
	s.SeasonDay = s.Day % SeasonLength
}

// LightLevel returns the piecewise light level derived from day progress:
// full daylight in [0.25, 0.75), with linear dawn/dusk ramps between 0.3 and
// 1.0 outside that window.
func (s *State) LightLevel() float64 {
	return LightLevelAt(s.DayProgress)
}

// LightLevelAt computes the light level for an arbitrary day-progress value,
// useful for testing without constructing a full State.
func LightLevelAt(p float64) float64 {
	switch {
	case p >= 0.25 && p < 0.75:
		return 1.0
	case p < 0.25:
		return 0.3 + (p/0.25)*0.7
	default: // p >= 0.75
		return 1.0 - ((p-0.75)/0.25)*0.7
	}
}

// AsTime converts the state into a time.Time anchored at the Unix epoch,
// solely so it can be formatted with strftime-style layouts.
func (s *State) AsTime() time.Time {
	return time.Unix(0, 0).UTC().
		AddDate(0, 0, s.Day).
		Add(time.Duration(s.Hour) * time.Hour).
		Add(time.Duration(s.Minute) * time.Minute)
}

// Format renders the state using a C-strftime-style layout, e.g.
// "Day %j of %Y %H:%M" — used only for log lines, never for simulation
// logic.
func (s *State) Format(layout string) string {
	return strftime.Format(layout, s.AsTime())
}
