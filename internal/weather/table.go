package weather

import "github.com/talgya/mini-world/internal/clock"

// Effects holds the scalar environmental effects a weather kind applies
// once fully transitioned in. All fields are in [0,1] except TemperatureMod
// (additive degrees) and the multipliers, which may exceed 1.
type Effects struct {
	TemperatureMod   float64 // additive, degrees
	Humidity         float64
	RainIntensity    float64
	SnowIntensity    float64
	Darkness         float64
	Fog              float64
	Thunder          float64
	CloudCover       float64
	MovementSpeedMod float64 // multiplier, 1.0 = unaffected
	StatusEffects    []string
}

func lerpEffects(a, b Effects, t float64) Effects {
	return Effects{
		TemperatureMod:   lerp(a.TemperatureMod, b.TemperatureMod, t),
		Humidity:         lerp(a.Humidity, b.Humidity, t),
		RainIntensity:    lerp(a.RainIntensity, b.RainIntensity, t),
		SnowIntensity:    lerp(a.SnowIntensity, b.SnowIntensity, t),
		Darkness:         lerp(a.Darkness, b.Darkness, t),
		Fog:              lerp(a.Fog, b.Fog, t),
		Thunder:          lerp(a.Thunder, b.Thunder, t),
		CloudCover:       lerp(a.CloudCover, b.CloudCover, t),
		MovementSpeedMod: lerp(a.MovementSpeedMod, b.MovementSpeedMod, t),
		StatusEffects:    b.StatusEffects,
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// def is one weather kind's full definition: duration range, season
// eligibility/weighting, and its steady-state scalar effects.
type def struct {
	DurationMin     float64
	DurationMax     float64
	BaseProbability float64
	SeasonMod       [4]float64 // indexed by clock.Season
	Possible        [4]bool    // indexed by clock.Season
	Effects         Effects
}

// table is the authoritative per-kind definition set (§3, §4.5). It is the
// single source of weather scalar effects; nothing else defines them.
var table = map[Kind]def{
	Clear: {
		DurationMin: 600, DurationMax: 1800,
		BaseProbability: 0.40,
		SeasonMod:       [4]float64{1.1, 1.3, 1.1, 0.8},
		Possible:        [4]bool{true, true, true, true},
		Effects: Effects{
			MovementSpeedMod: 1.0,
		},
	},
	Cloudy: {
		DurationMin: 300, DurationMax: 900,
		BaseProbability: 0.25,
		SeasonMod:       [4]float64{1.0, 0.9, 1.1, 1.0},
		Possible:        [4]bool{true, true, true, true},
		Effects: Effects{
			CloudCover:       0.6,
			Darkness:         0.1,
			MovementSpeedMod: 1.0,
		},
	},
	Rain: {
		DurationMin: 300, DurationMax: 900,
		BaseProbability: 0.20,
		SeasonMod:       [4]float64{1.3, 1.0, 1.2, 0.3},
		Possible:        [4]bool{true, true, true, false},
		Effects: Effects{
			TemperatureMod:   -2,
			Humidity:         0.7,
			RainIntensity:    0.6,
			Darkness:         0.3,
			Fog:              0.2,
			MovementSpeedMod: 0.9,
			StatusEffects:    []string{"wet"},
		},
	},
	Storm: {
		DurationMin: 300, DurationMax: 900,
		BaseProbability: 0.10,
		SeasonMod:       [4]float64{0.6, 1.5, 1.0, 0},
		Possible:        [4]bool{true, true, true, false},
		Effects: Effects{
			TemperatureMod:   -3,
			Humidity:         0.9,
			RainIntensity:    1.0,
			Darkness:         0.6,
			Fog:              0.1,
			Thunder:          1.0,
			CloudCover:       1.0,
			MovementSpeedMod: 0.7,
			StatusEffects:    []string{"wet", "exposed"},
		},
	},
	Snow: {
		DurationMin: 300, DurationMax: 1200,
		BaseProbability: 0.15,
		SeasonMod:       [4]float64{0.2, 0, 0.6, 1.5},
		Possible:        [4]bool{true, false, true, true},
		Effects: Effects{
			TemperatureMod:   -8,
			Humidity:         0.5,
			SnowIntensity:    0.6,
			Darkness:         0.2,
			Fog:              0.1,
			CloudCover:       0.8,
			MovementSpeedMod: 0.8,
			StatusEffects:    []string{"cold"},
		},
	},
	Blizzard: {
		DurationMin: 200, DurationMax: 600,
		BaseProbability: 0.05,
		SeasonMod:       [4]float64{0, 0, 0.2, 1.4},
		Possible:        [4]bool{false, false, false, true},
		Effects: Effects{
			TemperatureMod:   -15,
			Humidity:         0.6,
			SnowIntensity:    1.0,
			Darkness:         0.5,
			Fog:              0.5,
			CloudCover:       1.0,
			MovementSpeedMod: 0.4,
			StatusEffects:    []string{"cold", "exposed"},
		},
	},
}

func possibleInSeason(k Kind, s clock.Season) bool {
	return table[k].Possible[int(s)]
}
