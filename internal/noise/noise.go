// Package noise provides deterministic 2D gradient noise for terrain
// generation. Four independent channels are derived from a single world
// seed so elevation, moisture, temperature, and small-scale feature noise
// never correlate with one another.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Channel names the four noise instances a world derives from its seed.
type Channel int

const (
	Elevation Channel = iota
	Moisture
	Temperature
	Feature
	numChannels
)

// Set holds the four seeded noise instances used by terrain generation.
// Same seed always yields the same Set; distinct channels differ only by
// the seed offset applied at construction.
type Set struct {
	channels [numChannels]opensimplex.Noise
}

// NewSet derives the four channels from seed, seed+1, seed+2, seed+3.
func NewSet(seed int64) *Set {
	s := &Set{}
	for i := 0; i < int(numChannels); i++ {
		s.channels[i] = opensimplex.NewNormalized(seed + int64(i))
	}
	return s
}

// Sample2D returns a deterministic scalar in [0,1] for the given channel and
// continuous coordinates. Non-finite inputs or outputs degrade to 0.5 rather
// than propagating NaN/Inf — terrain generation must never fail.
func (s *Set) Sample2D(c Channel, x, y float64) float64 {
	if !isReal(x) || !isReal(y) {
		return 0.5
	}
	v := s.channels[c].Eval2(x, y)
	if !isReal(v) {
		return 0.5
	}
	return clamp01(v)
}

// Octave layers multiple frequencies of the same channel for a more natural,
// fractal look. persistence controls how quickly higher octaves are damped.
func (s *Set) Octave(c Channel, x, y float64, octaves int, frequency, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	freq := frequency

	for i := 0; i < octaves; i++ {
		total += s.Sample2D(c, x*freq, y*freq) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		freq *= 2
	}
	if maxVal == 0 {
		return 0.5
	}
	return clamp01(total / maxVal)
}

func isReal(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
