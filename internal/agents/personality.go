package agents

// Personality holds the five OCEAN-style traits, each in [0,1]. These are
// fixed at spawn and read by the thought system as prioritization weights.
type Personality struct {
	Openness          float64
	Conscientiousness float64
	Extraversion      float64
	Agreeableness     float64
	Neuroticism       float64
}

// Mood is a coarse categorical state derived from average need satisfaction.
type Mood uint8

const (
	MoodJoyful Mood = iota
	MoodContent
	MoodNeutral
	MoodSad
	MoodTired
)

func (m Mood) String() string {
	switch m {
	case MoodJoyful:
		return "joyful"
	case MoodContent:
		return "content"
	case MoodNeutral:
		return "neutral"
	case MoodSad:
		return "sad"
	case MoodTired:
		return "tired"
	default:
		return "neutral"
	}
}

// DeriveMood computes mood from the average of need values, with an energy
// override (§4.6): low energy always reads as tired regardless of average.
func DeriveMood(n *HumanNeeds) Mood {
	if n.Energy < 30 {
		return MoodTired
	}
	avg := (n.Hunger + n.Thirst + n.Energy + n.Social + n.Comfort + n.Safety) / 6
	switch {
	case avg >= 85:
		return MoodJoyful
	case avg >= 65:
		return MoodContent
	case avg >= 40:
		return MoodNeutral
	default:
		return MoodSad
	}
}

// EmotionKind enumerates the emotion-vector axes (§3).
type EmotionKind int

const (
	EmotionHappiness EmotionKind = iota
	EmotionSadness
	EmotionAnger
	EmotionFear
	EmotionSurprise
	EmotionDisgust
	EmotionTrust
	EmotionAnticipation
	numEmotions
)

// EmotionVector holds the eight emotion scalars, each in [0,1].
type EmotionVector [numEmotions]float64

// happinessDecayRate and otherDecayRate implement "non-happiness emotions
// decay linearly toward 0 over tens of seconds; happiness decays slower"
// (§4.6).
const (
	happinessDecayRate = 1.0 / 90.0 // full range over ~90s
	otherDecayRate     = 1.0 / 20.0 // full range over ~20s
)

// Decay relaxes every emotion toward 0 for dt seconds.
func (e *EmotionVector) Decay(dt float64, neuroticism float64) {
	recoverySlow := 1.0 + neuroticism // higher neuroticism slows recovery
	for i := range e {
		rate := otherDecayRate
		if EmotionKind(i) == EmotionHappiness {
			rate = happinessDecayRate
		}
		delta := rate * dt / recoverySlow
		if e[i] > delta {
			e[i] -= delta
		} else {
			e[i] = 0
		}
	}
}

// PushCritical nudges the emotion vector in response to a critical need:
// happiness down, anger and fear up. Higher neuroticism amplifies the
// push (§4.6 "amplifies stress accumulation").
func (e *EmotionVector) PushCritical(dt float64, neuroticism float64) {
	amp := 1.0 + neuroticism
	e[EmotionHappiness] = clamp(e[EmotionHappiness]-0.05*dt*amp, 0, 1)
	e[EmotionAnger] = clamp(e[EmotionAnger]+0.03*dt*amp, 0, 1)
	e[EmotionFear] = clamp(e[EmotionFear]+0.03*dt*amp, 0, 1)
}

// PushSatisfied raises happiness when needs are well satisfied.
func (e *EmotionVector) PushSatisfied(dt float64) {
	e[EmotionHappiness] = clamp(e[EmotionHappiness]+0.02*dt, 0, 1)
}

// Stress is a derived scalar from fear+anger, used to downweight complex
// thoughts (§4.6 "Stress>50 downweights complex/abstract thoughts").
func (e *EmotionVector) Stress() float64 {
	return clamp((e[EmotionAnger]+e[EmotionFear])*50, 0, 100)
}
