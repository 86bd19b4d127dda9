package agents

import "github.com/talgya/mini-world/internal/world"

// DaySegment is a coarse slice of the day used to key the daily schedule
// (§9 open question: the segment form was chosen over hour→task).
type DaySegment uint8

const (
	SegmentNight DaySegment = iota
	SegmentMorning
	SegmentAfternoon
	SegmentEvening
)

// SegmentForProgress maps a clock day_progress in [0,1) to its segment.
func SegmentForProgress(dayProgress float64) DaySegment {
	switch {
	case dayProgress < 0.22:
		return SegmentNight
	case dayProgress < 0.5:
		return SegmentMorning
	case dayProgress < 0.78:
		return SegmentAfternoon
	default:
		return SegmentEvening
	}
}

// Schedule maps a day segment to the activity names a human defaults to
// absent a higher-priority queued action (§3, §4.8).
type Schedule map[DaySegment][]string

// DefaultSchedule is a reasonable general-purpose schedule assigned to
// humans that don't have an occupation-specific one.
func DefaultSchedule() Schedule {
	return Schedule{
		SegmentNight:     {"sleep"},
		SegmentMorning:   {"work", "gather"},
		SegmentAfternoon: {"work", "socialize"},
		SegmentEvening:   {"rest", "socialize"},
	}
}

// Genders is the closed demographic vocabulary new humans are assigned
// from; carried as opaque data the Thought System never branches on.
var Genders = []string{"female", "male", "nonbinary"}

// Human is the Entity variant modeling a person (§3, §4.8).
type Human struct {
	Header

	Name   string
	Age    int
	Gender string

	// FacingDirection is the last nonzero movement direction, carried for
	// an external renderer's sprite selection; the core only maintains it.
	FacingDirection world.Vec2

	Needs       HumanNeeds
	Personality Personality
	Mood        Mood
	Emotion     EmotionVector

	Relationships map[ID]*Relationship
	Memory        MemoryStream

	Inventory Inventory
	Skills    SkillSet

	Schedule Schedule

	CurrentThought Thought
	ThoughtTimer   float64
	ThoughtHistory ThoughtHistory

	Actions ActionState

	StatusEffects StatusEffects

	Level      int
	Experience int

	HomeLocation world.Vec2
	FarFromHome  bool
}

// NewHuman constructs a human at pos with default needs/personality/schedule.
func NewHuman(id ID, pos world.Vec2) *Human {
	h := &Human{
		Header:        NewHeader(id, KindHuman, pos),
		Needs:         NewHumanNeeds(),
		Relationships: make(map[ID]*Relationship),
		Skills:        make(SkillSet),
		Schedule:      DefaultSchedule(),
		HomeLocation:  pos,
		Level:         1,
	}
	h.Mood = DeriveMood(&h.Needs)
	return h
}

// RelationshipWith returns (creating if absent) the relationship toward
// other, initialized at first co-proximity (§3).
func (h *Human) RelationshipWith(other ID, now float64, compatibility float64) *Relationship {
	if r, ok := h.Relationships[other]; ok {
		return r
	}
	r := NewRelationship(now, compatibility)
	h.Relationships[other] = &r
	return &r
}

// DecayNeeds applies need decay and the critical-need health drain
// (§4.8: "Critical need (>80) drains health at 5 units/s"). Needs are stored
// as satisfaction levels, so being more than 80 depleted corresponds to a
// need value below 100-80=20, which is what AnyCritical checks.
func (h *Human) DecayNeeds(dt float64, peersNearby bool) {
	h.Needs.Decay(dt, peersNearby)
	if h.Needs.AnyCritical() {
		h.Health = clamp(h.Health-criticalHealthDrain*dt, 0, h.MaxHealth)
	}
}

// UpdateStats recomputes mood and emotion for dt seconds.
func (h *Human) UpdateStats(dt float64, now float64) {
	h.Mood = DeriveMood(&h.Needs)
	h.Emotion.Decay(dt, h.Personality.Neuroticism)
	if h.Needs.AnyCritical() {
		h.Emotion.PushCritical(dt, h.Personality.Neuroticism)
	} else if h.Needs.OverallHigh() {
		h.Emotion.PushSatisfied(dt)
	}
	h.Memory.Expire(now)
	push := h.Memory.EmotionalPush(now)
	for i := range h.Emotion {
		h.Emotion[i] = clamp(h.Emotion[i]+push[i]*dt*0.1, 0, 1)
	}
}

// UpdateStatusEffects ticks down and expires status effects.
func (h *Human) UpdateStatusEffects(dt float64) {
	h.StatusEffects.Tick(dt)
}

// UpdateRelationships decays every relationship toward zero.
func (h *Human) UpdateRelationships(dt float64) {
	for _, r := range h.Relationships {
		r.Decay(dt)
	}
}

// CheckLevelUp applies the experience->level transition (§4.8).
func (h *Human) CheckLevelUp() {
	for h.Experience >= h.Level*100 {
		h.Level++
		h.MaxHealth += 10
		h.MaxEnergy += 5
		h.Health = h.MaxHealth
		h.Energy = h.MaxEnergy
		h.StatusEffects.Apply("inspired", 300, nil)
	}
}

// OverallHigh reports whether needs are, on average, well satisfied
// (used to decide whether happiness should rise this tick).
func (n *HumanNeeds) OverallHigh() bool {
	avg := (n.Hunger + n.Thirst + n.Energy + n.Social + n.Comfort + n.Safety) / 6
	return avg >= 80
}
