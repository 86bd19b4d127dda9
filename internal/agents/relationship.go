package agents

import "math"

// RelationType is re-derived from a relationship's value each time it
// changes (§4.6): it is never stored independently of value.
type RelationType uint8

const (
	RelationNeutral RelationType = iota
	RelationFriend
	RelationDislike
)

func (t RelationType) String() string {
	switch t {
	case RelationFriend:
		return "friend"
	case RelationDislike:
		return "dislike"
	default:
		return "neutral"
	}
}

// relationshipDecayRate is the per-second pull toward zero absent
// interaction (§8 invariant 8, §3).
const relationshipDecayRate = 0.1

// Relationship bound, per invariant 8.
const (
	RelationMin = -100.0
	RelationMax = 100.0
)

// Relationship is the social bond one human holds toward another entity.
type Relationship struct {
	Value              float64
	Type               RelationType
	LastInteractionTime float64
	Compatibility      float64 // fixed at first co-proximity, influences interaction magnitude
}

// NewRelationship initializes a relationship at first co-proximity (§3).
// Compatibility is a stable per-pair scalar in [0,1] supplied by the
// caller (typically derived from both agents' personalities).
func NewRelationship(now float64, compatibility float64) Relationship {
	return Relationship{Type: RelationNeutral, LastInteractionTime: now, Compatibility: compatibility}
}

// Decay pulls Value exponentially toward zero (time constant
// 1/relationshipDecayRate seconds) and re-derives Type. Exponential rather
// than linear decay means Value approaches but never overshoots zero.
func (r *Relationship) Decay(dt float64) {
	r.Value *= math.Exp(-relationshipDecayRate * dt)
	r.rederiveType()
}

// Interact bumps Value by delta (e.g. +5 chat, +10 help per §4.7), bounds
// it, records the interaction time, and re-derives Type.
func (r *Relationship) Interact(now float64, delta float64) {
	r.Value = clamp(r.Value+delta, RelationMin, RelationMax)
	r.LastInteractionTime = now
	r.rederiveType()
}

func (r *Relationship) rederiveType() {
	switch {
	case r.Value >= 50:
		r.Type = RelationFriend
	case r.Value <= -50:
		r.Type = RelationDislike
	default:
		r.Type = RelationNeutral
	}
}
