package agents

import "github.com/talgya/mini-world/internal/world"

// TimePreference gates when an animal prefers to be active (§3).
type TimePreference uint8

const (
	PreferDay TimePreference = iota
	PreferNight
	PreferAny
)

// AnimalState is the closed behavior-state set an animal occupies (§3).
type AnimalState uint8

const (
	AnimalIdle AnimalState = iota
	AnimalMoving
	AnimalHunting
	AnimalFleeing
	AnimalResting
	AnimalDrinking
	AnimalReturningHome
)

func (s AnimalState) String() string {
	switch s {
	case AnimalIdle:
		return "idle"
	case AnimalMoving:
		return "moving"
	case AnimalHunting:
		return "hunting"
	case AnimalFleeing:
		return "fleeing"
	case AnimalResting:
		return "resting"
	case AnimalDrinking:
		return "drinking"
	case AnimalReturningHome:
		return "returning_home"
	default:
		return "idle"
	}
}

// Diet distinguishes predator/prey attack behavior; supplements the
// source's species tables without requiring a full species enum (§9).
type Diet uint8

const (
	DietHerbivore Diet = iota
	DietCarnivore
	DietOmnivore
)

// Animal is the Entity variant modeling wildlife (§3, §4.8).
type Animal struct {
	Header

	Species string
	Diet    Diet

	IsPredator bool
	IsPrey     bool

	PreferredBiomes []world.Biome
	PreferredTime   TimePreference
	HomeLocation    world.Vec2

	Needs AnimalNeeds

	State            AnimalState
	BehaviorCooldown float64

	KnownFoodSources  []world.Vec2
	KnownWaterSources []world.Vec2

	StatusEffects StatusEffects
}

// NewAnimal constructs an animal at pos with default needs.
func NewAnimal(id ID, pos world.Vec2, species string, diet Diet) *Animal {
	return &Animal{
		Header:       NewHeader(id, KindAnimal, pos),
		Species:      species,
		Diet:         diet,
		IsPredator:   diet == DietCarnivore,
		IsPrey:       diet != DietCarnivore,
		HomeLocation: pos,
		Needs:        NewAnimalNeeds(),
		State:        AnimalIdle,
	}
}

// AttackDamage returns base predator attack damage, with species-specific
// overrides (§4.8: "base damage 20 (wolf 25, bear 30)").
func (a *Animal) AttackDamage() float64 {
	switch a.Species {
	case "wolf":
		return 25
	case "bear":
		return 30
	default:
		return 20
	}
}

// DecayNeeds applies per-second need decay.
func (a *Animal) DecayNeeds(dt float64) {
	a.Needs.Decay(dt)
}

// IsFarFromHome reports whether the animal is beyond threshold world units
// from its home location.
func (a *Animal) IsFarFromHome(threshold float64) bool {
	return world.Distance(a.Pos, a.HomeLocation) > threshold
}

// Behavior tuning constants (§4.8).
const (
	fleeDetectionRange  = 96.0 // predator must be within this range to trigger fleeing
	animalCriticalFloor = 20.0 // rest/thirst below this counts as critical
	animalHungerFloor   = 50.0 // hunger below this sends prey toward known food
	returnHomeDistance  = 150.0
	behaviorCommitTime  = 2.0 // seconds a newly chosen state sticks before reassessment
	knownSourceCap      = 5
)

// AnimalContext is the nearby-world snapshot the engine assembles each tick
// for one animal's behavior decision (built from spatial queries the
// agents package has no access to — mirrors thought.Context for humans).
type AnimalContext struct {
	IsPreferredTime bool
	IsNight         bool

	NearestPredatorID   *ID
	NearestPredatorPos  *world.Vec2
	NearestPredatorDist float64

	NearestPreyID  *ID
	NearestPreyPos *world.Vec2

	NearestFoodPos  *world.Vec2
	NearestWaterPos *world.Vec2
}

// AssessThreats reports whether a should flee given ctx (§4.8: fleeing
// takes precedence over every other behavior).
func (a *Animal) AssessThreats(ctx AnimalContext) bool {
	return a.IsPrey && ctx.NearestPredatorPos != nil && ctx.NearestPredatorDist <= fleeDetectionRange
}

// DecideBehavior applies the closed behavior-state precedence (§4.8):
// fleeing > resting (wrong time of day) > critical rest/drink > predator
// hunt | prey gather > return-home (night, far from home) > idle/move. A
// freshly chosen state sticks for BehaviorCooldown seconds before the next
// reassessment, so animals don't flicker between states every tick.
func (a *Animal) DecideBehavior(ctx AnimalContext, threatened bool) {
	if a.BehaviorCooldown > 0 {
		return
	}

	next := AnimalIdle
	switch {
	case threatened:
		next = AnimalFleeing
	case !ctx.IsPreferredTime:
		next = AnimalResting
	case a.Needs.Rest < animalCriticalFloor:
		next = AnimalResting
	case a.Needs.Thirst < animalCriticalFloor:
		next = AnimalDrinking
	case a.IsPredator && ctx.NearestPreyPos != nil:
		next = AnimalHunting
	case a.IsPrey && a.Needs.Hunger < animalHungerFloor && ctx.NearestFoodPos != nil:
		next = AnimalMoving
	case ctx.IsNight && a.IsFarFromHome(returnHomeDistance):
		next = AnimalReturningHome
	}

	a.State = next
	a.BehaviorCooldown = behaviorCommitTime
}

// TickBehaviorCooldown decrements the commit timer that keeps a freshly
// chosen state from being re-evaluated every tick.
func (a *Animal) TickBehaviorCooldown(dt float64) {
	a.BehaviorCooldown -= dt
	if a.BehaviorCooldown < 0 {
		a.BehaviorCooldown = 0
	}
}

// UpdateAwareness folds ctx's currently visible food/water sources into the
// animal's remembered sources, bounded to the most recently seen few (§3:
// known_food_sources/known_water_sources).
func (a *Animal) UpdateAwareness(ctx AnimalContext) {
	if ctx.NearestFoodPos != nil {
		a.KnownFoodSources = pushKnownSource(a.KnownFoodSources, *ctx.NearestFoodPos)
	}
	if ctx.NearestWaterPos != nil {
		a.KnownWaterSources = pushKnownSource(a.KnownWaterSources, *ctx.NearestWaterPos)
	}
}

func pushKnownSource(known []world.Vec2, pos world.Vec2) []world.Vec2 {
	for _, p := range known {
		if p == pos {
			return known
		}
	}
	known = append(known, pos)
	if len(known) > knownSourceCap {
		known = known[1:]
	}
	return known
}
