package agents

import (
	"sort"

	"github.com/talgya/mini-world/internal/world"
)

// ActionType is the closed set of executable actions, mirroring entity
// states (§4.7, §9).
type ActionType uint8

const (
	ActionIdle ActionType = iota
	ActionWalk
	ActionRun
	ActionWork
	ActionRest
	ActionSleep
	ActionInteract
	ActionCraft
	ActionGather
	ActionFight
	ActionMove
)

func (t ActionType) String() string {
	switch t {
	case ActionIdle:
		return "idle"
	case ActionWalk:
		return "walk"
	case ActionRun:
		return "run"
	case ActionWork:
		return "work"
	case ActionRest:
		return "rest"
	case ActionSleep:
		return "sleep"
	case ActionInteract:
		return "interact"
	case ActionCraft:
		return "craft"
	case ActionGather:
		return "gather"
	case ActionFight:
		return "fight"
	case ActionMove:
		return "move"
	default:
		return "idle"
	}
}

// actionDef carries the per-type energy cost, duration range, and cooldown
// (§4.7). No allowed-successor set is modelled: any action type may follow
// any other.
type actionDef struct {
	EnergyCost  float64
	DurationMin float64
	DurationMax float64
	Cooldown    float64
}

var actionDefs = map[ActionType]actionDef{
	ActionIdle:     {EnergyCost: 0, DurationMin: 1, DurationMax: 3, Cooldown: 0},
	ActionWalk:     {EnergyCost: 1, DurationMin: 1, DurationMax: 10, Cooldown: 0},
	ActionRun:      {EnergyCost: 3, DurationMin: 1, DurationMax: 6, Cooldown: 1},
	ActionWork:     {EnergyCost: 5, DurationMin: 10, DurationMax: 60, Cooldown: 2},
	ActionRest:     {EnergyCost: -10, DurationMin: 5, DurationMax: 30, Cooldown: 5},
	ActionSleep:    {EnergyCost: -40, DurationMin: 60, DurationMax: 480, Cooldown: 30},
	ActionInteract: {EnergyCost: 1, DurationMin: 1, DurationMax: 5, Cooldown: 3},
	ActionCraft:    {EnergyCost: 8, DurationMin: 5, DurationMax: 30, Cooldown: 5},
	ActionGather:   {EnergyCost: 4, DurationMin: 3, DurationMax: 15, Cooldown: 2},
	ActionFight:    {EnergyCost: 10, DurationMin: 2, DurationMax: 8, Cooldown: 10},
	ActionMove:     {EnergyCost: 1, DurationMin: 1, DurationMax: 10, Cooldown: 0},
}

// EnergyCost returns the energy_cost for t (§4.7).
func (t ActionType) EnergyCost() float64 { return actionDefs[t].EnergyCost }

// DurationRange returns the [min,max] simulated-second duration range for t.
func (t ActionType) DurationRange() (float64, float64) {
	d := actionDefs[t]
	return d.DurationMin, d.DurationMax
}

// Action is a queued or running operation derived from a thought (§4.7).
type Action struct {
	Type     ActionType
	Priority float64
	Target   *ID
	// TargetPos is a raw world-space destination, used when the action's
	// destination isn't another entity (e.g. a home location or a
	// sheltered tile) and so has no ID to resolve against.
	TargetPos *world.Vec2
	Recipe    string
	Reason    string

	NextAction *ActionType

	Duration          float64
	RemainingDuration float64
	Started           bool
}

// ActionState holds one human's action queue, running action, and
// per-type cooldowns.
type ActionState struct {
	Queue     []Action
	Current   *Action
	Cooldowns map[ActionType]float64
}

// QueueAction inserts a in priority order (highest-priority at head),
// ignoring it entirely if that type is on cooldown (§4.7).
func (s *ActionState) QueueAction(a Action) {
	if s.Cooldowns != nil && s.Cooldowns[a.Type] > 0 {
		return
	}
	s.Queue = append(s.Queue, a)
	sort.SliceStable(s.Queue, func(i, j int) bool {
		return s.Queue[i].Priority > s.Queue[j].Priority
	})
}

// TickCooldowns decrements every active cooldown by dt.
func (s *ActionState) TickCooldowns(dt float64) {
	for t, remaining := range s.Cooldowns {
		remaining -= dt
		if remaining <= 0 {
			delete(s.Cooldowns, t)
		} else {
			s.Cooldowns[t] = remaining
		}
	}
}

// SetCooldown puts a type on cooldown for its declared duration.
func (s *ActionState) SetCooldown(t ActionType) {
	if s.Cooldowns == nil {
		s.Cooldowns = make(map[ActionType]float64)
	}
	s.Cooldowns[t] = actionDefs[t].Cooldown
}

// PopNext removes and returns the highest-priority queued action, or false
// if the queue is empty. The caller is responsible for checking
// prerequisites before committing to it as Current.
func (s *ActionState) PopNext() (Action, bool) {
	if len(s.Queue) == 0 {
		return Action{}, false
	}
	a := s.Queue[0]
	s.Queue = s.Queue[1:]
	return a, true
}
