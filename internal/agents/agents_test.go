package agents

import (
	"testing"

	"github.com/talgya/mini-world/internal/world"
)

func TestHumanNeedsStayInBounds(t *testing.T) {
	h := NewHuman(1, world.Vec2{})
	for i := 0; i < 10000; i++ {
		h.DecayNeeds(1, false)
		if h.Health < 0 || h.Health > h.MaxHealth {
			t.Fatalf("health out of bounds: %v (max %v)", h.Health, h.MaxHealth)
		}
	}
	for _, v := range []float64{h.Needs.Hunger, h.Needs.Thirst, h.Needs.Energy, h.Needs.Social, h.Needs.Comfort, h.Needs.Safety} {
		if v < 0 || v > 100 {
			t.Fatalf("need out of [0,100]: %v", v)
		}
	}
}

func TestSocialNeedRisesWithPeers(t *testing.T) {
	h := NewHuman(1, world.Vec2{})
	h.Needs.Social = 50
	h.DecayNeeds(10, true)
	if h.Needs.Social <= 50 {
		t.Fatalf("expected social need to rise with peers present, got %v", h.Needs.Social)
	}
}

func TestRelationshipDecayScenario(t *testing.T) {
	// S6: two humans interact once (chat +5); relationship becomes 5;
	// after 60s with no further interaction, value is in (0,5) and
	// trending to 0; after 600s, within 0.5 of 0.
	r := NewRelationship(0, 0.5)
	r.Interact(0, 5)
	if r.Value != 5 {
		t.Fatalf("expected value 5 after chat, got %v", r.Value)
	}

	r.Decay(60)
	if !(r.Value > 0 && r.Value < 5) {
		t.Fatalf("expected value in (0,5) after 60s decay, got %v", r.Value)
	}

	r.Decay(540) // bring total elapsed to 600s
	if r.Value < -0.5 || r.Value > 0.5 {
		t.Fatalf("expected value within 0.5 of 0 after 600s, got %v", r.Value)
	}
}

func TestRelationshipBoundedAndMonotonicDecay(t *testing.T) {
	r := NewRelationship(0, 0.5)
	r.Interact(0, 1000) // attempt to exceed bound
	if r.Value > RelationMax {
		t.Fatalf("value exceeded max: %v", r.Value)
	}
	r.Interact(0, -5000)
	if r.Value < RelationMin {
		t.Fatalf("value exceeded min: %v", r.Value)
	}

	r2 := NewRelationship(0, 0.5)
	r2.Interact(0, 80)
	prev := r2.Value
	for i := 0; i < 50; i++ {
		r2.Decay(1)
		if r2.Value > prev {
			t.Fatalf("relationship value increased during decay")
		}
		prev = r2.Value
	}
}

func TestRelationshipTypeRederivation(t *testing.T) {
	r := NewRelationship(0, 0.5)
	r.Interact(0, 60)
	if r.Type != RelationFriend {
		t.Fatalf("expected friend at value 60, got %v", r.Type)
	}
	r.Interact(0, -200)
	if r.Type != RelationDislike {
		t.Fatalf("expected dislike at value %v, got %v", r.Value, r.Type)
	}
}

func TestMemoryFIFOBound(t *testing.T) {
	var m MemoryStream
	for i := 0; i < MaxMemories+20; i++ {
		m.Add(Memory{Time: float64(i), Duration: 1000, Type: "event"})
	}
	if m.Len() != MaxMemories {
		t.Fatalf("expected memory stream capped at %d, got %d", MaxMemories, m.Len())
	}
	recent := m.Recent(1)
	if recent[0].Time != float64(MaxMemories+19) {
		t.Fatalf("expected most recent memory retained, got %+v", recent[0])
	}
}

func TestMemoryExpiry(t *testing.T) {
	var m MemoryStream
	m.Add(Memory{Time: 0, Duration: 10, Type: "short"})
	m.Add(Memory{Time: 0, Duration: 1000, Type: "long"})
	m.Expire(20)
	if m.Len() != 1 {
		t.Fatalf("expected only the long-lived memory to remain, got %d", m.Len())
	}
}

func TestCheckLevelUp(t *testing.T) {
	h := NewHuman(1, world.Vec2{})
	h.Experience = 250
	h.CheckLevelUp()
	if h.Level != 3 {
		t.Fatalf("expected level 3 after 250 experience, got %d", h.Level)
	}
	if !h.StatusEffects.Has("inspired") {
		t.Fatalf("expected inspired status effect after level up")
	}
}

func TestResourceHarvestConservation(t *testing.T) {
	r := NewResource(1, world.Vec2{}, world.ResourceTree, 100, 0.9)
	total := 0.0
	for i := 0; i < 20; i++ {
		total += r.Harvest(10, 0.8)
	}
	if total > 100 {
		t.Fatalf("harvested more than the resource ever held: %v", total)
	}
	if r.Quantity < 0 {
		t.Fatalf("quantity went negative: %v", r.Quantity)
	}
	if r.IsDepleted && r.Quantity != 0 {
		t.Fatalf("depleted resource should have zero quantity")
	}
}

func TestResourceRegenerationAfterDelay(t *testing.T) {
	r := NewResource(1, world.Vec2{}, world.ResourceBerry, 10, 0.9)
	r.Harvest(10, 1.0)
	if !r.IsDepleted {
		t.Fatalf("expected resource to be depleted")
	}
	r.DepletionTime = 0
	r.Regenerate(1, 1, 1) // before delay elapses
	if !r.IsDepleted {
		t.Fatalf("resource should not regenerate before its delay elapses")
	}
	r.Regenerate(1, r.RegenerationDelay(1)+1, 1)
	if r.IsDepleted {
		t.Fatalf("expected resource to begin regenerating after its delay")
	}
}

func TestAnimalAttackDamageBySpecies(t *testing.T) {
	wolf := NewAnimal(1, world.Vec2{}, "wolf", DietCarnivore)
	bear := NewAnimal(2, world.Vec2{}, "bear", DietCarnivore)
	fox := NewAnimal(3, world.Vec2{}, "fox", DietCarnivore)

	if wolf.AttackDamage() != 25 {
		t.Fatalf("expected wolf damage 25, got %v", wolf.AttackDamage())
	}
	if bear.AttackDamage() != 30 {
		t.Fatalf("expected bear damage 30, got %v", bear.AttackDamage())
	}
	if fox.AttackDamage() != 20 {
		t.Fatalf("expected default damage 20, got %v", fox.AttackDamage())
	}
}

func TestPlantGrowthClampsAtOne(t *testing.T) {
	p := NewPlant(1, world.Vec2{}, PlantTree, 0.1)
	for i := 0; i < 1000; i++ {
		p.Grow(1)
	}
	if p.GrowthStage != 1.0 {
		t.Fatalf("expected growth stage clamped to 1.0, got %v", p.GrowthStage)
	}
	if !p.Mature() {
		t.Fatalf("expected plant to be mature")
	}
}

func TestActionStateQueuePriorityOrder(t *testing.T) {
	var s ActionState
	s.QueueAction(Action{Type: ActionWalk, Priority: 1})
	s.QueueAction(Action{Type: ActionGather, Priority: 5})
	s.QueueAction(Action{Type: ActionRest, Priority: 3})

	first, ok := s.PopNext()
	if !ok || first.Type != ActionGather {
		t.Fatalf("expected highest-priority action first, got %+v", first)
	}
	second, _ := s.PopNext()
	if second.Type != ActionRest {
		t.Fatalf("expected second-highest priority next, got %+v", second)
	}
}

func TestActionStateCooldownSuppressesQueue(t *testing.T) {
	var s ActionState
	s.SetCooldown(ActionFight)
	s.QueueAction(Action{Type: ActionFight, Priority: 10})
	if len(s.Queue) != 0 {
		t.Fatalf("expected action on cooldown to be ignored")
	}
}
