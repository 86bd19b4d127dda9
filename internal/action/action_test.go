package action

import (
	"math/rand"
	"testing"

	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/world"
)

type fakeWorld struct {
	resources map[agents.ID]*agents.Resource
	humans    map[agents.ID]*agents.Human
	weatherMod float64
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		resources:  make(map[agents.ID]*agents.Resource),
		humans:     make(map[agents.ID]*agents.Human),
		weatherMod: 1.0,
	}
}

func (w *fakeWorld) TileAt(pos world.Vec2) world.Tile { return world.Tile{Walkable: true} }
func (w *fakeWorld) InBounds(pos world.Vec2) bool     { return true }
func (w *fakeWorld) ResourceAt(id agents.ID) (*agents.Resource, bool) {
	r, ok := w.resources[id]
	return r, ok
}
func (w *fakeWorld) HumanAt(id agents.ID) (*agents.Human, bool) {
	h, ok := w.humans[id]
	return h, ok
}
func (w *fakeWorld) WeatherMovementMod() float64 { return w.weatherMod }

// TestGatherScenario is the S4 seed scenario: a human with hunger satisfaction
// 10 (low need value => urgent) and a berry resource in range; after a gather
// action completes, hunger improves and inventory holds the item.
func TestGatherScenario(t *testing.T) {
	w := newFakeWorld()
	h := agents.NewHuman(1, world.Vec2{})
	h.Needs.Hunger = 10 // i.e. need value low -> the S4 "needs.hunger=90" urgency reading

	berryID := agents.ID(2)
	res := agents.NewResource(berryID, world.Vec2{}, world.ResourceBerry, 50, 0.9)
	w.resources[berryID] = res

	rng := rand.New(rand.NewSource(1))
	h.Actions.QueueAction(agents.Action{Type: agents.ActionGather, Priority: 1, Target: &berryID})

	Tick(w, h, 1, 0, rng)
	if h.Actions.Current == nil {
		t.Fatalf("expected gather action to start")
	}

	for i := 0; i < 100 && h.Actions.Current != nil; i++ {
		Tick(w, h, 1, float64(i), rng)
	}

	if h.Needs.Hunger <= 10 {
		t.Fatalf("expected hunger to improve after gathering, got %v", h.Needs.Hunger)
	}
	if !h.Inventory.Has("berry", 1) {
		t.Fatalf("expected inventory to contain harvested berries: %+v", h.Inventory)
	}
	if res.Quantity >= 50 {
		t.Fatalf("expected resource quantity to decrease, got %v", res.Quantity)
	}
}

func TestGatherPrerequisiteFailsOnDepletedResource(t *testing.T) {
	w := newFakeWorld()
	h := agents.NewHuman(1, world.Vec2{})
	berryID := agents.ID(2)
	res := agents.NewResource(berryID, world.Vec2{}, world.ResourceBerry, 10, 0.9)
	res.IsDepleted = true
	w.resources[berryID] = res

	ok := Prerequisites(w, h, agents.Action{Type: agents.ActionGather, Target: &berryID})
	if ok {
		t.Fatalf("expected gather on depleted resource to fail prerequisites")
	}
}

func TestInteractRequiresRange(t *testing.T) {
	w := newFakeWorld()
	h := agents.NewHuman(1, world.Vec2{})
	otherID := agents.ID(2)
	other := agents.NewHuman(otherID, world.Vec2{X: 1000, Y: 1000})
	w.humans[otherID] = other

	ok := Prerequisites(w, h, agents.Action{Type: agents.ActionInteract, Target: &otherID})
	if ok {
		t.Fatalf("expected interact to fail prerequisites when target is out of range")
	}
}

func TestInteractCompleteEffectsBumpsRelationship(t *testing.T) {
	w := newFakeWorld()
	h := agents.NewHuman(1, world.Vec2{})
	otherID := agents.ID(2)
	w.humans[otherID] = agents.NewHuman(otherID, world.Vec2{})

	CompleteEffects(w, h, agents.Action{Type: agents.ActionInteract, Target: &otherID, Reason: "help"}, 0)
	r := h.Relationships[otherID]
	if r == nil || r.Value != 10 {
		t.Fatalf("expected help interaction to set relationship value to 10, got %+v", r)
	}
}

func TestUnmetPrerequisiteDropsActionSilently(t *testing.T) {
	w := newFakeWorld()
	h := agents.NewHuman(1, world.Vec2{})
	rng := rand.New(rand.NewSource(2))

	missing := agents.ID(99)
	h.Actions.QueueAction(agents.Action{Type: agents.ActionGather, Priority: 5, Target: &missing})
	h.Actions.QueueAction(agents.Action{Type: agents.ActionIdle, Priority: 1})

	Tick(w, h, 1, 0, rng)
	if h.Actions.Current == nil || h.Actions.Current.Type != agents.ActionIdle {
		t.Fatalf("expected the invalid gather to be dropped and idle to start, got %+v", h.Actions.Current)
	}
}
