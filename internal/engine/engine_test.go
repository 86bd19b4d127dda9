package engine

import (
	"testing"

	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/clock"
	"github.com/talgya/mini-world/internal/world"
)

func newTestWorld(seed int64) *World {
	return NewWorld(DefaultConfig(seed), nil)
}

// TestPauseScenario is S2: speed=paused, tick 100x with dt=0.1; day/hour/
// minute and entity positions stay unchanged.
func TestPauseScenario(t *testing.T) {
	w := newTestWorld(1)
	w.SetTimeSpeed(clock.SpeedPaused)

	id, err := w.AddHuman(world.Vec2{X: 5, Y: 5})
	if err != nil {
		t.Fatalf("expected human to be added, got %v", err)
	}
	w.processEntityChanges()
	startPos := w.Humans[id].Pos

	for i := 0; i < 100; i++ {
		w.Tick(0.1, world.Vec2{}, 1.0)
	}

	ts := w.GetTimeState()
	if ts.Day != 0 || ts.Hour != 0 || ts.Minute != 0 {
		t.Fatalf("expected paused clock unchanged, got day=%d hour=%d minute=%d", ts.Day, ts.Hour, ts.Minute)
	}
	if w.Humans[id].Pos != startPos {
		t.Fatalf("expected entity position unchanged while paused")
	}
}

// TestChunkMigrationScenario is S5: a human near a chunk boundary moving
// at chunk_world/s should cross into the next chunk after one second, and
// the old chunk must no longer list it.
func TestChunkMigrationScenario(t *testing.T) {
	w := newTestWorld(2)
	startX := 0.95 * world.ChunkWorldSize
	id, _ := w.AddHuman(world.Vec2{X: startX, Y: 0})
	w.processEntityChanges()

	h := w.Humans[id]
	h.Velocity = world.Vec2{X: world.ChunkWorldSize, Y: 0}
	oldChunk := world.ChunkForPosition(h.Pos)

	w.Tick(1, world.Vec2{}, 1.0)

	newChunk := world.ChunkForPosition(w.Humans[id].Pos)
	if newChunk.X != oldChunk.X+1 {
		t.Fatalf("expected chunk x to advance by 1, old=%v new=%v", oldChunk, newChunk)
	}
	if c := w.Index.Chunk(oldChunk); c != nil {
		for _, eid := range c.Entities() {
			if agents.ID(eid) == id {
				t.Fatalf("old chunk still lists migrated entity")
			}
		}
	}
}

// TestChunkEntityConsistency is invariant 3: after every tick, every
// entity belongs to exactly the chunk that floor(pos/chunk_world_size)
// names.
func TestChunkEntityConsistency(t *testing.T) {
	w := newTestWorld(3)
	id, _ := w.AddHuman(world.Vec2{X: 10, Y: 10})
	w.processEntityChanges()
	w.Humans[id].Velocity = world.Vec2{X: 50, Y: 30}

	for i := 0; i < 20; i++ {
		w.Tick(1, world.Vec2{}, 1.0)
		h := w.Humans[id]
		want := world.ChunkForPosition(h.Pos)
		c := w.Index.Chunk(want)
		if c == nil {
			t.Fatalf("expected chunk %v to exist", want)
		}
		found := false
		for _, eid := range c.Entities() {
			if agents.ID(eid) == id {
				found = true
			}
		}
		if !found {
			t.Fatalf("entity %v not found in its own chunk %v at tick %d", id, want, i)
		}
	}
}

// TestActiveSetClosure is invariant 4: every active entity is in an active
// chunk, and every active chunk is within view distance of the viewport.
func TestActiveSetClosure(t *testing.T) {
	w := newTestWorld(4)
	id, _ := w.AddHuman(world.Vec2{X: 0, Y: 0})
	w.processEntityChanges()

	w.Tick(1, world.Vec2{}, 1.0)

	h := w.Humans[id]
	if !h.Active {
		t.Fatalf("expected human near viewport origin to be active")
	}
	chunkCoord := world.ChunkForPosition(h.Pos)
	if world.ChunkDistance(chunkCoord, world.ChunkForPosition(world.Vec2{})) > w.viewDistance {
		t.Fatalf("active entity's chunk is outside view distance")
	}
}

// TestTimeMonotonic is invariant 7.
func TestTimeMonotonic(t *testing.T) {
	w := newTestWorld(5)
	prev := w.Time.Elapsed
	for i := 0; i < 200; i++ {
		w.Tick(0.5, world.Vec2{}, 1.0)
		if w.Time.Elapsed < prev {
			t.Fatalf("elapsed seconds decreased")
		}
		prev = w.Time.Elapsed
	}
}

// TestDeterministicSimulation is invariant 2: two worlds built from equal
// seed/dt sequences produce identical snapshots at every tick.
func TestDeterministicSimulation(t *testing.T) {
	run := func(seed int64) (float64, float64, int) {
		w := newTestWorld(seed)
		id, _ := w.AddHuman(world.Vec2{X: 3, Y: 3})
		w.processEntityChanges()
		for i := 0; i < 50; i++ {
			w.Tick(0.25, world.Vec2{}, 1.0)
		}
		h := w.Humans[id]
		return h.Pos.X, h.Needs.Hunger, w.Time.Day
	}

	ax, ah, ad := run(99)
	bx, bh, bd := run(99)
	if ax != bx || ah != bh || ad != bd {
		t.Fatalf("same seed diverged: (%v,%v,%v) vs (%v,%v,%v)", ax, ah, ad, bx, bh, bd)
	}
}

// TestSafeUpdateIsolatesPanickingEntity verifies a panicking per-entity
// update doesn't abort the tick for other entities (§7).
func TestSafeUpdateIsolatesPanickingEntity(t *testing.T) {
	w := newTestWorld(6)
	ranAfter := false
	w.safeUpdate("test", 1, func() { panic("boom") })
	w.safeUpdate("test", 2, func() { ranAfter = true })
	if !ranAfter {
		t.Fatalf("expected update after a panicking one to still run")
	}
}

func TestRemoveEntityRejectsUnknownID(t *testing.T) {
	w := newTestWorld(8)
	if err := w.RemoveEntity(agents.ID(999)); err != ErrEntityNotFound {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestAddHumanRespectsCapacity(t *testing.T) {
	w := newTestWorld(7)
	w.pendingAdds = make([]pendingAdd, maxPendingAdds)
	_, err := w.AddHuman(world.Vec2{})
	if err != ErrCapacityExceeded {
		t.Fatalf("expected AddHuman to reject once the pending queue is full, got %v", err)
	}
}
