package persistence

import (
	"path/filepath"
	"testing"

	"github.com/talgya/mini-world/internal/engine"
	"github.com/talgya/mini-world/internal/world"
)

func TestSaveAndLoadSnapshotRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshot.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	w := engine.NewWorld(engine.DefaultConfig(7), nil)
	id, err := w.AddHuman(world.Vec2{X: 12, Y: 34})
	if err != nil {
		t.Fatalf("add human: %v", err)
	}
	if _, err := w.AddResource(world.Vec2{X: 56, Y: 78}, world.ResourceBerry, 20, 0.9); err != nil {
		t.Fatalf("add resource: %v", err)
	}
	w.Tick(1, world.Vec2{}, 1.0) // drains pending adds, advances clock/weather

	runID, err := db.SaveSnapshot(w)
	if err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	if runID == "" {
		t.Fatalf("expected a non-empty run id")
	}

	data, err := db.LoadSnapshot(runID)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}

	if len(data.Humans) != 1 {
		t.Fatalf("expected 1 human in snapshot, got %d", len(data.Humans))
	}
	if data.Humans[0].ID != id {
		t.Fatalf("human id mismatch: got %v want %v", data.Humans[0].ID, id)
	}
	if len(data.Resources) != 1 {
		t.Fatalf("expected 1 resource in snapshot, got %d", len(data.Resources))
	}
	if data.Time.Elapsed != w.GetTimeState().Elapsed {
		t.Fatalf("elapsed mismatch: got %v want %v", data.Time.Elapsed, w.GetTimeState().Elapsed)
	}
	if data.Seed != 7 {
		t.Fatalf("expected seed to round-trip, got %d", data.Seed)
	}

	restored := engine.NewWorld(engine.DefaultConfig(7), nil)
	restored.Restore(data)
	if len(restored.Humans) != 1 {
		t.Fatalf("expected restored world to have 1 human, got %d", len(restored.Humans))
	}
	if _, ok := restored.Humans[id]; !ok {
		t.Fatalf("expected restored world to contain human id %v", id)
	}
}

func TestLatestRunIDEmptyWhenNoRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	id, err := db.LatestRunID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty run id, got %q", id)
	}
}
