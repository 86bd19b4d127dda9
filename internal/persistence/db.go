// Package persistence provides SQLite-backed world-state snapshot storage.
// It is a host convenience — §6 of the simulation core never calls it, and
// nothing here participates in the deterministic tick loop.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/mini-world/internal/engine"
)

// DB wraps a SQLite connection used to save and load world snapshots.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		run_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (run_id, key)
	);

	CREATE TABLE IF NOT EXISTS entities (
		run_id TEXT NOT NULL,
		id INTEGER NOT NULL,
		kind INTEGER NOT NULL,
		pos_x REAL NOT NULL,
		pos_y REAL NOT NULL,
		data_json TEXT NOT NULL,
		PRIMARY KEY (run_id, id)
	);

	CREATE TABLE IF NOT EXISTS mutated_chunks (
		run_id TEXT NOT NULL,
		cx INTEGER NOT NULL,
		cy INTEGER NOT NULL,
		tiles_json TEXT NOT NULL,
		PRIMARY KEY (run_id, cx, cy)
	);

	CREATE INDEX IF NOT EXISTS idx_entities_run ON entities(run_id);
	CREATE INDEX IF NOT EXISTS idx_mutated_run ON mutated_chunks(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// entity kind tags, stored alongside each row so LoadSnapshot can dispatch
// to the right variant without guessing from data_json's shape.
const (
	kindHuman    = 0
	kindAnimal   = 1
	kindPlant    = 2
	kindResource = 3
)

// SaveSnapshot writes a full-replace snapshot of w under a freshly minted
// run id and returns it (§6 expansion). Each save is a separate run —
// nothing here mutates a prior run's rows, so multiple slots for the same
// seed never collide.
func (db *DB) SaveSnapshot(w *engine.World) (string, error) {
	runID := uuid.NewString()
	snap := w.Snapshot()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO runs (id, seed, created_at) VALUES (?, ?, datetime('now'))", runID, snap.Seed); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	timeJSON, _ := json.Marshal(snap.Time)
	weatherJSON, _ := json.Marshal(snap.Weather)
	meta := map[string]string{
		"time":    string(timeJSON),
		"weather": string(weatherJSON),
	}
	for k, v := range meta {
		if _, err := tx.Exec("INSERT INTO world_meta (run_id, key, value) VALUES (?, ?, ?)", runID, k, v); err != nil {
			return "", fmt.Errorf("insert meta %s: %w", k, err)
		}
	}

	stmt, err := tx.Preparex(`INSERT INTO entities (run_id, id, kind, pos_x, pos_y, data_json) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	insertOne := func(id uint64, kind int, x, y float64, v any) error {
		blob, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal entity %d: %w", id, err)
		}
		_, err = stmt.Exec(runID, id, kind, x, y, string(blob))
		return err
	}

	for _, h := range snap.Humans {
		if err := insertOne(uint64(h.ID), kindHuman, h.Pos.X, h.Pos.Y, h); err != nil {
			return "", err
		}
	}
	for _, a := range snap.Animals {
		if err := insertOne(uint64(a.ID), kindAnimal, a.Pos.X, a.Pos.Y, a); err != nil {
			return "", err
		}
	}
	for _, p := range snap.Plants {
		if err := insertOne(uint64(p.ID), kindPlant, p.Pos.X, p.Pos.Y, p); err != nil {
			return "", err
		}
	}
	for _, r := range snap.Resources {
		if err := insertOne(uint64(r.ID), kindResource, r.Pos.X, r.Pos.Y, r); err != nil {
			return "", err
		}
	}

	chunkStmt, err := tx.Preparex(`INSERT INTO mutated_chunks (run_id, cx, cy, tiles_json) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer chunkStmt.Close()

	for _, mc := range snap.Mutated {
		blob, err := json.Marshal(mc.Tiles)
		if err != nil {
			return "", fmt.Errorf("marshal chunk %v: %w", mc.Coord, err)
		}
		if _, err := chunkStmt.Exec(runID, mc.Coord.X, mc.Coord.Y, string(blob)); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("world snapshot saved",
		"run_id", runID,
		"humans", len(snap.Humans),
		"animals", len(snap.Animals),
		"plants", len(snap.Plants),
		"resources", len(snap.Resources),
		"mutated_chunks", len(snap.Mutated),
	)
	return runID, nil
}

// LoadSnapshot reads the snapshot stored under runID back into an
// engine.SnapshotData (§6 expansion).
func (db *DB) LoadSnapshot(runID string) (*engine.SnapshotData, error) {
	var seed int64
	if err := db.conn.Get(&seed, "SELECT seed FROM runs WHERE id = ?", runID); err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}

	data := &engine.SnapshotData{Seed: seed}

	type metaRow struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}
	var metaRows []metaRow
	if err := db.conn.Select(&metaRows, "SELECT key, value FROM world_meta WHERE run_id = ?", runID); err != nil {
		return nil, fmt.Errorf("load meta: %w", err)
	}
	for _, m := range metaRows {
		switch m.Key {
		case "time":
			if err := json.Unmarshal([]byte(m.Value), &data.Time); err != nil {
				return nil, fmt.Errorf("decode time: %w", err)
			}
		case "weather":
			if err := json.Unmarshal([]byte(m.Value), &data.Weather); err != nil {
				return nil, fmt.Errorf("decode weather: %w", err)
			}
		}
	}

	type entityRow struct {
		ID       uint64 `db:"id"`
		Kind     int    `db:"kind"`
		DataJSON string `db:"data_json"`
	}
	var rows []entityRow
	if err := db.conn.Select(&rows, "SELECT id, kind, data_json FROM entities WHERE run_id = ?", runID); err != nil {
		return nil, fmt.Errorf("load entities: %w", err)
	}

	for _, r := range rows {
		if err := decodeEntity(data, r.Kind, r.DataJSON); err != nil {
			return nil, fmt.Errorf("decode entity %d: %w", r.ID, err)
		}
	}

	type chunkRow struct {
		CX        int    `db:"cx"`
		CY        int    `db:"cy"`
		TilesJSON string `db:"tiles_json"`
	}
	var chunkRows []chunkRow
	if err := db.conn.Select(&chunkRows, "SELECT cx, cy, tiles_json FROM mutated_chunks WHERE run_id = ?", runID); err != nil {
		return nil, fmt.Errorf("load mutated chunks: %w", err)
	}
	for _, cr := range chunkRows {
		mc, err := decodeMutatedChunk(cr.CX, cr.CY, cr.TilesJSON)
		if err != nil {
			return nil, fmt.Errorf("decode chunk (%d,%d): %w", cr.CX, cr.CY, err)
		}
		data.Mutated = append(data.Mutated, mc)
	}

	slog.Info("world snapshot loaded",
		"run_id", runID,
		"humans", len(data.Humans),
		"animals", len(data.Animals),
		"plants", len(data.Plants),
		"resources", len(data.Resources),
		"mutated_chunks", len(data.Mutated),
	)
	return data, nil
}

// LatestRunID returns the most recently created run id, or "" if the
// database holds none.
func (db *DB) LatestRunID() (string, error) {
	var id string
	err := db.conn.Get(&id, "SELECT id FROM runs ORDER BY created_at DESC LIMIT 1")
	if err != nil {
		return "", nil
	}
	return id, nil
}
