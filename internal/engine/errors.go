package engine

import "errors"

// Sentinel errors for the orchestrator's external-facing operations (§7).
// Per-entity update failures never surface one of these — they're caught
// and logged by safeUpdate instead, so the tick never aborts.
var (
	ErrEntityNotFound   = errors.New("engine: entity not found")
	ErrCapacityExceeded = errors.New("engine: pending queue at capacity")
)
