package engine

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/talgya/mini-world/internal/agents"
)

// sortedIDs returns m's keys in ascending order, giving every per-entity
// pass a stable iteration order independent of Go's randomized map
// iteration (§5: "a stable iteration order over entity/chunk collections"
// is required for determinism).
func sortedIDs[V any](m map[agents.ID]V) []agents.ID {
	ids := maps.Keys(m)
	slices.Sort(ids)
	return ids
}
