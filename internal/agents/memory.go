package agents

import "encoding/json"

// MaxMemories is the FIFO bound on a human's memory stream (§3: "≤100").
const MaxMemories = 100

// Memory records one notable experience. Time and Duration are simulated
// seconds; entries past Time+Duration are dropped each tick.
type Memory struct {
	Time      float64
	Duration  float64
	Type      string
	Emotion   EmotionKind
	HasEmotion bool
	Intensity float64
}

// MemoryStream is a bounded FIFO: oldest entries are evicted first once
// full, regardless of importance (§9 open-question note: fish/FIFO chosen
// literally per §3's "bounded FIFO of recent events").
type MemoryStream struct {
	entries []Memory
}

// Add appends a memory, evicting the oldest entry if the stream is full.
func (m *MemoryStream) Add(entry Memory) {
	if len(m.entries) >= MaxMemories {
		m.entries = m.entries[1:]
	}
	m.entries = append(m.entries, entry)
}

// Expire drops entries whose Time+Duration has passed, given the current
// simulated time `now`.
func (m *MemoryStream) Expire(now float64) {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if now < e.Time+e.Duration {
			kept = append(kept, e)
		}
	}
	m.entries = kept
}

// Recent returns up to k most-recently-added memories, most recent first.
func (m *MemoryStream) Recent(k int) []Memory {
	n := len(m.entries)
	if k > n {
		k = n
	}
	out := make([]Memory, k)
	for i := 0; i < k; i++ {
		out[i] = m.entries[n-1-i]
	}
	return out
}

// EmotionalPush accumulates a decaying push toward each memory's matching
// emotion, for every still-alive emotional memory (§4.6).
func (m *MemoryStream) EmotionalPush(now float64) EmotionVector {
	var push EmotionVector
	for _, e := range m.entries {
		if !e.HasEmotion {
			continue
		}
		age := now - e.Time
		if age < 0 || age > e.Duration {
			continue
		}
		remaining := 1 - age/e.Duration
		push[e.Emotion] = clamp(push[e.Emotion]+e.Intensity*remaining, 0, 1)
	}
	return push
}

func (m *MemoryStream) Len() int { return len(m.entries) }

// MarshalJSON/UnmarshalJSON expose entries for persistence snapshots even
// though the field itself stays unexported, so callers can't bypass Add's
// FIFO eviction.
func (m MemoryStream) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.entries)
}

func (m *MemoryStream) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &m.entries)
}
