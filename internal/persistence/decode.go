package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/talgya/mini-world/internal/agents"
	"github.com/talgya/mini-world/internal/engine"
	"github.com/talgya/mini-world/internal/world"
)

func decodeEntity(data *engine.SnapshotData, kind int, blob string) error {
	switch kind {
	case kindHuman:
		var h agents.Human
		if err := json.Unmarshal([]byte(blob), &h); err != nil {
			return err
		}
		data.Humans = append(data.Humans, &h)
	case kindAnimal:
		var a agents.Animal
		if err := json.Unmarshal([]byte(blob), &a); err != nil {
			return err
		}
		data.Animals = append(data.Animals, &a)
	case kindPlant:
		var p agents.Plant
		if err := json.Unmarshal([]byte(blob), &p); err != nil {
			return err
		}
		data.Plants = append(data.Plants, &p)
	case kindResource:
		var r agents.Resource
		if err := json.Unmarshal([]byte(blob), &r); err != nil {
			return err
		}
		data.Resources = append(data.Resources, &r)
	default:
		return fmt.Errorf("unknown entity kind %d", kind)
	}
	return nil
}

func decodeMutatedChunk(cx, cy int, tilesJSON string) (engine.MutatedChunk, error) {
	mc := engine.MutatedChunk{Coord: world.ChunkCoord{X: cx, Y: cy}}
	if err := json.Unmarshal([]byte(tilesJSON), &mc.Tiles); err != nil {
		return mc, err
	}
	return mc, nil
}
