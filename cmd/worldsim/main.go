// Command worldsim drives a headless run of the simulation core: build a
// world from a seed, tick it for a fixed number of steps, and log summary
// stats along the way.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/talgya/mini-world/internal/engine"
	"github.com/talgya/mini-world/internal/persistence"
	"github.com/talgya/mini-world/internal/world"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	seed := flag.Int64("seed", 42, "world generation seed")
	width := flag.Int("width", world.DefaultWorldWidth, "world width in tiles")
	height := flag.Int("height", world.DefaultWorldHeight, "world height in tiles")
	ticks := flag.Int("ticks", 600, "number of ticks to run")
	dt := flag.Float64("dt", 1.0, "seconds of simulated time per tick")
	viewDistance := flag.Int("view-distance", 3, "chunk radius kept active around the viewport")
	population := flag.Int("population", 20, "number of humans to seed the world with")
	dbPath := flag.String("db", "", "optional SQLite path to save a snapshot to on exit")
	loadRun := flag.String("load-run", "", "optional run id to restore from -db before ticking")
	flag.Parse()

	cfg := engine.Config{Seed: *seed, Width: *width, Height: *height, ViewDistance: *viewDistance}
	w := engine.NewWorld(cfg, logger)

	var db *persistence.DB
	if *dbPath != "" {
		var err error
		db, err = persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open snapshot database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	if db != nil && *loadRun != "" {
		data, err := db.LoadSnapshot(*loadRun)
		if err != nil {
			slog.Error("failed to load snapshot", "run_id", *loadRun, "error", err)
			os.Exit(1)
		}
		w.Restore(data)
		slog.Info("restored snapshot", "run_id", *loadRun, "humans", len(data.Humans))
	} else {
		seedPopulation(w, *population)
	}

	slog.Info("world ready",
		"seed", *seed,
		"width", *width,
		"height", *height,
		"ticks", *ticks,
		"humans", humanize.Comma(int64(len(w.Humans))),
	)

	viewport := world.Vec2{}
	for i := 0; i < *ticks; i++ {
		w.Tick(*dt, viewport, 1.0)

		if i%100 == 0 {
			logTickStats(w, i)
		}
	}
	logTickStats(w, *ticks)

	if db != nil {
		runID, err := db.SaveSnapshot(w)
		if err != nil {
			slog.Error("failed to save snapshot", "error", err)
			os.Exit(1)
		}
		slog.Info("snapshot saved", "run_id", runID)
	}
}

func seedPopulation(w *engine.World, n int) {
	for i := 0; i < n; i++ {
		x := float64((i % 10) * 40)
		y := float64((i / 10) * 40)
		if _, err := w.AddHuman(world.Vec2{X: x, Y: y}); err != nil {
			slog.Warn("failed to add human during seeding", "error", err)
			break
		}
	}

	for i := 0; i < n/4; i++ {
		x := float64(200 + (i%5)*40)
		y := float64((i / 5) * 40)
		if _, err := w.AddResource(world.Vec2{X: x, Y: y}, world.ResourceBerry, 50, 1.0); err != nil {
			slog.Warn("failed to add resource during seeding", "error", err)
			break
		}
	}
}

func logTickStats(w *engine.World, tick int) {
	ts := w.GetTimeState()
	ws := w.GetWeatherState()

	var totalHunger, totalEnergy float64
	var humansActive int
	for _, h := range w.Humans {
		totalHunger += h.Needs.Hunger
		totalEnergy += h.Needs.Energy
		if h.Active {
			humansActive++
		}
	}

	n := float64(len(w.Humans))
	avgHunger, avgEnergy := 0.0, 0.0
	if n > 0 {
		avgHunger = totalHunger / n
		avgEnergy = totalEnergy / n
	}

	slog.Info("tick stats",
		"tick", tick,
		"sim_day", ts.Day,
		"sim_time", humanize.Comma(int64(ts.Elapsed)),
		"season", ts.Season,
		"weather", ws.Current,
		"humans_active", humansActive,
		"avg_hunger", avgHunger,
		"avg_energy", avgEnergy,
	)
}
