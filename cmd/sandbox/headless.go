package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/younwookim/platformsim/internal/application/replay"
	"github.com/younwookim/platformsim/internal/application/scene/sandbox"
	"github.com/younwookim/platformsim/internal/application/system"
	"github.com/younwookim/platformsim/internal/infrastructure/config"
)

// runHeadless steps the simulation without a window. With a replay it
// verifies every checkpoint; otherwise it runs ticks of idle input and
// records them when a path is set.
func runHeadless(cfg *config.GameConfig, loader *config.Loader, opts sandbox.Options, ticks int) (replay.Result, error) {
	stage := opts.Stage
	seed := opts.Seed
	if opts.Replay != nil {
		stage = opts.Replay.Stage
		seed = opts.Replay.Seed
	}

	stageCfg, err := loader.LoadStage(stage)
	if err != nil {
		return replay.Result{}, fmt.Errorf("failed to load stage %q: %w", stage, err)
	}
	w := system.BuildWorld(system.NewSpawner(cfg), stageCfg)
	sim := system.NewSimulation(cfg, w, rand.New(rand.NewSource(seed)))

	if opts.Replay != nil {
		data := opts.Replay
		if ticks > 0 && ticks < len(data.Frames) {
			trimmed := *data
			trimmed.Frames = data.Frames[:ticks]
			data = &trimmed
		}
		return replay.Run(sim, data)
	}

	var rec *replay.Recorder
	if opts.RecordPath != "" {
		rec = replay.NewRecorder(seed, stage)
	}

	start := time.Now()
	var in system.PlayerInput
	for i := 0; i < ticks; i++ {
		sim.Step(in)
		if rec != nil {
			if err := rec.RecordFrame(in, sim.World); err != nil {
				return replay.Result{}, err
			}
		}
	}

	if rec != nil {
		if err := rec.Save(opts.RecordPath); err != nil {
			return replay.Result{}, err
		}
	}

	digest, err := system.TakeSnapshot(sim.World).Digest()
	if err != nil {
		return replay.Result{}, fmt.Errorf("failed to digest final frame: %w", err)
	}
	return replay.Result{Frames: ticks, Digest: digest, Elapsed: time.Since(start)}, nil
}
