// Command sandbox runs the platformer simulation, either in a debug window
// or headless for recording and replay verification.
package main

import (
	"flag"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/platformsim/internal/application/game"
	"github.com/younwookim/platformsim/internal/application/replay"
	"github.com/younwookim/platformsim/internal/application/scene/sandbox"
	"github.com/younwookim/platformsim/internal/infrastructure/config"
	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

func main() {
	configDir := flag.String("configdir", "", "Load configs from this directory and hot-reload them (default: embedded)")
	stageName := flag.String("stage", "demo", "Stage to load")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time based)")
	recordPath := flag.String("record", "", "Record input to file (.mpk or .json)")
	replayPath := flag.String("replay", "", "Play back a recorded file")
	headless := flag.Int("headless", -1, "Run N ticks without a window (0 with -replay = whole replay)")
	flag.Parse()

	logger.Init()

	loader, err := newLoader(*configDir)
	if err != nil {
		logger.Log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	opts := sandbox.Options{
		Stage:      *stageName,
		Seed:       *seed,
		RecordPath: *recordPath,
	}
	if *replayPath != "" {
		data, err := replay.LoadReplay(*replayPath)
		if err != nil {
			logger.Log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replay = data
	}

	if *headless >= 0 {
		res, err := runHeadless(cfg, loader, opts, *headless)
		if err != nil {
			logger.Log.Fatalf("Headless run failed: %v", err)
		}
		logger.Log.WithFields(logrus.Fields{
			"frames":   res.Frames,
			"verified": res.Verified,
			"digest":   res.Digest,
			"elapsed":  res.Elapsed,
		}).Info("Headless run complete")
		return
	}

	if *configDir != "" {
		watcher, err := config.NewWatcher(*configDir, filepath.Join(*configDir, "stages"))
		if err != nil {
			logger.Log.WithError(err).Warn("Hot reload disabled")
		} else {
			defer func() { _ = watcher.Close() }()
			opts.Watcher = watcher
		}
	}

	viewer, err := sandbox.New(cfg, loader, opts)
	if err != nil {
		logger.Log.Fatalf("Failed to start sandbox: %v", err)
	}

	display := cfg.Physics.Display
	g := game.New(viewer, display.ScreenWidth, display.ScreenHeight, cfg.Physics.Dt())

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Platform Sandbox")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		logger.Log.Fatal(err)
	}
}

// newLoader reads from dir when given, otherwise from the embedded configs
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
