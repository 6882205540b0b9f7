// Package sandbox is the debug viewer scene: it runs the simulation at a
// fixed step, draws every body as a rectangle and overlays the AI state.
package sandbox

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/platformsim/internal/application/replay"
	"github.com/younwookim/platformsim/internal/application/scene"
	"github.com/younwookim/platformsim/internal/application/state"
	"github.com/younwookim/platformsim/internal/application/system"
	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/config"
	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

// Options configures a sandbox session
type Options struct {
	Stage      string
	Seed       int64
	RecordPath string             // non-empty enables recording
	Replay     *replay.ReplayData // non-nil plays back instead of reading the device
	Device     Device             // defaults to Keyboard
	Watcher    *config.Watcher    // optional hot reload source
}

// Sandbox is the viewer scene
type Sandbox struct {
	config   *config.GameConfig
	loader   *config.Loader
	stageCfg *config.StageConfig
	opts     Options

	sim      *system.Simulation
	clock    *state.Clock
	recorder *replay.Recorder
	replayer *replay.Replayer
	device   Device

	screenW, screenH int
	camX, camY       float64
	shake            float64
	shakeRNG         *rand.Rand
	showInfo         bool
	lastDeath        string
}

// New loads the stage and builds the first world
func New(cfg *config.GameConfig, loader *config.Loader, opts Options) (*Sandbox, error) {
	if opts.Replay != nil {
		opts.Stage = opts.Replay.Stage
		opts.Seed = opts.Replay.Seed
	}
	stageCfg, err := loader.LoadStage(opts.Stage)
	if err != nil {
		return nil, fmt.Errorf("failed to load stage %q: %w", opts.Stage, err)
	}

	device := opts.Device
	if device == nil {
		device = Keyboard{}
	}

	s := &Sandbox{
		config:   cfg,
		loader:   loader,
		stageCfg: stageCfg,
		opts:     opts,
		clock:    state.NewClock(),
		device:   device,
		screenW:  cfg.Physics.Display.ScreenWidth,
		screenH:  cfg.Physics.Display.ScreenHeight,
		shakeRNG: rand.New(rand.NewSource(opts.Seed)),
		showInfo: true,
	}
	if opts.Replay != nil {
		s.replayer = replay.NewReplayer(opts.Replay)
	}
	s.start()
	return s, nil
}

// start builds a fresh world and simulation from the current stage and seed
func (s *Sandbox) start() {
	w := system.BuildWorld(system.NewSpawner(s.config), s.stageCfg)
	s.sim = system.NewSimulation(s.config, w, rand.New(rand.NewSource(s.opts.Seed)))
	s.sim.Combat.OnHitstop = s.clock.Hitstop
	s.sim.Combat.OnScreenShake = func(intensity float64) {
		s.shake = math.Max(s.shake, intensity)
	}
	s.sim.OnEnemyDeath = func(ev system.DeathEvent) {
		s.lastDeath = fmt.Sprintf("%s #%d +%d", ev.Kind, ev.EnemyID, ev.Score)
	}

	s.clock.Reset()
	s.shake = 0
	s.lastDeath = ""
	if s.replayer != nil {
		s.replayer.Reset()
	}
	if s.opts.RecordPath != "" && s.replayer == nil {
		s.recorder = replay.NewRecorder(s.opts.Seed, s.opts.Stage)
	}
	s.updateCamera()
}

// Simulation returns the running simulation
func (s *Sandbox) Simulation() *system.Simulation {
	return s.sim
}

// State returns the clock state
func (s *Sandbox) State() state.SimState {
	return s.clock.State()
}

// Update proceeds one frame (implements scene.Scene)
func (s *Sandbox) Update(_ float64) (scene.Scene, error) {
	s.drainWatcher()

	cmd := s.device.Commands()
	switch {
	case cmd.Quit:
		s.saveRecording()
		return nil, scene.ErrQuit
	case cmd.Restart:
		s.saveRecording()
		s.start()
		return nil, nil
	}
	if cmd.Pause {
		s.clock.TogglePause()
	}
	if cmd.Step {
		s.clock.RequestStep()
	}
	if cmd.ToggleInfo {
		s.showInfo = !s.showInfo
	}
	if cmd.Save {
		s.saveRecording()
	}

	if s.clock.Tick() {
		s.step()
	}

	s.shake *= s.config.Physics.Feedback.ScreenShake.Decay
	if s.shake < 0.1 {
		s.shake = 0
	}
	s.updateCamera()
	return nil, nil
}

func (s *Sandbox) step() {
	var in system.PlayerInput
	if s.replayer != nil {
		var ok bool
		in, ok = s.replayer.GetInput()
		if !ok {
			s.clock.End(state.StateReplayDone)
			logger.Log.WithField("frames", s.replayer.TotalFrames()).Info("Replay complete")
			return
		}
	} else {
		in = s.device.Input(s.camX, s.camY)
	}

	s.sim.Step(in)

	if s.recorder != nil {
		if err := s.recorder.RecordFrame(in, s.sim.World); err != nil {
			logger.Log.WithError(err).Warn("Recording stopped")
			s.recorder.Stop()
		}
	}

	if p := s.sim.World.Player; p != nil && !p.IsAlive() {
		s.clock.End(state.StateGameOver)
		s.saveRecording()
	}
}

// saveRecording writes the recording, if any, to its path
func (s *Sandbox) saveRecording() {
	if s.recorder == nil || s.recorder.FrameCount() == 0 {
		return
	}
	if err := s.recorder.Save(s.opts.RecordPath); err != nil {
		logger.Log.WithError(err).Error("Failed to save recording")
	}
}

// drainWatcher applies every pending config change without blocking
func (s *Sandbox) drainWatcher() {
	if s.opts.Watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.opts.Watcher.Events:
			if !ok {
				s.opts.Watcher = nil
				return
			}
			if err := s.HandleConfigChange(path); err != nil {
				logger.Log.WithError(err).WithField("file", path).Warn("Reload failed, keeping previous config")
			}
		case err, ok := <-s.opts.Watcher.Errors:
			if !ok {
				s.opts.Watcher = nil
				return
			}
			logger.Log.WithError(err).Warn("Config watcher error")
		default:
			return
		}
	}
}

// HandleConfigChange reloads the file at path. Tuning changes apply to the
// running world; a change to the current stage rebuilds it.
func (s *Sandbox) HandleConfigChange(path string) error {
	if config.IsStageFile(path) {
		if config.StageName(path) != s.opts.Stage {
			return nil
		}
		stageCfg, err := s.loader.LoadStage(s.opts.Stage)
		if err != nil {
			return err
		}
		s.stageCfg = stageCfg
		s.start()
		logger.Log.WithField("stage", s.opts.Stage).Info("Stage reloaded")
		return nil
	}

	cfg, err := s.loader.LoadAll()
	if err != nil {
		return err
	}
	s.config = cfg
	s.sim.SetConfig(cfg)
	logger.Log.WithFields(logrus.Fields{
		"file":    path,
		"gravity": cfg.Physics.Physics.Gravity,
	}).Info("Config reloaded")
	return nil
}

// updateCamera centers on the player, clamped to the stage
func (s *Sandbox) updateCamera() {
	p := s.sim.World.Player
	if p == nil {
		return
	}
	cx, cy := p.Center()
	s.camX = clamp(cx-float64(s.screenW)/2, 0, s.stageCfg.Size.Width-float64(s.screenW))
	s.camY = clamp(cy-float64(s.screenH)/2, 0, s.stageCfg.Size.Height-float64(s.screenH))
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// OnEnter implements scene.Scene
func (s *Sandbox) OnEnter() {
	logger.Log.WithFields(logrus.Fields{
		"stage":     s.stageCfg.ID,
		"seed":      s.opts.Seed,
		"recording": s.recorder != nil,
		"replay":    s.replayer != nil,
	}).Info("Sandbox started")
}

// OnExit implements scene.Scene
func (s *Sandbox) OnExit() {
	s.saveRecording()
	if s.recorder != nil {
		s.recorder.Stop()
	}
}

// statusLine summarizes the player for the HUD
func (s *Sandbox) statusLine() string {
	w := s.sim.World
	p := w.Player
	if p == nil {
		return fmt.Sprintf("frame %d  no player", w.Frame)
	}
	return fmt.Sprintf("frame %d  %s\nhp %d  gold %d  score %d\npos %.1f,%.1f  vel %.1f,%.1f  ground %t",
		w.Frame, s.clock.State(), p.Health, p.Gold, p.Score, p.X, p.Y, p.VX, p.VY, p.OnGround)
}

// enemyLabel is drawn above each enemy when the overlay is on
func enemyLabel(e *entity.Enemy) string {
	info := e.StateInfo()
	label := fmt.Sprintf("%s %.1fs\nhp %d", info.State, info.StateTime, info.Health)
	if info.HasTarget {
		label += " T"
	}
	if info.CanSeeTarget {
		label += " !"
	}
	return label
}
