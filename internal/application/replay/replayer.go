package replay

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/platformsim/internal/application/system"
	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  *ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data *ReplayData) *Replayer {
	return &Replayer{data: data}
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.PlayerInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.PlayerInput{}, false
	}
	in := r.data.Frames[r.frame]
	r.frame++
	return in, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Mismatch describes the first checkpoint whose digest differed
type Mismatch struct {
	Frame uint64
	Want  string
	Got   string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("replay diverged at frame %d: want %s, got %s", m.Frame, m.Want, m.Got)
}

// Result summarizes a headless replay run
type Result struct {
	Frames   int
	Verified int
	Digest   string
	Elapsed  time.Duration
}

// Run feeds every recorded input into sim and compares each checkpoint.
// sim must be freshly built from the replay's seed and stage. A divergence is
// returned as a *Mismatch error alongside the partial result.
func Run(sim *system.Simulation, data *ReplayData) (Result, error) {
	var res Result
	start := time.Now()
	r := NewReplayer(data)

	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		sim.Step(in)
		res.Frames++

		want, ok := data.checkpointAt(sim.World.Frame)
		if !ok {
			continue
		}
		got, err := system.TakeSnapshot(sim.World).Digest()
		if err != nil {
			return res, fmt.Errorf("failed to digest frame %d: %w", sim.World.Frame, err)
		}
		if got != want {
			res.Elapsed = time.Since(start)
			return res, &Mismatch{Frame: sim.World.Frame, Want: want, Got: got}
		}
		res.Verified++
	}

	digest, err := system.TakeSnapshot(sim.World).Digest()
	if err != nil {
		return res, fmt.Errorf("failed to digest final frame: %w", err)
	}
	res.Digest = digest
	res.Elapsed = time.Since(start)

	logger.Log.WithFields(logrus.Fields{
		"frames":   res.Frames,
		"verified": res.Verified,
		"elapsed":  res.Elapsed,
	}).Info("Replay finished")
	return res, nil
}
