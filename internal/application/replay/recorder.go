package replay

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/platformsim/internal/application/system"
	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

// DefaultCheckpointInterval records a digest once per second at 60 ticks/s
const DefaultCheckpointInterval = 60

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	interval  int
}

// NewRecorder creates a new recorder
func NewRecorder(seed int64, stage string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]system.PlayerInput, 0, 3600), // ~1 minute at 60 ticks/s
		},
		recording: true,
		interval:  DefaultCheckpointInterval,
	}
}

// SetCheckpointInterval changes how often digests are taken. n <= 0 disables them.
func (r *Recorder) SetCheckpointInterval(n int) {
	r.interval = n
}

// RecordFrame records the input of a tick that has just been stepped on w
func (r *Recorder) RecordFrame(input system.PlayerInput, w *entity.World) error {
	if !r.recording {
		return nil
	}

	r.data.Frames = append(r.data.Frames, input)

	if r.interval <= 0 || w == nil || len(r.data.Frames)%r.interval != 0 {
		return nil
	}
	digest, err := system.TakeSnapshot(w).Digest()
	if err != nil {
		return fmt.Errorf("failed to digest frame %d: %w", w.Frame, err)
	}
	r.data.Checkpoints = append(r.data.Checkpoints, Checkpoint{Frame: w.Frame, Digest: digest})
	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	data, err := r.data.Marshal(filename)
	if err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"file":        filename,
		"frames":      len(r.data.Frames),
		"checkpoints": len(r.data.Checkpoints),
	}).Info("Replay saved")
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay
func (r *Recorder) Data() *ReplayData {
	return &r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.mpk", time.Now().Format("20060102_150405"))
}
