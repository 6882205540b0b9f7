package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/platformsim/internal/application/system"
)

// FormatVersion is written into every replay
const FormatVersion = "2.0"

// Checkpoint pins the world digest after a given frame
type Checkpoint struct {
	Frame  uint64 `json:"f" msgpack:"f"`
	Digest string `json:"d" msgpack:"d"`
}

// ReplayData contains all data needed to replay a session: the seed and stage
// that rebuild the world, one input per tick, and periodic digests.
type ReplayData struct {
	Version     string               `json:"version" msgpack:"version"`
	Seed        int64                `json:"seed" msgpack:"seed"`
	Stage       string               `json:"stage" msgpack:"stage"`
	StartTime   string               `json:"startTime" msgpack:"startTime"`
	Frames      []system.PlayerInput `json:"frames" msgpack:"frames"`
	Checkpoints []Checkpoint         `json:"checkpoints,omitempty" msgpack:"checkpoints,omitempty"`
}

// checkpointAt returns the digest recorded for frame, if any
func (d *ReplayData) checkpointAt(frame uint64) (string, bool) {
	for _, cp := range d.Checkpoints {
		if cp.Frame == frame {
			return cp.Digest, true
		}
	}
	return "", false
}

// isJSON reports whether the file should be written as indented JSON.
// Everything else uses msgpack.
func isJSON(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".json")
}

// Marshal encodes the replay for filename's format
func (d *ReplayData) Marshal(filename string) ([]byte, error) {
	if isJSON(filename) {
		return json.MarshalIndent(d, "", "  ")
	}
	return msgpack.Marshal(d)
}

// Unmarshal decodes replay bytes written by Marshal
func Unmarshal(data []byte, filename string) (*ReplayData, error) {
	var rd ReplayData
	var err error
	if isJSON(filename) {
		err = json.Unmarshal(data, &rd)
	} else {
		err = msgpack.Unmarshal(data, &rd)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &rd, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Unmarshal(data, filename)
}
