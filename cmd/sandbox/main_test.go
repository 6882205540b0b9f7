package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformsim/internal/application/replay"
	"github.com/younwookim/platformsim/internal/application/scene/sandbox"
)

func TestNewLoader_Embedded(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Physics.Display.Framerate)

	for _, name := range []string{"demo", "tower"} {
		_, err := loader.LoadStage(name)
		assert.NoError(t, err, name)
	}
}

func TestNewLoader_Directory(t *testing.T) {
	loader, err := newLoader("configs")
	require.NoError(t, err)
	assert.Equal(t, "configs", loader.BasePath())

	_, err = loader.LoadAll()
	assert.NoError(t, err)
}

func TestRunHeadless_RecordThenVerify(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "idle.mpk")
	recorded, err := runHeadless(cfg, loader, sandbox.Options{Stage: "tower", Seed: 11, RecordPath: path}, 180)
	require.NoError(t, err)
	assert.Equal(t, 180, recorded.Frames)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Checkpoints, 3)

	verified, err := runHeadless(cfg, loader, sandbox.Options{Replay: data}, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, verified.Verified)
	assert.Equal(t, recorded.Digest, verified.Digest)

	partial, err := runHeadless(cfg, loader, sandbox.Options{Replay: data}, 90)
	require.NoError(t, err)
	assert.Equal(t, 90, partial.Frames)
	assert.Equal(t, 1, partial.Verified)
}

func TestRunHeadless_UnknownStage(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	_, err = runHeadless(cfg, loader, sandbox.Options{Stage: "missing"}, 10)
	assert.Error(t, err)
}
