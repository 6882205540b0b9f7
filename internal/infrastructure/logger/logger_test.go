package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWith_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWith("debug", "json", &buf)
	t.Cleanup(func() { InitWith("info", "", &bytes.Buffer{}) })

	Log.WithFields(logrus.Fields{"enemy": 3, "to": "chase"}).Debug("transition")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "transition", entry["msg"])
	assert.Equal(t, "chase", entry["to"])
	assert.Equal(t, "debug", entry["level"])
}

func TestInitWith_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWith("loud", "text", &buf)
	t.Cleanup(func() { InitWith("info", "", &bytes.Buffer{}) })

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	Log.Debug("hidden")
	assert.Empty(t, buf.String())

	Log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
