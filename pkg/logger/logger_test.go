package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := New("parkingsys", "debug", path)

	log.Debug("debug line", String("plate", "AA11"))
	log.Info("info line", Int("capacity", 10))
	log.Warning("warning line")
	log.Error("error line", Bool("parked", true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "debug line")
	assert.Contains(t, out, "info line")
	assert.Contains(t, out, "warning line")
	assert.Contains(t, out, "error line")
	assert.Contains(t, out, `"namespace": "parkingsys"`)
	assert.Contains(t, out, `"plate": "AA11"`)
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	var log ILogger
	assert.NotPanics(t, func() { log = New("parkingsys", "chatty", path) })

	log.Debug("hidden")
	log.Info("shown")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Error("nothing", Any("k", 1))
	})
}
