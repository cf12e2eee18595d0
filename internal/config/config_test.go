package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"Conveyor3D/internal/conveyor"
	"Conveyor3D/internal/logger"
	"Conveyor3D/internal/physics"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "belt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
speed: 5
direction_multiplier: -1
edge_detection_distance: 0.2
push_off_edge: true
edge_push_force: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, float32(5), cfg.Speed)
	require.Equal(t, float32(-1), cfg.DirectionMultiplier)
	require.Equal(t, float32(0.2), cfg.EdgeDetectionDistance)
	require.True(t, cfg.PushOffEdge)
	require.Equal(t, float32(2), cfg.EdgePushForce)
}

func TestLoadDefaultsMissingFields(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `speed: 3`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, float32(3), cfg.Speed)
	require.Equal(t, float32(1), cfg.DirectionMultiplier, "zero direction normalizes to forward")
	require.False(t, cfg.PushOffEdge)
}

func TestLoadRejectsBadDirection(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `direction_multiplier: 2`)

	_, err := Load(path)
	require.ErrorContains(t, err, "direction_multiplier")
}

func TestLoadRejectsNegativeSpeed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `speed: -1`)

	_, err := Load(path)
	require.ErrorContains(t, err, "speed")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	belt := conveyor.NewBelt(physics.NewWorld())
	cfg := BeltConfig{
		Speed:                 7,
		DirectionMultiplier:   -1,
		EdgeDetectionDistance: 0.5,
		PushOffEdge:           true,
		EdgePushForce:         3,
	}

	cfg.Apply(belt)

	require.Equal(t, float32(7), belt.Speed)
	require.Equal(t, float32(-1), belt.DirectionMultiplier)
	require.Equal(t, float32(0.5), belt.EdgeDetectionDistance)
	require.True(t, belt.PushOffEdge)
	require.Equal(t, float32(3), belt.EdgePushForce)
}

func TestWatcherReload(t *testing.T) {
	logger.Init()

	dir := t.TempDir()
	path := writeConfig(t, dir, `speed: 1`)

	changes := make(chan BeltConfig, 4)
	w, err := NewWatcher(path, func(cfg BeltConfig) {
		changes <- cfg
	})
	require.NoError(t, err)
	defer w.Close()

	// Give the watcher goroutine time to register before writing
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`speed: 9`), 0o644))

	select {
	case cfg := <-changes:
		require.Equal(t, float32(9), cfg.Speed)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a reload event")
	}
}

func TestWatcherSkipsInvalidConfig(t *testing.T) {
	logger.Init()

	dir := t.TempDir()
	path := writeConfig(t, dir, `speed: 1`)

	changes := make(chan BeltConfig, 4)
	w, err := NewWatcher(path, func(cfg BeltConfig) {
		changes <- cfg
	})
	require.NoError(t, err)
	defer w.Close()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`direction_multiplier: 3`), 0o644))

	select {
	case cfg := <-changes:
		t.Fatalf("invalid config must not be delivered, got %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}
