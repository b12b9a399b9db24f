package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/posekit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "editor.yaml", "transform: {translate_sensitivity: 0.01}")

	reloads := make(chan *config.Config, 4)
	failures := make(chan error, 4)
	w, err := config.NewWatcher(path, func(c *config.Config) { reloads <- c },
		config.WithDebounceDelay(10*time.Millisecond),
		config.WithLogger(zaptest.NewLogger(t)),
		config.WithErrorCallback(func(err error) { failures <- err }),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer func() { assert.NoError(t, w.Stop()) }()

	assert.Equal(t, 0.01, w.Current().Transform.TranslateSensitivity)

	require.NoError(t, os.WriteFile(path, []byte("transform: {translate_sensitivity: 0.05}"), 0o644))
	select {
	case cfg := <-reloads:
		assert.Equal(t, 0.05, cfg.Transform.TranslateSensitivity)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
	assert.Equal(t, 0.05, w.Current().Transform.TranslateSensitivity)

	require.NoError(t, os.WriteFile(path, []byte("log: {level: shouty}"), 0o644))
	select {
	case err := <-failures:
		assert.ErrorIs(t, err, config.ErrInvalid)
	case <-time.After(5 * time.Second):
		t.Fatal("invalid config was not reported")
	}
	assert.Equal(t, 0.05, w.Current().Transform.TranslateSensitivity, "invalid reload keeps the previous config")
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "editor.yaml", "")

	reloads := make(chan *config.Config, 1)
	w, err := config.NewWatcher(path, func(c *config.Config) { reloads <- c },
		config.WithDebounceDelay(5*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	writeFile(t, dir, "other.yaml", "log: {level: debug}")
	select {
	case <-reloads:
		t.Fatal("reloaded for an unrelated file")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherStartRejectsInvalidFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "editor.yaml", "window: {width: -3}")
	w, err := config.NewWatcher(path, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, w.Start(context.Background()), config.ErrInvalid)
	assert.Nil(t, w.Current())
	assert.NoError(t, w.Stop())
}

func TestWatcherStopsWithContext(t *testing.T) {
	path := writeFile(t, t.TempDir(), "editor.yaml", "")
	w, err := config.NewWatcher(filepath.Clean(path), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	assert.True(t, w.Running())
	cancel()

	require.Eventually(t, func() bool { return !w.Running() }, time.Second, 10*time.Millisecond)
	assert.NotNil(t, w.Current())

	done := make(chan error, 1)
	go func() { done <- w.Stop() }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Stop blocked after context cancellation")
	}
}

func TestWatcherRestartAfterContextCancel(t *testing.T) {
	path := writeFile(t, t.TempDir(), "editor.yaml", "")
	w, err := config.NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()
	require.Eventually(t, func() bool { return !w.Running() }, time.Second, 10*time.Millisecond)

	require.NoError(t, w.Start(context.Background()))
	assert.True(t, w.Running())
	require.NoError(t, w.Stop())
	assert.False(t, w.Running())
}
