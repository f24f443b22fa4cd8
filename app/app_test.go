package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/config"
	"github.com/lixenwraith/vamp-arena/store"
)

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.SaveDir = t.TempDir()
	cfg.Seed = 7
	cfg.Audio.Enabled = false
	return cfg
}

func TestAppRestoresSave(t *testing.T) {
	cfg := testConfig(t)
	st, err := store.New(cfg.SaveDir)
	require.NoError(t, err)

	snap := component.DefaultSnapshot(component.Tank)
	snap.Wave = 4
	snap.Level = 3
	require.NoError(t, st.Save(cfg.Profile, snap))

	a, err := New(cfg, Options{})
	require.NoError(t, err)
	got := a.Loop.Snapshot()
	assert.Equal(t, 4, got.Wave)
	assert.Equal(t, component.Tank, got.Archetype)
	assert.True(t, a.Loop.IsPaused(), "restored session waits for Start")

	fresh, err := New(cfg, Options{Fresh: true})
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Loop.Snapshot().Wave)
	assert.Equal(t, component.Speedster, fresh.Loop.Snapshot().Archetype)
}

func TestAppLifecycleSavesOnExit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Feed.Addr = "127.0.0.1:0"

	a, err := New(cfg, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{ServiceAudio, ServiceEvents, ServiceFeed, ServiceLoop, ServiceStore}, a.Services())

	require.NoError(t, a.Start())
	assert.NotEmpty(t, a.FeedAddr())
	assert.False(t, a.Loop.IsPaused())

	a.Close()
	a.Close()
	assert.True(t, a.Loop.IsPaused())

	snap, err := a.Store.Load(cfg.Profile)
	require.NoError(t, err)
	assert.Equal(t, component.Speedster, snap.Archetype)
}

func TestAppRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Archetype = "wizard"
	_, err := New(cfg, Options{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
