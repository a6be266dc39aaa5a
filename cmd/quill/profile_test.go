package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/quill/internal/config"
)

func noEnv(string) (string, bool) { return "", false }

func TestRunProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := config.LoadFrom(path, noEnv)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runProfile(cfg, []string{"add", "shop", "sqlite:///tmp/shop.db"}, &out))
	assert.Contains(t, out.String(), "Saved profile shop (sqlite:///tmp/shop.db)")

	reloaded, err := config.LoadFrom(path, noEnv)
	require.NoError(t, err)
	p, err := reloaded.GetProfile("shop")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/shop.db", p.Database)

	out.Reset()
	require.NoError(t, runProfile(reloaded, []string{"list"}, &out))
	assert.Contains(t, out.String(), "shop")

	out.Reset()
	require.NoError(t, runProfile(reloaded, []string{"delete", "shop"}, &out))
	assert.Empty(t, reloaded.Profiles)

	out.Reset()
	require.NoError(t, runProfile(reloaded, []string{"list"}, &out))
	assert.Equal(t, "No profiles\n", out.String())
}

func TestRunProfileUsage(t *testing.T) {
	cfg := config.DefaultConfig()
	var out bytes.Buffer

	assert.ErrorIs(t, runProfile(cfg, nil, &out), errProfileUsage)
	assert.ErrorIs(t, runProfile(cfg, []string{"add", "only-name"}, &out), errProfileUsage)
	assert.ErrorIs(t, runProfile(cfg, []string{"rename"}, &out), errProfileUsage)
}

func TestResolveProfile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profiles = []config.Profile{{Name: "local", Type: "sqlite", Database: "shop.db"}}

	p, err := resolveProfile(cfg, "", "")
	require.NoError(t, err)
	assert.Nil(t, p)

	cfg.DefaultProfile = "local"
	p, err = resolveProfile(cfg, "", "")
	require.NoError(t, err)
	assert.Equal(t, "shop.db", p.Database)

	p, err = resolveProfile(cfg, "", "postgres://bob@db.internal/sales")
	require.NoError(t, err)
	assert.Equal(t, "postgres", p.Type)
	assert.Equal(t, 5432, p.Port)

	_, err = resolveProfile(cfg, "missing", "")
	assert.Error(t, err)
}
