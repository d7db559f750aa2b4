package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(10), cfg.Showroom.Radius)
	assert.Equal(t, float32(0.4), cfg.Player.Radius)
	assert.Equal(t, 84, cfg.Smoke.Count)
	assert.Empty(t, cfg.Products)
}

func TestParse(t *testing.T) {
	data := []byte(`
engine:
  tickRate: 120
showroom:
  radius: 12
fog:
  color: 0x336699
products:
  - name: chair
    model: assets/chair.glb
    position: [3, 1, 0]
    scale: 2
    title: Chair
  - model: assets/lamp.glb
    fogScale: 1.5
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Engine.TickRate)
	assert.Equal(t, 4, cfg.Engine.Workers, "unset fields keep defaults")
	assert.Equal(t, float32(12), cfg.Showroom.Radius)
	assert.Equal(t, uint32(0x336699), cfg.Fog.Color)
	assert.Equal(t, float32(0.35), cfg.Fog.Density)

	require.Len(t, cfg.Products, 2)
	assert.Equal(t, "chair", cfg.Products[0].Name)
	assert.Equal(t, [3]float32{3, 1, 0}, cfg.Products[0].Position)
	assert.Equal(t, float32(2), cfg.Products[0].Scale)
	assert.Equal(t, float32(1), cfg.Products[0].FogScale)
	assert.Equal(t, "product_1", cfg.Products[1].Name)
	assert.Equal(t, float32(1), cfg.Products[1].Scale)
	assert.Equal(t, float32(1.5), cfg.Products[1].FogScale)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "malformed", content: "engine: [", wantErr: "failed to parse"},
		{name: "zero tick rate", content: "engine:\n  tickRate: -1\n", wantErr: "tickRate"},
		{name: "player wider than room", content: "player:\n  radius: 10\n", wantErr: "player.radius"},
		{name: "bad fov", content: "look:\n  fov: 190\n", wantErr: "look.fov"},
		{name: "negative smoke", content: "smoke:\n  count: -3\n", wantErr: "smoke.count"},
		{name: "duplicate product", content: "products:\n  - name: a\n  - name: a\n", wantErr: "duplicate"},
		{name: "negative scale", content: "products:\n  - name: a\n    scale: -1\n", wantErr: "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "showroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("showroom:\n  radius: 8\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(8), cfg.Showroom.Radius)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "cmd", "showroom", "showroom.yaml"))
	require.NoError(t, err)

	require.Len(t, cfg.Products, 3)
	assert.Equal(t, "lamp", cfg.Products[1].Name)
	assert.Equal(t, float32(3), cfg.Products[1].InteractionDistance)
	assert.Equal(t, float32(1), cfg.Products[1].Scale)
	assert.Equal(t, float32(1.4), cfg.Products[2].ParticleAreaScale)
	assert.Equal(t, uint32(0xbbbbbb), cfg.Fog.Color)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[engine]
tickRate = 30

[fog]
color = 0x102030
density = 0.5

[[products]]
name = "vase"
model = "vase.gltf"
position = [1.0, 1.5, -2.0]
title = "Vase"
`)

	cfg, err := ParseTOML(data)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Engine.TickRate)
	assert.Equal(t, uint32(0x102030), cfg.Fog.Color)
	assert.Equal(t, float32(0.5), cfg.Fog.Density)
	assert.Equal(t, float32(10), cfg.Showroom.Radius, "unset tables keep defaults")
	require.Len(t, cfg.Products, 1)
	assert.Equal(t, [3]float32{1, 1.5, -2}, cfg.Products[0].Position)
	assert.Equal(t, float32(1), cfg.Products[0].Scale)

	_, err = ParseTOML([]byte("[engine]\ntickRate = 0\n"))
	assert.ErrorContains(t, err, "engine.tickRate")
}

func TestLoadPicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "showroom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[showroom]\nradius = 7.0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(7), cfg.Showroom.Radius)
}
