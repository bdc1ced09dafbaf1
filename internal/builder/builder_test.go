package builder

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/osm2mc/internal/config"
	"github.com/OCharnyshevich/osm2mc/internal/osm"
)

const waysYAML = `
ways:
  - id: 1
    tags: {waterway: river}
    nodes: [{x: 0, z: 0}, {x: 40, z: 10}, {x: 60, z: -20}]
  - id: 2
    tags: {waterway: stream, width: "5.5"}
    nodes: [{x: -30, z: 5}, {x: -2, z: 5}]
  - id: 3
    tags: {waterway: canal, layer: "-1"}
    nodes: [{x: 0, z: 0}, {x: 0, z: 100}]
  - id: 4
    tags: {highway: residential}
    nodes: [{x: 5, z: 5}, {x: 6, z: 6}]
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "ways.yaml")
	require.NoError(t, os.WriteFile(input, []byte(waysYAML), 0o644))

	cfg := config.DefaultConfig()
	cfg.Input = input
	cfg.OutputDir = filepath.Join(dir, "world")
	cfg.MetricsFile = filepath.Join(dir, "osm2mc.prom")
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	log := slog.New(slog.DiscardHandler)

	res, err := New(cfg, log).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Ways)
	assert.Equal(t, 2, res.Carved)
	assert.Equal(t, 2, res.Skipped)
	assert.Positive(t, res.Save.Chunks)
	assert.Positive(t, res.Save.RegionsWritten)

	// Ways span x -30..60, z -20..10 plus padding: regions (-1|0, -1|0).
	entries, err := os.ReadDir(filepath.Join(cfg.OutputDir, "region"))
	require.NoError(t, err)
	assert.Len(t, entries, res.Save.RegionsWritten)

	prom, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "osm2mc_ways_carved_total 2")
	assert.Contains(t, string(prom), "osm2mc_ways_skipped_total 2")
}

func TestRunPerlin(t *testing.T) {
	cfg := testConfig(t)
	cfg.Terrain = "perlin"
	cfg.Seed = 99
	cfg.MetricsFile = ""

	res, err := New(cfg, slog.New(slog.DiscardHandler)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Carved)
}

func TestRunMissingInput(t *testing.T) {
	cfg := testConfig(t)
	cfg.Input = filepath.Join(t.TempDir(), "nope", "ways.yaml")

	_, err := New(cfg, slog.New(slog.DiscardHandler)).Run(context.Background())
	assert.Error(t, err)
}

func TestTerrainPad(t *testing.T) {
	tests := []struct {
		name string
		ways []osm.Way
		want int
	}{
		{"none", nil, 1},
		{"river", []osm.Way{{Tags: map[string]string{"waterway": "river"}}}, 5},
		{"override", []osm.Way{{Tags: map[string]string{"waterway": "drain", "width": "20"}}}, 11},
		{"capped", []osm.Way{{Tags: map[string]string{"waterway": "river", "width": "5000"}}}, maxTerrainPad},
		{"not a waterway", []osm.Way{{Tags: map[string]string{"width": "30"}}}, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, terrainPad(tt.ways), tt.name)
	}
}
