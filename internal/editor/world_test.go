package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/osm2mc/internal/block"
	"github.com/OCharnyshevich/osm2mc/internal/metrics"
	"github.com/OCharnyshevich/osm2mc/internal/osm"
	"github.com/OCharnyshevich/osm2mc/internal/waterway"
	"github.com/OCharnyshevich/osm2mc/pkg/world/gen"
)

var _ waterway.Editor = (*World)(nil)

func newFlatWorld(t *testing.T, height int) (*World, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	return NewWorld(gen.NewFlatGenerator(height), m, nil), m
}

func TestWorldUnwrittenIsAir(t *testing.T) {
	w, _ := newFlatWorld(t, 4)
	assert.Equal(t, block.Air, w.GetBlock(0, 0, 0))
	assert.Equal(t, block.Air, w.GetBlock(-100, 300, 7))
	assert.Equal(t, 4, w.GroundLevel(12, -9))
}

func TestWorldSetBlock(t *testing.T) {
	w, m := newFlatWorld(t, 4)

	w.SetBlock(block.Stone, 3, 10, 5, nil)
	w.SetBlock(block.Water, -1, 10, -17, nil)
	assert.Equal(t, block.Stone, w.GetBlock(3, 10, 5))
	assert.Equal(t, block.Water, w.GetBlock(-1, 10, -17))
	assert.Equal(t, 2, w.SectionCount())

	// Last write wins.
	w.SetBlock(block.Dirt, 3, 10, 5, nil)
	assert.Equal(t, block.Dirt, w.GetBlock(3, 10, 5))

	// Rewriting the same block is not counted.
	w.SetBlock(block.Dirt, 3, 10, 5, nil)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.BlocksWritten))
}

func TestWorldSetBlockOutsideHeight(t *testing.T) {
	w, _ := newFlatWorld(t, 4)
	w.SetBlock(block.Stone, 0, -1, 0, nil)
	w.SetBlock(block.Stone, 0, WorldHeight, 0, nil)
	assert.Zero(t, w.SectionCount())
}

func TestWorldSetAirDoesNotAllocate(t *testing.T) {
	w, _ := newFlatWorld(t, 4)
	w.SetBlock(block.Air, 0, 10, 0, nil)
	assert.Zero(t, w.SectionCount())
}

func TestWorldSetBlockWhitelist(t *testing.T) {
	w, _ := newFlatWorld(t, 4)
	w.SetBlock(block.Wheat, 0, 5, 0, nil)
	w.SetBlock(block.Stone, 1, 5, 0, nil)

	w.SetBlock(block.Air, 0, 5, 0, block.Vegetation)
	w.SetBlock(block.Air, 1, 5, 0, block.Vegetation)
	w.SetBlock(block.Water, 2, 5, 0, block.Vegetation) // air is not listed

	assert.Equal(t, block.Air, w.GetBlock(0, 5, 0))
	assert.Equal(t, block.Stone, w.GetBlock(1, 5, 0))
	assert.Equal(t, block.Air, w.GetBlock(2, 5, 0))

	// An empty, non-nil whitelist matches nothing.
	w.SetBlock(block.Dirt, 1, 5, 0, []block.Block{})
	assert.Equal(t, block.Stone, w.GetBlock(1, 5, 0))
}

func TestWorldFillTerrain(t *testing.T) {
	w, _ := newFlatWorld(t, 4)
	w.FillTerrain(-2, -2, 2, 2)

	assert.Equal(t, block.Bedrock, w.GetBlock(0, 0, 0))
	assert.Equal(t, block.Dirt, w.GetBlock(1, 3, -1))
	assert.Equal(t, block.GrassBlock, w.GetBlock(2, 4, 2))
	assert.Equal(t, block.Air, w.GetBlock(2, 5, 2))
	assert.Equal(t, block.Air, w.GetBlock(3, 4, 3))
}

func TestWorldCarvesRiver(t *testing.T) {
	const ground = 64
	w, _ := newFlatWorld(t, ground)
	w.FillTerrain(-10, -10, 30, 10)
	w.SetBlock(block.Grass, 10, ground+1, 0, nil)
	w.SetBlock(block.Wheat, 10, ground+1, 5, nil) // bank ring of a width-8 river
	w.SetBlock("oak_log", 10, ground+1, 1, nil)

	way := &osm.Way{
		Nodes: []osm.Node{{X: 0, Z: 0}, {X: 20, Z: 0}},
		Tags:  map[string]string{"waterway": "river"},
	}
	require.True(t, waterway.Generate(w, way))

	// Core near the end of the way: three layers of water over dirt.
	for _, z := range []int{-4, 0, 4} {
		assert.Equal(t, block.Water, w.GetBlock(18, ground, z))
		assert.Equal(t, block.Water, w.GetBlock(18, ground-2, z))
		assert.Equal(t, block.Dirt, w.GetBlock(18, ground-3, z))
	}
	// Further upstream the bank ring of a later cross-section (x=15) is the
	// last write to these columns.
	assert.Equal(t, block.Water, w.GetBlock(10, ground, 0))
	assert.Equal(t, block.Air, w.GetBlock(10, ground-1, 0))
	assert.Equal(t, block.Dirt, w.GetBlock(10, ground-2, 0))
	assert.Equal(t, block.Dirt, w.GetBlock(10, ground-3, 0))
	// Bank: surface water, one layer dug out, dirt below.
	assert.Equal(t, block.Water, w.GetBlock(10, ground, 5))
	assert.Equal(t, block.Air, w.GetBlock(10, ground-1, 5))
	assert.Equal(t, block.Dirt, w.GetBlock(10, ground-2, 5))
	// Outside the channel the terrain is intact.
	assert.Equal(t, block.GrassBlock, w.GetBlock(10, ground, 6))

	// Vegetation above the channel is cleared, other blocks are not.
	assert.Equal(t, block.Air, w.GetBlock(10, ground+1, 0))
	assert.Equal(t, block.Air, w.GetBlock(10, ground+1, 5))
	assert.Equal(t, block.Block("oak_log"), w.GetBlock(10, ground+1, 1))
}

func TestWorldSave(t *testing.T) {
	w, m := newFlatWorld(t, 4)
	w.FillTerrain(-20, -20, 20, 20)
	w.SetBlock(block.Stone, 600, 10, 0, nil) // chunk 37 → region 1

	dir := t.TempDir()
	stats, err := w.Save(context.Background(), dir, 4)
	require.NoError(t, err)

	// x,z -20..20 spans chunks -2..1 on both axes: 16 chunks in 4 regions,
	// plus the lone chunk in region (1,0).
	assert.Equal(t, 17, stats.Chunks)
	assert.Equal(t, 5, stats.RegionsWritten)
	for _, name := range []string{"r.0.0.mca", "r.-1.-1.mca", "r.-1.0.mca", "r.0.-1.mca", "r.1.0.mca"} {
		_, err := os.Stat(filepath.Join(dir, "region", name))
		assert.NoError(t, err, name)
	}
	assert.Equal(t, 17.0, testutil.ToFloat64(m.SectionsEncoded))

	// Nothing changed: no region is rewritten.
	stats, err = w.Save(context.Background(), dir, 4)
	require.NoError(t, err)
	assert.Zero(t, stats.RegionsWritten)
	assert.Equal(t, 5, stats.RegionsUnchanged)

	// One change rewrites only its region.
	w.SetBlock(block.Water, 1, 4, 1, nil)
	stats, err = w.Save(context.Background(), dir, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.RegionsWritten)
	assert.Equal(t, 4, stats.RegionsUnchanged)
}

func TestWorldSaveCancelled(t *testing.T) {
	w, _ := newFlatWorld(t, 4)
	w.FillTerrain(0, 0, 40, 40)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w.Save(ctx, t.TempDir(), 2)
	assert.ErrorIs(t, err, context.Canceled)
}
