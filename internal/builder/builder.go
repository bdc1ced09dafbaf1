// Package builder runs the full conversion: ways in, region files out.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/OCharnyshevich/osm2mc/internal/config"
	"github.com/OCharnyshevich/osm2mc/internal/editor"
	"github.com/OCharnyshevich/osm2mc/internal/metrics"
	"github.com/OCharnyshevich/osm2mc/internal/osm"
	"github.com/OCharnyshevich/osm2mc/internal/waterway"
	"github.com/OCharnyshevich/osm2mc/pkg/world/gen"
)

// maxTerrainPad bounds how far around the ways terrain is laid, whatever
// width tags say.
const maxTerrainPad = 64

// Result summarizes a build.
type Result struct {
	Ways    int
	Carved  int
	Skipped int
	Save    editor.SaveStats
}

// Builder converts one ways file into a world.
type Builder struct {
	cfg     *config.Config
	log     *slog.Logger
	reg     *prometheus.Registry
	metrics *metrics.Metrics
}

// New creates a Builder with its own metrics registry.
func New(cfg *config.Config, log *slog.Logger) *Builder {
	reg := prometheus.NewRegistry()
	return &Builder{
		cfg:     cfg,
		log:     log,
		reg:     reg,
		metrics: metrics.New(reg),
	}
}

// Run loads the ways, carves them into fresh terrain and saves the world.
func (b *Builder) Run(ctx context.Context) (Result, error) {
	downloads, err := os.MkdirTemp("", "osm2mc-")
	if err != nil {
		return Result{}, fmt.Errorf("create download dir: %w", err)
	}
	defer os.RemoveAll(downloads)

	ways, err := osm.Load(ctx, b.cfg.Input, downloads)
	if err != nil {
		return Result{}, fmt.Errorf("load ways: %w", err)
	}
	b.log.Info("loaded ways", "count", len(ways), "input", b.cfg.Input)

	w := editor.NewWorld(b.generator(), b.metrics, b.log)

	if minX, minZ, maxX, maxZ, ok := osm.Bounds(ways); ok {
		pad := terrainPad(ways)
		w.FillTerrain(minX-pad, minZ-pad, maxX+pad, maxZ+pad)
	}

	res := Result{Ways: len(ways)}
	for i := range ways {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if waterway.Generate(w, &ways[i]) {
			res.Carved++
			b.metrics.WaysCarved.Inc()
		} else {
			res.Skipped++
			b.metrics.WaysSkipped.Inc()
			b.log.Debug("skipped way", "id", ways[i].ID)
		}
	}
	b.log.Info("carved waterways", "carved", res.Carved, "skipped", res.Skipped, "sections", w.SectionCount())

	res.Save, err = w.Save(ctx, b.cfg.OutputDir, b.cfg.Workers)
	if err != nil {
		return res, fmt.Errorf("save world: %w", err)
	}
	b.log.Info("saved world",
		"dir", b.cfg.OutputDir,
		"chunks", res.Save.Chunks,
		"regions", res.Save.RegionsWritten,
	)

	if b.cfg.MetricsFile != "" {
		if err := metrics.WriteFile(b.cfg.MetricsFile, b.reg); err != nil {
			return res, fmt.Errorf("write metrics: %w", err)
		}
	}
	return res, nil
}

func (b *Builder) generator() gen.Generator {
	switch b.cfg.Terrain {
	case "perlin":
		return gen.NewPerlinGenerator(b.cfg.Seed, b.cfg.GroundLevel, b.cfg.TerrainAmplitude)
	default:
		return gen.NewFlatGenerator(b.cfg.GroundLevel)
	}
}

// terrainPad returns how far beyond the nodes the widest channel reaches,
// bank included.
func terrainPad(ways []osm.Way) int {
	width := 0
	for i := range ways {
		kind, ok := ways[i].Tag("waterway")
		if !ok {
			continue
		}
		p := waterway.ProfileFor(kind)
		if raw, ok := ways[i].Tag("width"); ok {
			p.Width = waterway.ParseWidth(raw, p.Width)
		}
		width = max(width, p.Width)
	}
	return min(width/2+1, maxTerrainPad)
}
