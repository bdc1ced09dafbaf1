package editor

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/osm2mc/pkg/world/anvil"
	"github.com/OCharnyshevich/osm2mc/pkg/world/gen"
)

// SaveStats summarizes one Save call.
type SaveStats struct {
	Chunks           int
	RegionsWritten   int
	RegionsUnchanged int
}

// Save encodes every chunk holding written blocks and writes them as region
// files under dir/region. Chunks are encoded by up to workers goroutines.
// Regions whose content matches the previous Save to the same dir are not
// rewritten.
func (w *World) Save(ctx context.Context, dir string, workers int) (SaveStats, error) {
	cols := w.columns()
	regionDir := filepath.Join(dir, "region")

	var (
		mu      sync.Mutex
		regions = make(map[anvil.RegionPos]map[gen.ChunkPos][]byte)
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for pos, col := range cols {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := anvil.EncodeChunk(pos.X, pos.Z, col)
			if err != nil {
				return fmt.Errorf("encode chunk (%d,%d): %w", pos.X, pos.Z, err)
			}

			sections := 0
			for _, sec := range col {
				if sec != nil && !sec.Empty() {
					sections++
				}
			}
			w.metrics.SectionsEncoded.Add(float64(sections))

			rp := anvil.RegionOf(pos)
			mu.Lock()
			defer mu.Unlock()
			if regions[rp] == nil {
				regions[rp] = make(map[gen.ChunkPos][]byte)
			}
			regions[rp][pos] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SaveStats{}, err
	}

	stats := SaveStats{Chunks: len(cols)}
	for rp, chunks := range regions {
		digest := anvil.RegionDigest(chunks)
		key := savedRegion{dir: regionDir, pos: rp}

		w.mu.RLock()
		prev, seen := w.saved[key]
		w.mu.RUnlock()
		if seen && prev == digest {
			stats.RegionsUnchanged++
			w.metrics.RegionsReused.Inc()
			continue
		}

		if err := anvil.SaveRegion(regionDir, rp.X, rp.Z, chunks); err != nil {
			return stats, fmt.Errorf("save region (%d,%d): %w", rp.X, rp.Z, err)
		}

		w.mu.Lock()
		w.saved[key] = digest
		w.mu.Unlock()

		stats.RegionsWritten++
		w.metrics.RegionsWritten.Inc()
		w.log.Info("saved region", "x", rp.X, "z", rp.Z, "chunks", len(chunks))
	}
	return stats, nil
}
