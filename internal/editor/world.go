// Package editor holds the block world the element processors write into.
package editor

import (
	"log/slog"
	"sync"

	"github.com/OCharnyshevich/osm2mc/internal/block"
	"github.com/OCharnyshevich/osm2mc/internal/metrics"
	"github.com/OCharnyshevich/osm2mc/pkg/world/anvil"
	"github.com/OCharnyshevich/osm2mc/pkg/world/gen"
)

// WorldHeight is the number of block layers in a 1.8 world.
const WorldHeight = anvil.SectionsPerChunk * 16

// SectionPos identifies one 16×16×16 section of the world.
type SectionPos struct {
	X, Y, Z int // chunk X, section Y, chunk Z
}

// World tracks placed blocks in sparse sections on top of a generator that
// supplies the ground surface.
//
// Writes are last-write-wins with no conflict detection. Callers carving
// from several goroutines must keep their coordinate ranges apart.
type World struct {
	mu        sync.RWMutex
	sections  map[SectionPos]*block.Section
	generator gen.Generator
	metrics   *metrics.Metrics
	log       *slog.Logger

	// saved keeps the digest of every region written by Save.
	saved map[savedRegion]uint64
}

type savedRegion struct {
	dir string
	pos anvil.RegionPos
}

// NewWorld creates an empty World over the given generator. m and log may
// be nil.
func NewWorld(generator gen.Generator, m *metrics.Metrics, log *slog.Logger) *World {
	if m == nil {
		m = metrics.Nop()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &World{
		sections:  make(map[SectionPos]*block.Section),
		generator: generator,
		metrics:   m,
		log:       log,
		saved:     make(map[savedRegion]uint64),
	}
}

func sectionOf(x, y, z int) SectionPos {
	return SectionPos{X: x >> 4, Y: y >> 4, Z: z >> 4}
}

// GroundLevel returns the y of the top solid block of the natural terrain.
func (w *World) GroundLevel(x, z int) int {
	return w.generator.HeightAt(x, z)
}

// GetBlock returns the block at the given position. Unwritten positions
// and positions outside the world are air.
func (w *World) GetBlock(x, y, z int) block.Block {
	if y < 0 || y >= WorldHeight {
		return block.Air
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	sec, ok := w.sections[sectionOf(x, y, z)]
	if !ok {
		return block.Air
	}
	return sec.Get(x&0xF, y&0xF, z&0xF)
}

// SetBlock places b at the given position. With a non-nil whitelist the
// block is only replaced when its current kind is listed. Positions outside
// the world height are ignored.
func (w *World) SetBlock(b block.Block, x, y, z int, whitelist []block.Block) {
	if y < 0 || y >= WorldHeight {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	pos := sectionOf(x, y, z)
	sec, ok := w.sections[pos]

	current := block.Air
	if ok {
		current = sec.Get(x&0xF, y&0xF, z&0xF)
	}
	if whitelist != nil && !current.In(whitelist) {
		return
	}
	if current == b {
		return
	}

	if !ok {
		sec = block.NewSection()
		w.sections[pos] = sec
	}
	sec.Set(x&0xF, y&0xF, z&0xF, b)
	w.metrics.BlocksWritten.Inc()
}

// FillTerrain lays natural ground columns over the inclusive block area so
// that later processors have terrain to cut into.
func (w *World) FillTerrain(minX, minZ, maxX, maxZ int) {
	for x := minX; x <= maxX; x++ {
		for z := minZ; z <= maxZ; z++ {
			h := w.generator.HeightAt(x, z)
			for y := 0; y <= h && y < WorldHeight; y++ {
				w.SetBlock(gen.SurfaceBlock(y, h), x, y, z, nil)
			}
		}
	}
	w.log.Debug("filled terrain", "minX", minX, "minZ", minZ, "maxX", maxX, "maxZ", maxZ)
}

// SectionCount returns the number of sections holding written blocks.
func (w *World) SectionCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.sections)
}

// columns groups the sections by chunk. The sections are shared, not copied.
func (w *World) columns() map[gen.ChunkPos]*anvil.Column {
	w.mu.RLock()
	defer w.mu.RUnlock()

	cols := make(map[gen.ChunkPos]*anvil.Column)
	for pos, sec := range w.sections {
		cp := gen.ChunkPos{X: pos.X, Z: pos.Z}
		col, ok := cols[cp]
		if !ok {
			col = &anvil.Column{}
			cols[cp] = col
		}
		col[pos.Y] = sec
	}
	return cols
}
