package anvil

import (
	"bytes"
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/OCharnyshevich/osm2mc/internal/block"
	"github.com/OCharnyshevich/osm2mc/internal/legacy"
	"github.com/OCharnyshevich/osm2mc/pkg/world/gen"
	"github.com/OCharnyshevich/osm2mc/pkg/world/nbt"
)

const (
	// SectionsPerChunk is the number of 16-block sections in a 256 high column.
	SectionsPerChunk = 16
	lightBytes       = block.SectionVolume / 2
	biomePlains      = 1
)

// Column holds the sections of one chunk, bottom to top. nil = all-air.
type Column [SectionsPerChunk]*block.Section

// EncodeChunk encodes a chunk column as MC 1.8 NBT. Sections are converted
// with the legacy block table; all-air sections are omitted.
func EncodeChunk(cx, cz int, col *Column) ([]byte, error) {
	var buf bytes.Buffer
	w := nbt.NewWriter(&buf)

	w.BeginCompound("")
	w.BeginCompound("Level")

	w.WriteInt("xPos", int32(cx))
	w.WriteInt("zPos", int32(cz))
	w.WriteTagByte("TerrainPopulated", 1)
	w.WriteLong("LastUpdate", 0)

	present := make([]int, 0, SectionsPerChunk)
	for y, sec := range col {
		if sec != nil && !sec.Empty() {
			present = append(present, y)
		}
	}

	// Full brightness.
	light := bytes.Repeat([]byte{0xFF}, lightBytes)

	w.BeginList("Sections", nbt.TagCompound, len(present))
	for _, secY := range present {
		ids, data := legacy.EncodeSection(col[secY])

		w.BeginListElement()
		w.WriteTagByte("Y", byte(secY))
		w.WriteByteArray("Blocks", ids)
		w.WriteByteArray("Data", data)
		w.WriteByteArray("BlockLight", light)
		w.WriteByteArray("SkyLight", light)
		w.EndCompound()
	}

	w.WriteByteArray("Biomes", bytes.Repeat([]byte{biomePlains}, 256))
	w.WriteIntArray("HeightMap", computeHeightMap(col))

	w.EndCompound() // Level
	w.EndCompound() // root

	if w.Err() != nil {
		return nil, w.Err()
	}
	return buf.Bytes(), nil
}

// computeHeightMap calculates the lowest y above every non-air block of
// each x,z column, indexed z*16 + x.
func computeHeightMap(col *Column) []int32 {
	hm := make([]int32, 256)

	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
		scan:
			for secY := SectionsPerChunk - 1; secY >= 0; secY-- {
				sec := col[secY]
				if sec == nil {
					continue
				}
				for y := 15; y >= 0; y-- {
					if sec.Get(x, y, z) != block.Air {
						hm[z*16+x] = int32(secY*16 + y + 1)
						break scan
					}
				}
			}
		}
	}
	return hm
}

// RegionDigest hashes a region's encoded chunks in table order. Equal
// digests mean the region file content (apart from timestamps) is unchanged.
func RegionDigest(chunks map[gen.ChunkPos][]byte) uint64 {
	positions := make([]gen.ChunkPos, 0, len(chunks))
	for pos := range chunks {
		positions = append(positions, pos)
	}
	slices.SortFunc(positions, func(a, b gen.ChunkPos) int {
		if a.Z != b.Z {
			return a.Z - b.Z
		}
		return a.X - b.X
	})

	d := xxhash.New()
	var hdr [16]byte
	for _, pos := range positions {
		binary.BigEndian.PutUint64(hdr[0:8], uint64(int64(pos.X)))
		binary.BigEndian.PutUint64(hdr[8:16], uint64(int64(pos.Z)))
		d.Write(hdr[:])
		d.Write(chunks[pos])
	}
	return d.Sum64()
}
