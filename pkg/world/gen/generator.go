package gen

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int }

// Generator supplies the ground surface the element processors build on.
type Generator interface {
	// HeightAt returns the y of the top solid block of a column.
	HeightAt(blockX, blockZ int) int
}

const (
	minHeight = 1
	maxHeight = 250
)

func clampHeight(h int) int {
	if h < minHeight {
		return minHeight
	}
	if h > maxHeight {
		return maxHeight
	}
	return h
}
