package gen

import "github.com/OCharnyshevich/osm2mc/internal/block"

const bedrockLevel = 0

// SurfaceBlock returns the block of a natural column whose top solid block is
// at height: grass on top, three layers of dirt, stone below and bedrock at
// the bottom. Everything above height is air.
func SurfaceBlock(y, height int) block.Block {
	switch {
	case y > height:
		return block.Air
	case y == bedrockLevel:
		return block.Bedrock
	case y == height:
		return block.GrassBlock
	case y > height-4:
		return block.Dirt
	default:
		return block.Stone
	}
}
