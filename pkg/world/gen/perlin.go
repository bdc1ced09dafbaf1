package gen

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3

	// terrainScale is the horizontal size, in blocks, of one noise unit.
	terrainScale = 128.0
)

// PerlinGenerator produces rolling terrain around a base height.
type PerlinGenerator struct {
	noise     *perlin.Perlin
	base      int
	amplitude float64
}

// NewPerlinGenerator creates a PerlinGenerator. Heights vary by at most
// amplitude blocks above and below base.
func NewPerlinGenerator(seed int64, base int, amplitude float64) *PerlinGenerator {
	return &PerlinGenerator{
		noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		base:      base,
		amplitude: amplitude,
	}
}

func (g *PerlinGenerator) HeightAt(blockX, blockZ int) int {
	n := g.noise.Noise2D(float64(blockX)/terrainScale, float64(blockZ)/terrainScale)
	// Noise2D stays well inside [-1, 1] for these parameters; clamp anyway.
	n = math.Max(-1, math.Min(1, n))
	return clampHeight(g.base + int(math.Round(n*g.amplitude)))
}
