package gen

// FlatGenerator is a level ground at a fixed height.
type FlatGenerator struct {
	height int
}

// NewFlatGenerator creates a FlatGenerator whose top solid block is at height.
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{height: clampHeight(height)}
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.height
}
