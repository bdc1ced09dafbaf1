package gen

import (
	"testing"

	"github.com/OCharnyshevich/osm2mc/internal/block"
)

func TestFlatGeneratorHeight(t *testing.T) {
	g := NewFlatGenerator(64)
	for _, c := range [][2]int{{0, 0}, {-1000, 37}, {5, -5}} {
		if h := g.HeightAt(c[0], c[1]); h != 64 {
			t.Errorf("HeightAt(%d,%d) = %d, want 64", c[0], c[1], h)
		}
	}
}

func TestFlatGeneratorClamps(t *testing.T) {
	if h := NewFlatGenerator(-5).HeightAt(0, 0); h != minHeight {
		t.Errorf("HeightAt = %d, want %d", h, minHeight)
	}
	if h := NewFlatGenerator(900).HeightAt(0, 0); h != maxHeight {
		t.Errorf("HeightAt = %d, want %d", h, maxHeight)
	}
}

func TestPerlinGeneratorDeterministic(t *testing.T) {
	g1 := NewPerlinGenerator(42, 64, 12)
	g2 := NewPerlinGenerator(42, 64, 12)

	for x := -64; x < 64; x += 7 {
		for z := -64; z < 64; z += 11 {
			if g1.HeightAt(x, z) != g2.HeightAt(x, z) {
				t.Fatalf("HeightAt(%d,%d) differs for the same seed", x, z)
			}
		}
	}
}

func TestPerlinGeneratorWithinAmplitude(t *testing.T) {
	g := NewPerlinGenerator(999, 64, 10)
	for x := -500; x < 500; x += 13 {
		for z := -500; z < 500; z += 17 {
			h := g.HeightAt(x, z)
			if h < 54 || h > 74 {
				t.Fatalf("HeightAt(%d,%d) = %d, want 54..74", x, z, h)
			}
		}
	}
}

func TestPerlinGeneratorVaries(t *testing.T) {
	g := NewPerlinGenerator(7, 64, 20)
	first := g.HeightAt(0, 0)
	for x := 0; x < 2048; x += 31 {
		if g.HeightAt(x, x/2) != first {
			return
		}
	}
	t.Error("terrain should not be flat")
}

func TestSurfaceBlock(t *testing.T) {
	tests := []struct {
		y    int
		want block.Block
	}{
		{0, block.Bedrock},
		{1, block.Stone},
		{60, block.Stone},
		{61, block.Dirt},
		{63, block.Dirt},
		{64, block.GrassBlock},
		{65, block.Air},
	}
	for _, tt := range tests {
		if got := SurfaceBlock(tt.y, 64); got != tt.want {
			t.Errorf("SurfaceBlock(%d, 64) = %q, want %q", tt.y, got, tt.want)
		}
	}
}
