// Package waterway carves rivers, canals and other waterways into the world.
package waterway

import (
	"github.com/OCharnyshevich/osm2mc/internal/block"
	"github.com/OCharnyshevich/osm2mc/internal/bresenham"
	"github.com/OCharnyshevich/osm2mc/internal/osm"
)

// Editor is the part of the world the carver reads from and writes to.
type Editor interface {
	// GroundLevel returns the surface elevation at a column.
	GroundLevel(x, z int) int
	// SetBlock writes b. With a non-nil whitelist the write only happens
	// when the current block is one of the listed blocks.
	SetBlock(b block.Block, x, y, z int, whitelist []block.Block)
}

// Generate carves the waterway described by way. It returns false without
// touching the editor when the way is not a waterway or lies below ground.
func Generate(ed Editor, way *osm.Way) bool {
	kind, ok := way.Tag("waterway")
	if !ok {
		return false
	}

	p := ProfileFor(kind)
	if raw, ok := way.Tag("width"); ok {
		p.Width = ParseWidth(raw, p.Width)
	}

	if layer, ok := way.Tag("layer"); ok && BelowGround(layer) {
		return false
	}

	// Pairs only: the polyline is never closed back to its first node.
	for i := 1; i < len(way.Nodes); i++ {
		prev, cur := way.Nodes[i-1], way.Nodes[i]
		for _, pt := range bresenham.Line(prev.X, prev.Z, cur.X, cur.Z) {
			CarveChannel(ed, pt.X, pt.Z, p)
		}
	}
	return true
}

// CarveChannel cuts one square cross-section of the channel centered on
// (cx, cz), with a one block bank ring when the channel is deeper than one.
// The ground level is sampled once at the center and used for every column,
// so wide channels on steep terrain step at their edges.
func CarveChannel(ed Editor, cx, cz int, p Profile) {
	half := p.Width / 2
	ground := ed.GroundLevel(cx, cz)

	for x := cx - half - 1; x <= cx+half+1; x++ {
		for z := cz - half - 1; z <= cz+half+1; z++ {
			dist := max(abs(x-cx), abs(z-cz))

			switch {
			case dist <= half:
				for d := 0; d < p.Depth; d++ {
					ed.SetBlock(block.Water, x, ground-d, z, nil)
				}
				ed.SetBlock(block.Dirt, x, ground-p.Depth, z, nil)
				ed.SetBlock(block.Air, x, ground+1, z, block.Vegetation)

			case dist == half+1 && p.Depth > 1:
				slope := max(p.Depth-1, 1)
				for d := 0; d < slope; d++ {
					if d == 0 {
						ed.SetBlock(block.Water, x, ground, z, nil)
					} else {
						ed.SetBlock(block.Air, x, ground-d, z, nil)
					}
				}
				ed.SetBlock(block.Dirt, x, ground-slope, z, nil)
				ed.SetBlock(block.Air, x, ground+1, z, block.Vegetation)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
