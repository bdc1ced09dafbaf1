// Package bresenham rasterizes straight segments onto the integer block grid.
package bresenham

// Point is a cell on the ground plane.
type Point struct {
	X, Z int
}

// Line returns every cell on the segment from (x1, z1) to (x2, z2), both
// endpoints included, in order from start to end. Consecutive cells differ by
// at most one on each axis, so the result has max(|dx|, |dz|)+1 entries.
func Line(x1, z1, x2, z2 int) []Point {
	dx := abs(x2 - x1)
	dz := -abs(z2 - z1)
	sx, sz := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if z1 > z2 {
		sz = -1
	}

	points := make([]Point, 0, max(dx, -dz)+1)
	err := dx + dz
	x, z := x1, z1
	for {
		points = append(points, Point{X: x, Z: z})
		if x == x2 && z == z2 {
			return points
		}
		e2 := 2 * err
		if e2 >= dz {
			err += dz
			x += sx
		}
		if e2 <= dx {
			err += dx
			z += sz
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
