package pencil

import "image"

// RasterizeLine returns the 8-connected cells of the line from c0 to c1,
// starting with c0 and ending with c1.
//
// The error accumulator is kept in units of 1/(2*dx) so the rasterization
// stays in integers: the slope dy/dx becomes 2*dy, the half-cell threshold
// becomes dx and a whole cell becomes 2*dx.
func RasterizeLine(c0 image.Point, c1 image.Point) []image.Point {
	dx := abs(c1.X - c0.X)
	dy := abs(c1.Y - c0.Y)
	sx := sign(c1.X - c0.X)
	sy := sign(c1.Y - c0.Y)

	if dx == 0 {
		cells := make([]image.Point, 0, dy+1)
		for y := c0.Y; ; y += sy {
			cells = append(cells, image.Pt(c0.X, y))
			if y == c1.Y {
				break
			}
		}
		return cells
	}

	cells := make([]image.Point, 0, dx+dy+1)
	y := c0.Y
	acc := 0
	for x := c0.X; ; x += sx {
		cells = append(cells, image.Pt(x, y))
		if x == c1.X {
			break
		}

		acc += 2 * dy
		for acc > dx && y != c1.Y {
			y += sy
			acc -= 2 * dx
			// The last step of a column lands on the next column's cell.
			if acc > dx && y != c1.Y {
				cells = append(cells, image.Pt(x, y))
			}
		}
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
