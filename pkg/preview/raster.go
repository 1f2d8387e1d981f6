package preview

import (
	"image"
	"image/color"
	"math"
)

// fillTriangleWithDepth fills a triangle with depth testing.
// Each vertex is (screen x, screen y, camera depth).
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, v1, v2, v3 [3]float64, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if v1[1] > v2[1] {
		v1, v2 = v2, v1
	}
	if v2[1] > v3[1] {
		v2, v3 = v3, v2
	}
	if v1[1] > v2[1] {
		v1, v2 = v2, v1
	}
	if v3[1] == v1[1] {
		return // degenerate, zero height
	}

	bounds := img.Bounds()
	width := bounds.Dx()

	yStart := int(math.Max(0, math.Ceil(v1[1])))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Floor(v3[1])))

	// Scanline algorithm with depth interpolation
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// The long edge 1-3 spans every scanline, the short edge is 1-2 above
		// the middle vertex and 2-3 below it
		xA, zA := edgeAt(v1, v3, fy)
		var xB, zB float64
		if fy < v2[1] {
			xB, zB = edgeAt(v1, v2, fy)
		} else {
			xB, zB = edgeAt(v2, v3, fy)
		}

		if xA > xB {
			xA, xB = xB, xA
			zA, zB = zB, zA
		}

		// Clamp to image bounds
		xStart := int(math.Max(0, math.Ceil(xA)))
		xEnd := int(math.Min(float64(bounds.Max.X-1), math.Floor(xB)))

		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if xB != xA {
				t = (float64(x) - xA) / (xB - xA)
			}
			z := zA + t*(zB-zA)

			// Depth test - draw if closer (smaller z)
			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// edgeAt interpolates x and depth of the edge a-b at scanline y
func edgeAt(a, b [3]float64, y float64) (float64, float64) {
	if b[1] == a[1] {
		return a[0], a[2]
	}
	t := (y - a[1]) / (b[1] - a[1])
	return a[0] + t*(b[0]-a[0]), a[2] + t*(b[2]-a[2])
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
