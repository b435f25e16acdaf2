package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenVertex is a projected vertex: pixel position plus view depth
type screenVertex struct {
	X, Y, Z float64
}

// depthTarget is a color image with a per-pixel depth buffer; smaller depth is closer
type depthTarget struct {
	img    *image.RGBA
	zbuf   []float64
	width  int
	height int
}

func newDepthTarget(width, height int) *depthTarget {
	t := &depthTarget{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuf:   make([]float64, width*height),
		width:  width,
		height: height,
	}
	return t
}

// clear fills the image with col and resets the depth buffer
func (t *depthTarget) clear(col color.RGBA) {
	pix := t.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = col.R, col.G, col.B, col.A
	}
	for i := range t.zbuf {
		t.zbuf[i] = math.Inf(1)
	}
}

// plot writes col at x, y when z passes the depth test
func (t *depthTarget) plot(x, y int, z float64, col color.RGBA) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	idx := y*t.width + x
	if z < t.zbuf[idx] {
		t.zbuf[idx] = z
		t.img.SetRGBA(x, y, col)
	}
}

// fillTriangle fills a triangle with scanlines, interpolating depth along edges and spans
func (t *depthTarget) fillTriangle(a, b, c screenVertex, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	yStart := int(math.Max(0, math.Ceil(a.Y)))
	yEnd := int(math.Min(float64(t.height-1), math.Floor(c.Y)))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// long edge a-c always spans the scanline
		xl, zl := edgeAt(a, c, fy)

		var xr, zr float64
		if fy < b.Y {
			xr, zr = edgeAt(a, b, fy)
		} else {
			xr, zr = edgeAt(b, c, fy)
		}

		if xl > xr {
			xl, xr = xr, xl
			zl, zr = zr, zl
		}

		xs := int(math.Max(0, math.Ceil(xl)))
		xe := int(math.Min(float64(t.width-1), math.Floor(xr)))
		for x := xs; x <= xe; x++ {
			s := 0.0
			if xr != xl {
				s = (float64(x) - xl) / (xr - xl)
			}
			t.plot(x, y, zl+s*(zr-zl), col)
		}
	}
}

func edgeAt(p, q screenVertex, y float64) (x, z float64) {
	if q.Y == p.Y {
		return p.X, p.Z
	}
	s := (y - p.Y) / (q.Y - p.Y)
	return p.X + s*(q.X-p.X), p.Z + s*(q.Z-p.Z)
}

// drawLine draws a depth tested line using Bresenham's algorithm
func (t *depthTarget) drawLine(a, b screenVertex, col color.RGBA) {
	x1, y1 := int(math.Round(a.X)), int(math.Round(a.Y))
	x2, y2 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	steps := max(dx, dy)
	err := dx - dy

	for i := 0; ; i++ {
		z := a.Z
		if steps > 0 {
			z += (b.Z - a.Z) * float64(i) / float64(steps)
		}
		t.plot(x1, y1, z, col)

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
