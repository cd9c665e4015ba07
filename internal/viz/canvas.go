package viz

import "strings"

// Braille cells pack 2x4 dots per terminal character (Unicode 0x2800).
var dotMask = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface with a world-coordinate mapping:
// x grows right, y grows *up*, matching the ropeway geometry.
type Canvas struct {
	Width, Height int // in characters
	grid          [][]rune

	xMin, xMax float64
	yMin, yMax float64
}

// NewCanvas builds a canvas mapping the world rectangle onto w x h
// characters. A small margin keeps curves off the exact border.
func NewCanvas(w, h int, xMin, xMax, yMin, yMax float64) *Canvas {
	c := &Canvas{Width: w, Height: h, xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax}
	c.grid = make([][]rune, h)
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

// project maps world coordinates to sub-pixel dot coordinates.
func (c *Canvas) project(x, y float64) (int, int) {
	px := (x - c.xMin) / (c.xMax - c.xMin) * float64(c.Width*2-1)
	// World y up, canvas y down.
	py := (c.yMax - y) / (c.yMax - c.yMin) * float64(c.Height*4-1)
	return int(px + 0.5), int(py + 0.5)
}

// Plot sets the dot nearest to the world point (x, y).
func (c *Canvas) Plot(x, y float64) {
	c.set(c.project(x, y))
}

func (c *Canvas) set(px, py int) {
	if px < 0 || py < 0 {
		return
	}
	col, row := px/2, py/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= dotMask[py%4][px%2]
}

// PlotCurve draws a polyline through consecutive samples.
func (c *Canvas) PlotCurve(xs, ys []float64) {
	for i := 1; i < len(xs); i++ {
		x0, y0 := c.project(xs[i-1], ys[i-1])
		x1, y1 := c.project(xs[i], ys[i])
		c.line(x0, y0, x1, y1)
	}
}

// PlotDots draws samples without connecting them; used for the dashed
// unloaded-rope reference.
func (c *Canvas) PlotDots(xs, ys []float64) {
	for i := range xs {
		c.Plot(xs[i], ys[i])
	}
}

// Marker draws a 3x3 dot block around the world point, big enough to
// read as the gondola.
func (c *Canvas) Marker(x, y float64) {
	px, py := c.project(x, y)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			c.set(px+dx, py+dy)
		}
	}
}

// line is Bresenham in dot coordinates.
func (c *Canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
