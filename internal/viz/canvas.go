package viz

import (
	"math"
	"strings"
)

// Braille cells pack 2x4 dots each, so a w x h canvas addresses
// (2w) x (4h) dot coordinates. Bit offsets from U+2800:
//
//	1  8
//	2  10
//	4  20
//	40 80
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a braille dot matrix for terminal scatter and line drawing.
type Canvas struct {
	cols, rows int
	cells      []rune
}

// NewCanvas returns an empty canvas of cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{cols: cols, rows: rows, cells: make([]rune, cols*rows)}
	c.Clear()
	return c
}

// Dots returns the addressable dot grid size.
func (c *Canvas) Dots() (w, h int) { return 2 * c.cols, 4 * c.rows }

// Clear resets every cell to the empty braille pattern.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = brailleBase
	}
}

// Set lights the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] |= brailleDots[y%4][x%2]
}

// Line lights the dots on the segment from (x0, y0) to (x1, y1) with
// Bresenham stepping.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
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

// String renders the canvas, one line of text per cell row.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.rows * (c.cols + 1))
	for row := 0; row < c.rows; row++ {
		b.WriteString(string(c.cells[row*c.cols : (row+1)*c.cols]))
		b.WriteByte('\n')
	}
	return b.String()
}

// Scatter renders the points on a fresh canvas, scaled into the dot
// grid with a small margin, and draws the zero axes when they fall
// inside the data range. Points with non-finite coordinates are
// skipped.
func Scatter(xs, ys []float64, cols, rows int) string {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 || cols <= 0 || rows <= 0 {
		return ""
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}
	if minX > maxX {
		return ""
	}
	pad := func(lo, hi float64) (float64, float64) {
		span := hi - lo
		if span == 0 {
			span = 1
		}
		return lo - span*0.05, hi + span*0.05
	}
	minX, maxX = pad(minX, maxX)
	minY, maxY = pad(minY, maxY)

	c := NewCanvas(cols, rows)
	w, h := c.Dots()
	toDot := func(x, y float64) (int, int) {
		dx := int((x - minX) / (maxX - minX) * float64(w-1))
		dy := h - 1 - int((y-minY)/(maxY-minY)*float64(h-1))
		return dx, dy
	}

	if minX <= 0 && maxX >= 0 {
		x0, _ := toDot(0, minY)
		c.Line(x0, 0, x0, h-1)
	}
	if minY <= 0 && maxY >= 0 {
		_, y0 := toDot(minX, 0)
		c.Line(0, y0, w-1, y0)
	}

	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		c.Set(toDot(xs[i], ys[i]))
	}
	return c.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
