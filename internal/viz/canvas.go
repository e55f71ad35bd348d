package viz

import "strings"

// BrailleBits maps sub-pixel position to its bit. Braille cells pack 2x4
// sub-pixels per rune (offset 0x2800):
//
//	1 4
//	2 5
//	3 6
//	7 8
var BrailleBits = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille sub-pixel grid used for exportable renderings of the
// final frame. The drawable area is (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width  int
	Height int
	Grid   [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(BrailleBits[y%4][x%2])
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham stepping.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
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

// FillRect lights every sub-pixel in the rectangle, inclusive of edges.
func (c *Canvas) FillRect(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// BarCanvas renders the sequence as a braille bar chart, one frame of the
// array visualizer in exportable form.
func BarCanvas(values []int) *Canvas {
	const (
		barWidth = 3 // sub-pixels
		gap      = 2
		height   = 40 // sub-pixels
	)
	n := len(values)
	if n == 0 {
		return NewCanvas(1, 1)
	}
	max := values[0]
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max < 1 {
		max = 1
	}

	subW := n*(barWidth+gap) + gap
	c := NewCanvas((subW+1)/2, (height+3)/4)
	for i, v := range values {
		h := v * height / max
		if v > 0 && h == 0 {
			h = 1
		}
		if h < 0 {
			h = 0
		}
		x0 := gap + i*(barWidth+gap)
		if h > 0 {
			c.FillRect(x0, height-h, x0+barWidth-1, height-1)
		}
	}
	return c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
