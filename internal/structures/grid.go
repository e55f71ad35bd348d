package structures

import (
	"context"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

// Grid dimension bounds.
const (
	MinGridDim = 1
	MaxGridDim = 12
)

// GridRenderer draws one 2-D array frame. Highlights are keyed by the
// flattened index row*cols+col.
type GridRenderer interface {
	RenderGrid(cells [][]int, h step.HighlightMap)
}

// Grid is a 2-D array visualizer with animated row and column sweeps.
type Grid struct {
	animator
	cells  [][]int
	rows   int
	cols   int
	render GridRenderer
}

func NewGrid(rows, cols int, r GridRenderer, n notify.Notifier, d playback.Delayer, hold time.Duration) (*Grid, error) {
	if rows < MinGridDim || rows > MaxGridDim || cols < MinGridDim || cols > MaxGridDim {
		return nil, ErrSizeRange
	}
	cells := make([][]int, rows)
	for i := range cells {
		cells[i] = make([]int, cols)
	}
	return &Grid{
		animator: newAnimator(n, d, hold),
		cells:    cells,
		rows:     rows,
		cols:     cols,
		render:   r,
	}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Cells returns a copy of the grid contents.
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.rows)
	for i := range out {
		out[i] = append([]int(nil), g.cells[i]...)
	}
	return out
}

func (g *Grid) draw(h step.HighlightMap) {
	if g.render != nil {
		g.render.RenderGrid(g.Cells(), h)
	}
}

func (g *Grid) flat(r, c int) int { return r*g.cols + c }

// At returns the cell at (r, c).
func (g *Grid) At(r, c int) (int, error) {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return 0, ErrIndexRange
	}
	return g.cells[r][c], nil
}

// Set writes v at (r, c) with a one-frame highlight.
func (g *Grid) Set(ctx context.Context, r, c, v int) error {
	if err := g.acquire(); err != nil {
		return err
	}
	defer g.gate.Release()

	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return g.reject("cell out of range", ErrIndexRange)
	}
	g.cells[r][c] = v
	g.draw(step.HighlightMap{g.flat(r, c): step.TokenInsert})
	if err := g.wait(ctx); err != nil {
		g.draw(nil)
		return err
	}
	g.draw(nil)
	return nil
}

// RowSweep visits one row left to right.
func (g *Grid) RowSweep(ctx context.Context, r int) error {
	if err := g.acquire(); err != nil {
		return err
	}
	defer g.gate.Release()

	if r < 0 || r >= g.rows {
		return g.reject("row out of range", ErrIndexRange)
	}
	for c := 0; c < g.cols; c++ {
		g.draw(step.HighlightMap{g.flat(r, c): step.TokenVisit})
		if err := g.wait(ctx); err != nil {
			g.draw(nil)
			return err
		}
	}
	g.draw(nil)
	return nil
}

// ColSweep visits one column top to bottom.
func (g *Grid) ColSweep(ctx context.Context, c int) error {
	if err := g.acquire(); err != nil {
		return err
	}
	defer g.gate.Release()

	if c < 0 || c >= g.cols {
		return g.reject("column out of range", ErrIndexRange)
	}
	for r := 0; r < g.rows; r++ {
		g.draw(step.HighlightMap{g.flat(r, c): step.TokenVisit})
		if err := g.wait(ctx); err != nil {
			g.draw(nil)
			return err
		}
	}
	g.draw(nil)
	return nil
}

// Fill sweeps the whole grid row-major, writing v into every cell. The
// sweep runs to completion once started.
func (g *Grid) Fill(ctx context.Context, v int) error {
	if err := g.acquire(); err != nil {
		return err
	}
	defer g.gate.Release()

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.cells[r][c] = v
			g.draw(step.HighlightMap{g.flat(r, c): step.TokenInsert})
			g.waitThrough(ctx)
		}
	}
	g.draw(nil)
	return nil
}
