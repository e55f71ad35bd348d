package viz

import (
	"fmt"
	"io"

	"github.com/san-kum/structviz/internal/step"
	"github.com/san-kum/structviz/internal/structures"
)

const (
	clearScreen = "\033[2J\033[H"
	// HideCursor and ShowCursor wrap a live terminal session.
	HideCursor = "\033[?25l"
	ShowCursor = "\033[?25h"
)

// SeqPrinter renders sequence frames to a terminal, clearing the screen
// between frames. It drives the non-interactive live commands.
type SeqPrinter struct {
	out     io.Writer
	frame   func(values []int, h step.HighlightMap) string
	caption string
}

func NewSeqPrinter(out io.Writer, frame func([]int, step.HighlightMap) string, caption string) *SeqPrinter {
	return &SeqPrinter{out: out, frame: frame, caption: caption}
}

// NewArrayPrinter is a SeqPrinter over the bar-chart frame.
func NewArrayPrinter(out io.Writer, caption string) *SeqPrinter {
	return NewSeqPrinter(out, ArrayFrame, caption)
}

func (p *SeqPrinter) Render(live []int, h step.HighlightMap) {
	fmt.Fprint(p.out, clearScreen)
	if p.caption != "" {
		fmt.Fprintf(p.out, "  %s\n\n", Cyan.Render(p.caption))
	}
	fmt.Fprint(p.out, p.frame(live, h))
}

// TreePrinter renders tree frames to a terminal.
type TreePrinter struct {
	out     io.Writer
	caption string
}

func NewTreePrinter(out io.Writer, caption string) *TreePrinter {
	return &TreePrinter{out: out, caption: caption}
}

func (p *TreePrinter) RenderTree(root *structures.BSTNode, h step.HighlightMap) {
	fmt.Fprint(p.out, clearScreen)
	if p.caption != "" {
		fmt.Fprintf(p.out, "  %s\n\n", Cyan.Render(p.caption))
	}
	fmt.Fprint(p.out, TreeFrame(root, h))
}

// BucketPrinter renders hash table frames to a terminal.
type BucketPrinter struct {
	out     io.Writer
	caption string
}

func NewBucketPrinter(out io.Writer, caption string) *BucketPrinter {
	return &BucketPrinter{out: out, caption: caption}
}

func (p *BucketPrinter) RenderBuckets(buckets [][]structures.Entry, h step.HighlightMap) {
	fmt.Fprint(p.out, clearScreen)
	if p.caption != "" {
		fmt.Fprintf(p.out, "  %s\n\n", Cyan.Render(p.caption))
	}
	fmt.Fprint(p.out, BucketsFrame(buckets, h))
}

// GridPrinter renders 2-D array frames to a terminal.
type GridPrinter struct {
	out     io.Writer
	caption string
}

func NewGridPrinter(out io.Writer, caption string) *GridPrinter {
	return &GridPrinter{out: out, caption: caption}
}

func (p *GridPrinter) RenderGrid(cells [][]int, h step.HighlightMap) {
	fmt.Fprint(p.out, clearScreen)
	if p.caption != "" {
		fmt.Fprintf(p.out, "  %s\n\n", Cyan.Render(p.caption))
	}
	fmt.Fprint(p.out, GridFrame(cells, h))
}
