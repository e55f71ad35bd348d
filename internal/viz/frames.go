package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/structviz/internal/step"
	"github.com/san-kum/structviz/internal/structures"
)

// BarHeight is the bar chart height of the array frame, in rows.
const BarHeight = 10

// ArrayFrame draws the sequence as a bar chart with value and index rows.
// Highlighted positions take their token's color.
func ArrayFrame(values []int, h step.HighlightMap) string {
	var b strings.Builder
	n := len(values)
	if n == 0 {
		return Dim.Render("  (empty)") + "\n"
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

	heights := make([]int, n)
	for i, v := range values {
		hgt := v * BarHeight / max
		if v > 0 && hgt == 0 {
			hgt = 1
		}
		if hgt < 0 {
			hgt = 0
		}
		heights[i] = hgt
	}

	for row := BarHeight; row >= 1; row-- {
		b.WriteString("  ")
		for i := range values {
			cell := "    "
			if heights[i] >= row {
				cell = "██  "
			}
			if tok, ok := h[i]; ok {
				b.WriteString(StyleFor(tok).Render(cell))
			} else {
				b.WriteString(Dim.Render(cell))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("  ")
	for i, v := range values {
		cell := fmt.Sprintf("%-4d", v)
		if tok, ok := h[i]; ok {
			b.WriteString(StyleFor(tok).Render(cell))
		} else {
			b.WriteString(White.Render(cell))
		}
	}
	b.WriteString("\n  ")
	for i := range values {
		b.WriteString(Dimmer.Render(fmt.Sprintf("%-4d", i)))
	}
	b.WriteString("\n")
	return b.String()
}

// StackFrame draws the stack top-down as boxed slots.
func StackFrame(items []int, h step.HighlightMap) string {
	var b strings.Builder
	if len(items) == 0 {
		return Dim.Render("  (empty stack)") + "\n"
	}
	for i := len(items) - 1; i >= 0; i-- {
		label := fmt.Sprintf("│ %4d │", items[i])
		if tok, ok := h[i]; ok {
			label = StyleFor(tok).Render(label)
		} else {
			label = White.Render(label)
		}
		marker := "      "
		if i == len(items)-1 {
			marker = Dim.Render("top → ")
		}
		b.WriteString("  " + marker + label + "\n")
	}
	b.WriteString("        " + Dimmer.Render("└──────┘") + "\n")
	return b.String()
}

// QueueFrame draws the queue front-first, left to right.
func QueueFrame(items []int, h step.HighlightMap) string {
	if len(items) == 0 {
		return Dim.Render("  (empty queue)") + "\n"
	}
	var b strings.Builder
	b.WriteString("  " + Dim.Render("front "))
	for i, v := range items {
		cell := fmt.Sprintf("[%d]", v)
		if tok, ok := h[i]; ok {
			b.WriteString(StyleFor(tok).Render(cell))
		} else {
			b.WriteString(White.Render(cell))
		}
		if i < len(items)-1 {
			b.WriteString(Dimmer.Render("←"))
		}
	}
	b.WriteString(Dim.Render(" back") + "\n")
	return b.String()
}

// ListFrame draws a linked list with arrows; doubly-linked lists get
// bidirectional arrows.
func ListFrame(values []int, h step.HighlightMap, doubly bool) string {
	if len(values) == 0 {
		return Dim.Render("  (empty list)") + "\n"
	}
	arrow := " → "
	if doubly {
		arrow = " ⇄ "
	}
	var b strings.Builder
	b.WriteString("  " + Dim.Render("head") + Dimmer.Render(" → "))
	for i, v := range values {
		cell := fmt.Sprintf("[%d]", v)
		if tok, ok := h[i]; ok {
			b.WriteString(StyleFor(tok).Render(cell))
		} else {
			b.WriteString(White.Render(cell))
		}
		if i < len(values)-1 {
			b.WriteString(Dimmer.Render(arrow))
		}
	}
	b.WriteString(Dimmer.Render(" → ") + Dim.Render("nil") + "\n")
	return b.String()
}

// TreeFrame lays the tree out with one column per in-order position and two
// rows per level. Highlights are keyed by node value.
func TreeFrame(root *structures.BSTNode, h step.HighlightMap) string {
	if root == nil {
		return Dim.Render("  (empty tree)") + "\n"
	}

	const colWidth = 4
	type placed struct {
		node *structures.BSTNode
		x    int
		y    int
	}
	var nodes []placed
	maxDepth := 0
	x := 0
	var walk func(n *structures.BSTNode, depth int)
	walk = func(n *structures.BSTNode, depth int) {
		if n == nil {
			return
		}
		if depth > maxDepth {
			maxDepth = depth
		}
		walk(n.Left, depth+1)
		nodes = append(nodes, placed{node: n, x: x, y: depth})
		x++
		walk(n.Right, depth+1)
	}
	walk(root, 0)

	rows := (maxDepth+1)*2 - 1
	cols := x * colWidth
	grid := make([][]rune, rows)
	toks := make([][]step.Token, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		toks[i] = make([]step.Token, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	pos := make(map[*structures.BSTNode]placed, len(nodes))
	for _, p := range nodes {
		pos[p.node] = p
	}

	put := func(row, col int, s string, tok step.Token) {
		for i, r := range s {
			if col+i < cols {
				grid[row][col+i] = r
				toks[row][col+i] = tok
			}
		}
	}

	for _, p := range nodes {
		tok := h[p.node.Value]
		put(p.y*2, p.x*colWidth, fmt.Sprintf("%d", p.node.Value), tok)
		if p.node.Left != nil {
			c := pos[p.node.Left]
			put(p.y*2+1, (p.x*colWidth+c.x*colWidth)/2, "/", "")
		}
		if p.node.Right != nil {
			c := pos[p.node.Right]
			put(p.y*2+1, (p.x*colWidth+c.x*colWidth)/2+1, "\\", "")
		}
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.WriteString("  ")
		c := 0
		for c < cols {
			tok := toks[r][c]
			start := c
			for c < cols && toks[r][c] == tok {
				c++
			}
			seg := string(grid[r][start:c])
			if tok != "" {
				seg = StyleFor(tok).Render(seg)
			} else {
				seg = White.Render(seg)
			}
			b.WriteString(seg)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// BucketsFrame draws the hash table one bucket per line, chains as arrows.
// Highlights are keyed by bucket index.
func BucketsFrame(buckets [][]structures.Entry, h step.HighlightMap) string {
	var b strings.Builder
	for i, chain := range buckets {
		line := fmt.Sprintf("%2d │", i)
		if len(chain) == 0 {
			line += " " + "∅"
		}
		for j, e := range chain {
			if j > 0 {
				line += " →"
			}
			line += fmt.Sprintf(" [%s:%d]", e.Key, e.Value)
		}
		if tok, ok := h[i]; ok {
			b.WriteString("  " + StyleFor(tok).Render(line) + "\n")
		} else {
			b.WriteString("  " + Dim.Render(line) + "\n")
		}
	}
	return b.String()
}

// GridFrame draws the 2-D array as aligned cells. Highlights are keyed by
// the flattened index row*cols+col.
func GridFrame(cells [][]int, h step.HighlightMap) string {
	var b strings.Builder
	if len(cells) == 0 {
		return Dim.Render("  (empty grid)") + "\n"
	}
	cols := len(cells[0])
	for r, row := range cells {
		b.WriteString("  ")
		for c, v := range row {
			cell := fmt.Sprintf("%4d", v)
			if tok, ok := h[r*cols+c]; ok {
				b.WriteString(StyleFor(tok).Render(cell))
			} else {
				b.WriteString(White.Render(cell))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
