package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/structviz/internal/step"
	"github.com/san-kum/structviz/internal/structures"
)

func TestArrayFrame(t *testing.T) {
	plain := ArrayFrame([]int{3, 1, 2}, nil)
	for _, want := range []string{"3", "1", "2", "0"} {
		if !strings.Contains(plain, want) {
			t.Errorf("frame missing %q", want)
		}
	}

	if !strings.Contains(ArrayFrame(nil, nil), "empty") {
		t.Error("empty frame should say so")
	}
}

func TestArrayFrameScalesBars(t *testing.T) {
	// The tallest value owns the top row; a zero value draws no bar.
	out := ArrayFrame([]int{10, 0}, nil)
	lines := strings.Split(out, "\n")
	if len(lines) < BarHeight+2 {
		t.Fatalf("expected at least %d lines, got %d", BarHeight+2, len(lines))
	}
	if !strings.Contains(lines[0], "█") {
		t.Error("max value should reach the top row")
	}
}

func TestStackAndQueueFrames(t *testing.T) {
	s := StackFrame([]int{1, 2}, step.HighlightMap{1: step.TokenInsert})
	if !strings.Contains(s, "top") {
		t.Error("stack frame should mark the top")
	}
	if !strings.Contains(StackFrame(nil, nil), "empty") {
		t.Error("empty stack frame should say so")
	}

	q := QueueFrame([]int{1, 2, 3}, nil)
	if !strings.Contains(q, "front") || !strings.Contains(q, "back") {
		t.Error("queue frame should mark both ends")
	}
}

func TestListFrame(t *testing.T) {
	single := ListFrame([]int{1, 2}, nil, false)
	if !strings.Contains(single, "→") || !strings.Contains(single, "nil") {
		t.Errorf("singly frame: %q", single)
	}
	double := ListFrame([]int{1, 2}, nil, true)
	if !strings.Contains(double, "⇄") {
		t.Errorf("doubly frame: %q", double)
	}
}

func TestTreeFrame(t *testing.T) {
	root := &structures.BSTNode{
		Value: 50,
		Left:  &structures.BSTNode{Value: 30},
		Right: &structures.BSTNode{Value: 70},
	}
	out := TreeFrame(root, step.HighlightMap{30: step.TokenVisit})
	for _, want := range []string{"50", "30", "70", "/", "\\"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree frame missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(TreeFrame(nil, nil), "empty") {
		t.Error("empty tree frame should say so")
	}
}

func TestBucketsFrame(t *testing.T) {
	buckets := make([][]structures.Entry, 4)
	buckets[1] = []structures.Entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
	out := BucketsFrame(buckets, step.HighlightMap{1: step.TokenVisit})
	if !strings.Contains(out, "[a:1]") || !strings.Contains(out, "→") {
		t.Errorf("buckets frame: %q", out)
	}
	if !strings.Contains(out, "∅") {
		t.Error("empty buckets should render a marker")
	}
}

func TestGridFrame(t *testing.T) {
	out := GridFrame([][]int{{1, 2}, {3, 4}}, step.HighlightMap{3: step.TokenInsert})
	for _, want := range []string{"1", "2", "3", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid frame missing %q", want)
		}
	}
}

func TestBarCanvas(t *testing.T) {
	c := BarCanvas([]int{5, 1, 3})
	out := c.String()
	if len(out) == 0 {
		t.Fatal("expected canvas output")
	}
	var lit bool
	for _, r := range out {
		if r > 0x2800 && r <= 0x28FF {
			lit = true
		}
	}
	if !lit {
		t.Error("expected lit braille cells")
	}

	empty := BarCanvas(nil)
	if empty.Width != 1 || empty.Height != 1 {
		t.Error("empty input should give a unit canvas")
	}
}

func TestCanvasPrimitives(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(-1, -1) // out of range is ignored
	c.Set(100, 100)
	c.Line(0, 0, 7, 15)
	c.FillRect(2, 2, 5, 5)
	if c.Grid[0][0] == 0x2800 {
		t.Error("line should light the origin cell")
	}
}
