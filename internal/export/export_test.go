package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/structviz/internal/step"
	"github.com/san-kum/structviz/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 4)
	c.FillRect(0, 0, 3, 3)
	svg := CanvasToSVG(c, 2.0)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected XML header")
	}
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("expected svg element")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected dots for lit sub-pixels")
	}
}

func TestCanvasToSVGMatchesCanvasBits(t *testing.T) {
	// A single lit sub-pixel must come out as exactly one dot, placed by the
	// same bit mapping the canvas wrote with.
	c := viz.NewCanvas(2, 2)
	c.Set(3, 5) // col 1, row 1, sub-pixel (1, 1)
	svg := CanvasToSVG(c, 1.0)

	if got := strings.Count(svg, "<circle"); got != 1 {
		t.Fatalf("expected exactly 1 dot, got %d", got)
	}
	if !strings.Contains(svg, `cx="3.5" cy="5.5"`) {
		t.Errorf("dot placed at the wrong sub-pixel:\n%s", svg)
	}
}

func TestCanvasToSVG_Nil(t *testing.T) {
	if CanvasToSVG(nil, 2.0) != "" {
		t.Error("expected empty string for nil canvas")
	}
}

func TestSequenceToSVG(t *testing.T) {
	svg := SequenceToSVG([]int{5, 1, 3}, 2.0)
	if !strings.Contains(svg, "<circle") {
		t.Error("expected bars to produce dots")
	}
}

func TestWriteTraceJSON(t *testing.T) {
	input := []int{3, 1, 2}
	steps, err := step.Produce(step.SelectionSort, input)
	if err != nil {
		t.Fatalf("produce: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteTraceJSON(&buf, step.SelectionSort, input, steps); err != nil {
		t.Fatalf("write: %v", err)
	}

	var data TraceData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data.Algorithm != "selection" {
		t.Errorf("expected algorithm selection, got %s", data.Algorithm)
	}
	want := []int{1, 2, 3}
	for i := range want {
		if data.Output[i] != want[i] {
			t.Fatalf("output %v, want %v", data.Output, want)
		}
	}
	if len(data.Steps) != len(steps) {
		t.Errorf("expected %d step records, got %d", len(steps), len(data.Steps))
	}
	if data.Counts["compare"] == 0 {
		t.Error("expected compare count")
	}
}

func TestExportTraceJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	steps, err := step.Produce(step.BubbleSort, []int{2, 1})
	if err != nil {
		t.Fatalf("produce: %v", err)
	}
	if err := ExportTraceJSON(path, step.BubbleSort, []int{2, 1}, steps); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), `"algorithm": "bubble"`) {
		t.Error("expected algorithm field in file")
	}
}
