package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/structviz/internal/step"
)

type TraceData struct {
	Algorithm string         `json:"algorithm"`
	Input     []int          `json:"input"`
	Output    []int          `json:"output"`
	Steps     []StepRecord   `json:"steps"`
	Counts    map[string]int `json:"counts"`
}

type StepRecord struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	A     int    `json:"a"`
	B     int    `json:"b"`
	Value int    `json:"value,omitempty"`
}

// WriteTraceJSON emits the full trace, including the replayed output, so a
// reader can check the recording against the sorted result.
func WriteTraceJSON(w io.Writer, algorithm step.Algorithm, input []int, steps []step.Step) error {
	live := append([]int(nil), input...)
	records := make([]StepRecord, len(steps))
	for i, s := range steps {
		if err := step.Apply(live, s); err != nil {
			return err
		}
		records[i] = StepRecord{
			Index: i,
			Kind:  s.Kind.String(),
			A:     s.A,
			B:     s.B,
			Value: s.Value,
		}
	}

	var counter step.Counter
	counter.ObserveAll(steps)

	data := TraceData{
		Algorithm: string(algorithm),
		Input:     input,
		Output:    live,
		Steps:     records,
		Counts:    counter.ByName(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportTraceJSON writes the trace to path.
func ExportTraceJSON(path string, algorithm step.Algorithm, input []int, steps []step.Step) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteTraceJSON(file, algorithm, input, steps)
}
