package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/structviz/internal/step"
)

// Store persists recorded sort traces under a base directory, one
// subdirectory per trace holding metadata.json and steps.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type TraceMetadata struct {
	ID        string         `json:"id"`
	Algorithm string         `json:"algorithm"`
	Timestamp time.Time      `json:"timestamp"`
	Seed      int64          `json:"seed"`
	Input     []int          `json:"input"`
	Steps     int            `json:"steps"`
	Counts    map[string]int `json:"counts"`
}

// Save writes the trace and returns its generated ID.
func (s *Store) Save(algorithm step.Algorithm, seed int64, input []int, steps []step.Step) (string, error) {
	// Nanosecond precision keeps rapid back-to-back saves from colliding.
	traceID := fmt.Sprintf("%s_%d", algorithm, time.Now().UnixNano())
	traceDir := filepath.Join(s.baseDir, traceID)

	if err := os.MkdirAll(traceDir, 0755); err != nil {
		return "", err
	}

	var counter step.Counter
	counter.ObserveAll(steps)

	meta := TraceMetadata{
		ID:        traceID,
		Algorithm: string(algorithm),
		Timestamp: time.Now(),
		Seed:      seed,
		Input:     input,
		Steps:     len(steps),
		Counts:    counter.ByName(),
	}

	metaPath := filepath.Join(traceDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(traceDir, "steps.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"index", "kind", "a", "b", "value"}); err != nil {
		return "", err
	}

	for i, st := range steps {
		row := []string{
			strconv.Itoa(i),
			st.Kind.String(),
			strconv.Itoa(st.A),
			strconv.Itoa(st.B),
			strconv.Itoa(st.Value),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return traceID, nil
}

// List returns the metadata of every readable trace. Directories with
// missing or corrupt metadata are skipped.
func (s *Store) List() ([]TraceMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TraceMetadata{}, nil
		}
		return nil, err
	}

	traces := make([]TraceMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta TraceMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		traces = append(traces, meta)
	}

	return traces, nil
}

func (s *Store) Load(traceID string) (*TraceMetadata, error) {
	metaPath := filepath.Join(s.baseDir, traceID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta TraceMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSteps reads the step records back in order. Rows that fail to
// parse are skipped rather than aborting the load.
func (s *Store) LoadSteps(traceID string) ([]step.Step, error) {
	csvPath := filepath.Join(s.baseDir, traceID, "steps.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []step.Step{}, nil
	}

	steps := make([]step.Step, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 5 {
			continue
		}
		kind, err := step.KindFromString(record[1])
		if err != nil {
			continue
		}
		a, errA := strconv.Atoi(record[2])
		b, errB := strconv.Atoi(record[3])
		v, errV := strconv.Atoi(record[4])
		if errA != nil || errB != nil || errV != nil {
			continue
		}
		steps = append(steps, step.Step{Kind: kind, A: a, B: b, Value: v})
	}

	return steps, nil
}
