package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
	"github.com/san-kum/structviz/internal/structures"
)

const (
	DefaultSize      = 10
	DefaultMinValue  = 1
	DefaultMaxValue  = 99
	DefaultFrameRate = 30
	DefaultSpeed     = 1.0
)

type Config struct {
	Algorithm string       `yaml:"algorithm"`
	Size      int          `yaml:"size"`
	Seed      int64        `yaml:"seed"`
	MinValue  int          `yaml:"min_value"`
	MaxValue  int          `yaml:"max_value"`
	Speed     float64      `yaml:"speed"`
	FrameRate int          `yaml:"frame_rate"`
	Delays    DelaysConfig `yaml:"delays"`
}

// DelaysConfig is the per-step pacing in milliseconds.
type DelaysConfig struct {
	CompareMs int `yaml:"compare_ms"`
	SwapMs    int `yaml:"swap_ms"`
	ShiftMs   int `yaml:"shift_ms"`
	InsertMs  int `yaml:"insert_ms"`
	VisitMs   int `yaml:"visit_ms"`
}

func DefaultConfig() *Config {
	d := playback.DefaultDelays()
	return &Config{
		Algorithm: string(step.BubbleSort),
		Size:      DefaultSize,
		MinValue:  DefaultMinValue,
		MaxValue:  DefaultMaxValue,
		Speed:     DefaultSpeed,
		FrameRate: DefaultFrameRate,
		Delays: DelaysConfig{
			CompareMs: int(d.Compare / time.Millisecond),
			SwapMs:    int(d.Swap / time.Millisecond),
			ShiftMs:   int(d.Shift / time.Millisecond),
			InsertMs:  int(d.Insert / time.Millisecond),
			VisitMs:   int(d.Visit / time.Millisecond),
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the visualizers cannot work with.
func (c *Config) Validate() error {
	if step.Describe(step.Algorithm(c.Algorithm)) == "" {
		return fmt.Errorf("unknown algorithm %q", c.Algorithm)
	}
	if c.Size < structures.MinArraySize || c.Size > structures.MaxArraySize {
		return fmt.Errorf("size %d out of range [%d, %d]", c.Size, structures.MinArraySize, structures.MaxArraySize)
	}
	if c.MinValue > c.MaxValue {
		return fmt.Errorf("min value %d above max value %d", c.MinValue, c.MaxValue)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", c.Speed)
	}
	if c.FrameRate < 1 || c.FrameRate > 120 {
		return fmt.Errorf("frame rate %d out of range [1, 120]", c.FrameRate)
	}
	return nil
}

// PlaybackDelays converts the configured pacing into the playback form,
// with the speed multiplier already applied.
func (c *Config) PlaybackDelays() playback.Delays {
	d := playback.Delays{
		Compare: time.Duration(c.Delays.CompareMs) * time.Millisecond,
		Swap:    time.Duration(c.Delays.SwapMs) * time.Millisecond,
		Shift:   time.Duration(c.Delays.ShiftMs) * time.Millisecond,
		Insert:  time.Duration(c.Delays.InsertMs) * time.Millisecond,
		Visit:   time.Duration(c.Delays.VisitMs) * time.Millisecond,
	}
	return d.Scale(1 / c.Speed)
}

// TickInterval is the frame cadence of the interactive display.
func (c *Config) TickInterval() time.Duration {
	fps := c.FrameRate
	if fps < 1 {
		fps = DefaultFrameRate
	}
	return time.Second / time.Duration(fps)
}
