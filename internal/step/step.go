package step

import "fmt"

// Kind tags one atomic visual/mutation event recorded by a producer.
type Kind int

const (
	Compare Kind = iota
	Swap
	Shift
	Insert
	Visit
)

func (k Kind) String() string {
	switch k {
	case Compare:
		return "compare"
	case Swap:
		return "swap"
	case Shift:
		return "shift"
	case Insert:
		return "insert"
	case Visit:
		return "visit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindFromString parses the textual form produced by Kind.String.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "compare":
		return Compare, nil
	case "swap":
		return Swap, nil
	case "shift":
		return Shift, nil
	case "insert":
		return Insert, nil
	case "visit":
		return Visit, nil
	default:
		return 0, fmt.Errorf("step: unknown kind %q", s)
	}
}

// Step is one replayable unit of an algorithm's execution. A and B are
// operand indices; Insert and Visit use A only (B is -1). Value carries the
// payload written by Insert and, for Shift, the value that logically moves.
type Step struct {
	Kind  Kind
	A     int
	B     int
	Value int
}

// NewCompare records a comparison of positions a and b. Render-only.
func NewCompare(a, b int) Step { return Step{Kind: Compare, A: a, B: b} }

// NewSwap records an exchange of positions a and b.
func NewSwap(a, b int) Step { return Step{Kind: Swap, A: a, B: b} }

// NewShift records copying the value at src into dst. The src slot is left
// in place; insertion sort overwrites it with a later Insert. New algorithms
// must pick their own movement contract rather than reuse this one.
func NewShift(src, dst, v int) Step { return Step{Kind: Shift, A: src, B: dst, Value: v} }

// NewInsert records writing v at position i.
func NewInsert(i, v int) Step { return Step{Kind: Insert, A: i, B: -1, Value: v} }

// NewVisit records a render-only visit of position i.
func NewVisit(i int) Step { return Step{Kind: Visit, A: i, B: -1} }

// Mutates reports whether applying the step changes the live sequence.
func (s Step) Mutates() bool {
	switch s.Kind {
	case Swap, Shift, Insert:
		return true
	default:
		return false
	}
}

// Apply commits the step's mutation effect to live. Compare and Visit are
// render-only and only have their operands bounds-checked. The effect is a
// pure function of (live, step): replaying a recorded list in order against
// an identical snapshot reproduces the producer's working copy exactly.
func Apply(live []int, s Step) error {
	switch s.Kind {
	case Compare:
		return checkBounds(live, s.A, s.B)
	case Visit:
		return checkBounds(live, s.A)
	case Swap:
		if err := checkBounds(live, s.A, s.B); err != nil {
			return err
		}
		live[s.A], live[s.B] = live[s.B], live[s.A]
		return nil
	case Shift:
		if err := checkBounds(live, s.A, s.B); err != nil {
			return err
		}
		live[s.B] = live[s.A]
		return nil
	case Insert:
		if err := checkBounds(live, s.A); err != nil {
			return err
		}
		live[s.A] = s.Value
		return nil
	default:
		return fmt.Errorf("step: cannot apply unknown kind %v", s.Kind)
	}
}

// Narration renders the human-readable description shown during playback.
// It is derived entirely from kind, operands and payload.
func (s Step) Narration() string {
	switch s.Kind {
	case Compare:
		return fmt.Sprintf("compare positions %d and %d", s.A, s.B)
	case Swap:
		return fmt.Sprintf("swap positions %d and %d", s.A, s.B)
	case Shift:
		return fmt.Sprintf("shift %d from position %d to %d", s.Value, s.A, s.B)
	case Insert:
		return fmt.Sprintf("insert %d at position %d", s.Value, s.A)
	case Visit:
		return fmt.Sprintf("visit position %d", s.A)
	default:
		return s.Kind.String()
	}
}

func checkBounds(live []int, idx ...int) error {
	for _, i := range idx {
		if i < 0 || i >= len(live) {
			return fmt.Errorf("step: operand %d outside live data of length %d", i, len(live))
		}
	}
	return nil
}
