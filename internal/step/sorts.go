package step

import "fmt"

// Algorithm selects a step producer.
type Algorithm string

const (
	BubbleSort    Algorithm = "bubble"
	SelectionSort Algorithm = "selection"
	InsertionSort Algorithm = "insertion"
)

// Algorithms lists the available producers in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{BubbleSort, SelectionSort, InsertionSort}
}

// Describe returns a one-line description for menus.
func Describe(a Algorithm) string {
	switch a {
	case BubbleSort:
		return "adjacent swaps bubble the maximum up"
	case SelectionSort:
		return "select the minimum of the unsorted tail"
	case InsertionSort:
		return "shift and insert into the sorted prefix"
	default:
		return ""
	}
}

// Produce runs the selected algorithm over its own copy of snapshot and
// returns the recorded steps. It never mutates snapshot, renders, or waits;
// inputs of length 0 or 1 produce no steps.
func Produce(a Algorithm, snapshot []int) ([]Step, error) {
	switch a {
	case BubbleSort:
		return produceBubble(snapshot), nil
	case SelectionSort:
		return produceSelection(snapshot), nil
	case InsertionSort:
		return produceInsertion(snapshot), nil
	default:
		return nil, fmt.Errorf("step: unknown algorithm %q", a)
	}
}

// produceBubble emits one Compare per comparison and a Swap only on a
// strict greater-than, the textbook stable form.
func produceBubble(snapshot []int) []Step {
	w := clone(snapshot)
	n := len(w)
	if n < 2 {
		return nil
	}
	var steps []Step
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			steps = append(steps, NewCompare(j, j+1))
			if w[j] > w[j+1] {
				steps = append(steps, NewSwap(j, j+1))
				w[j], w[j+1] = w[j+1], w[j]
			}
		}
	}
	return steps
}

// produceSelection tracks a running minimum over the unsorted tail and
// swaps only when a strictly smaller element was found.
func produceSelection(snapshot []int) []Step {
	w := clone(snapshot)
	n := len(w)
	if n < 2 {
		return nil
	}
	var steps []Step
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			steps = append(steps, NewCompare(min, j))
			if w[j] < w[min] {
				min = j
			}
		}
		if min != i {
			steps = append(steps, NewSwap(i, min))
			w[i], w[min] = w[min], w[i]
		}
	}
	return steps
}

// produceInsertion shifts while strictly greater than the key, then inserts.
// Shift copies w[j] into w[j+1] and leaves the source slot untouched; the
// terminal Insert overwrites the vacated position.
func produceInsertion(snapshot []int) []Step {
	w := clone(snapshot)
	n := len(w)
	if n < 2 {
		return nil
	}
	var steps []Step
	for i := 1; i < n; i++ {
		key := w[i]
		j := i - 1
		for j >= 0 {
			steps = append(steps, NewCompare(j, i))
			if w[j] > key {
				steps = append(steps, NewShift(j, j+1, w[j]))
				w[j+1] = w[j]
				j--
			} else {
				break
			}
		}
		steps = append(steps, NewInsert(j+1, key))
		w[j+1] = key
	}
	return steps
}

func clone(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}
