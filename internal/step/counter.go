package step

// Counter tallies recorded steps by kind. The zero value is ready to use.
type Counter struct {
	counts map[Kind]int
	total  int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Kind]int)}
}

func (c *Counter) Observe(s Step) {
	if c.counts == nil {
		c.counts = make(map[Kind]int)
	}
	c.counts[s.Kind]++
	c.total++
}

func (c *Counter) ObserveAll(steps []Step) {
	for _, s := range steps {
		c.Observe(s)
	}
}

func (c *Counter) Count(k Kind) int { return c.counts[k] }
func (c *Counter) Total() int       { return c.total }

func (c *Counter) Reset() {
	c.counts = make(map[Kind]int)
	c.total = 0
}

// ByName returns the tallies keyed by kind name, for persistence and display.
func (c *Counter) ByName() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, n := range c.counts {
		out[k.String()] = n
	}
	return out
}
