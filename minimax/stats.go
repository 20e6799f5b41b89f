package minimax

import "sync/atomic"

// Stats counts the work done by one search.
type Stats struct {
	Nodes    int64 // positions visited
	Leaves   int64 // positions scored by the static evaluator
	Terminal int64 // positions cut short by an immediate win for either side
}

// counters is the concurrent-safe accumulator behind Stats.
type counters struct {
	nodes, leaves, terminal atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Nodes:    c.nodes.Load(),
		Leaves:   c.leaves.Load(),
		Terminal: c.terminal.Load(),
	}
}

func (c *counters) reset() {
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.terminal.Store(0)
}
