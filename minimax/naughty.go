package minimax

// naughty is essentially *TraceNode: an index into the trace arena.
type naughty int

func (n naughty) isValid() bool { return n >= 0 }

const (
	nilNode naughty = -1
)
