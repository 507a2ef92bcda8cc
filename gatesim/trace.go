package gatesim

// TickTrace records which nodes flipped their output during a single
// tick, for diagnostics and test introspection. Tracing is off by
// default and costs nothing beyond the boolean guard in update() when
// disabled — adapted from the teacher's reduction-event trace buffer,
// simplified here for a single-threaded engine (no atomics needed).
type TickTrace struct {
	Tick    uint64
	Changed []NodeId
}

// EnableTrace turns on tick tracing with the given ring-buffer capacity
// (number of ticks remembered; older entries are dropped once full).
func (c *Circuit) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	c.traceOn = true
	c.traceBuf = make([]TickTrace, 0, capacity)
}

// DisableTrace turns off tick tracing and releases the buffer.
func (c *Circuit) DisableTrace() {
	c.traceOn = false
	c.traceBuf = nil
}

// TraceSnapshot returns a copy of the recorded tick traces so far.
func (c *Circuit) TraceSnapshot() []TickTrace {
	if !c.traceOn {
		return nil
	}
	out := make([]TickTrace, len(c.traceBuf))
	copy(out, c.traceBuf)
	return out
}

func (c *Circuit) recordTrace(tick uint64, changed []NodeId) {
	entry := TickTrace{Tick: tick, Changed: append([]NodeId(nil), changed...)}
	if cap(c.traceBuf) > 0 && len(c.traceBuf) == cap(c.traceBuf) {
		copy(c.traceBuf, c.traceBuf[1:])
		c.traceBuf[len(c.traceBuf)-1] = entry
		return
	}
	c.traceBuf = append(c.traceBuf, entry)
}
