// Package gatesim implements an event-driven digital logic simulator: a
// node store plus a two-phase tick engine that propagates boolean signal
// changes through a directed graph of gates until the network reaches
// quiescence.
package gatesim

// Circuit owns the node store and drives the tick algorithm. It is not
// safe for concurrent use: all mutation goes through a single controller,
// by design (see spec §5 — there is no multithreaded simulation mode).
type Circuit struct {
	nodeData   []NodeData
	updateData []UpdateData
	children   [][]NodeId

	updateHead  NodeId // head of the propagate list
	changedHead NodeId // head of the recompute list

	ticks uint64

	traceOn   bool
	traceBuf  []TickTrace
	traceNext []NodeId // nodes changed so far this tick, while tracing
}

// Option configures a Circuit at construction time.
type Option func(*Circuit)

// WithCapacity pre-sizes the node arrays, avoiding reallocation for
// circuits whose size is known up front (e.g. a builder that is about to
// allocate a fixed number of SRAM cells).
func WithCapacity(n int) Option {
	return func(c *Circuit) {
		if n <= 0 {
			return
		}
		c.nodeData = make([]NodeData, 0, n)
		c.updateData = make([]UpdateData, 0, n)
		c.children = make([][]NodeId, 0, n)
	}
}

// NewCircuit creates an empty circuit.
func NewCircuit(opts ...Option) *Circuit {
	c := &Circuit{
		updateHead:  NullNode,
		changedHead: NullNode,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NumNodes returns the number of nodes allocated so far.
func (c *Circuit) NumNodes() int {
	return len(c.nodeData)
}

// Ticks returns the number of ticks executed so far.
func (c *Circuit) Ticks() uint64 {
	return c.ticks
}

// CreateNode allocates a fresh node of the given gate type. Every fresh
// node is born with inputs=0 and output=inverted: a fresh AND reads true
// (inverted=true XOR (0 != 0) = true) and a fresh NAND reads false, the
// "all inputs missing read as logic-1" convention — a correctly wired AND
// must have every input connected before it is meaningfully read.
func (c *Circuit) CreateNode(t GateType) NodeId {
	family, inverted := t.familyAndInverted()
	id := NodeId(len(c.nodeData))
	if id == NullNode {
		panic(errContract("gatesim: node id space exhausted"))
	}
	c.nodeData = append(c.nodeData, NodeData{
		inverted: inverted,
		output:   inverted,
		family:   family,
	})
	c.updateData = append(c.updateData, UpdateData{nextChanged: NullNode})
	c.children = append(c.children, nil)
	c.nodeData[id].nextUpdate = NullNode
	return id
}

// CreateInput creates an external input node: an OR gate with no
// producers, whose output the controller sets directly via SetInput.
func (c *Circuit) CreateInput() NodeId {
	return c.CreateNode(Or)
}

// Connect appends output to input's children list, then synthesizes the
// virtual edge activation needed to keep output's invariant consistent
// (spec §4.2): +1 when output is an OR/XOR-family gate and input is
// already true, -1 when output is an AND-family gate and input is false.
func (c *Circuit) Connect(input, output NodeId) {
	c.checkNode(input)
	c.checkNode(output)
	c.children[input] = append(c.children[input], output)

	isAndNand := c.nodeData[output].family == familyAndNand
	if c.nodeData[input].output != isAndNand {
		c.modify(output, !isAndNand)
	}
}

// SetInput drives an external input node directly. Setting it to its
// current value is a no-op. This writes output and enqueues propagation,
// so children are notified in Phase A of the next tick — the contract
// assumed throughout is that input nodes have no incoming edges.
func (c *Circuit) SetInput(id NodeId, v bool) {
	c.checkNode(id)
	nd := &c.nodeData[id]
	if nd.output == v {
		return
	}
	nd.output = v
	c.enqueueUpdate(id)
}

// GetOutput reads a node's current output.
func (c *Circuit) GetOutput(id NodeId) bool {
	c.checkNode(id)
	return c.nodeData[id].output
}

// WorkLeft reports whether either work list is non-empty.
func (c *Circuit) WorkLeft() bool {
	return c.updateHead != NullNode || c.changedHead != NullNode
}

// enqueueUpdate splices id onto the propagate list, if not already on it.
// A node already on the list either has a non-null nextUpdate (it is not
// the list's most recent element) or is itself the head of a one-element
// list; both cases must be rejected or a second push would make the node
// point to itself and corrupt the list.
func (c *Circuit) enqueueUpdate(id NodeId) {
	nd := &c.nodeData[id]
	if nd.nextUpdate != NullNode || id == c.updateHead {
		return
	}
	nd.nextUpdate = c.updateHead
	c.updateHead = id
}

// markChanged splices id onto the recompute list, if not already on it.
func (c *Circuit) markChanged(id NodeId) {
	ud := &c.updateData[id]
	if ud.nextChanged != NullNode || id == c.changedHead {
		return
	}
	ud.nextChanged = c.changedHead
	c.changedHead = id
}

// modify applies a pending ±1 change to id's input counter and schedules
// it for recomputation. increment is true when a producer driving id just
// became (or is being synthesized as) asserting.
func (c *Circuit) modify(id NodeId, increment bool) {
	ud := &c.updateData[id]
	if increment {
		ud.inputsDelta++
	} else {
		ud.inputsDelta--
	}
	c.markChanged(id)
}

// Tick runs one propagate+recompute pass, the atomic unit of simulated
// time, and returns the tick count after it completes.
func (c *Circuit) Tick() uint64 {
	c.update()
	return c.ticks
}

// Update is an alias for a single tick, exposed for callers that prefer
// to drive the engine without tracking the returned counter.
func (c *Circuit) Update() {
	c.update()
}

func (c *Circuit) update() {
	if c.traceOn {
		c.traceNext = c.traceNext[:0]
	}

	// Phase A — Propagate: walk producers whose output recently
	// changed, push their new value onto each child's input counter.
	id := c.updateHead
	c.updateHead = NullNode
	for id != NullNode {
		nd := &c.nodeData[id]
		output := nd.output
		next := nd.nextUpdate
		nd.nextUpdate = NullNode
		for _, child := range c.children[id] {
			c.modify(child, output)
		}
		id = next
	}

	// Phase B — Recompute: walk consumers with a pending delta, fold
	// it into the input counter, and recompute output from scratch.
	id = c.changedHead
	c.changedHead = NullNode
	for id != NullNode {
		nd := &c.nodeData[id]
		ud := &c.updateData[id]
		switch nd.family {
		case familyOrNor, familyAndNand:
			nd.inputs += ud.inputsDelta
		case familyXorXnor:
			nd.inputs ^= ud.inputsDelta & 1
		}
		ud.inputsDelta = 0
		newOutput := nd.inverted != (nd.inputs != 0)
		next := ud.nextChanged
		ud.nextChanged = NullNode
		if newOutput != nd.output {
			nd.output = newOutput
			c.enqueueUpdate(id)
			if c.traceOn {
				c.traceNext = append(c.traceNext, id)
			}
		}
		id = next
	}

	if c.traceOn && len(c.traceNext) > 0 {
		c.recordTrace(c.ticks, c.traceNext)
	}
	c.ticks++
}
