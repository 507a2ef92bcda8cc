package gatesim

// Builder is a thin combinator layer over a Circuit. It is a construction
// convenience only: once nodes are wired up, the underlying Circuit runs
// standalone and the Builder can be discarded.
type Builder struct {
	Circuit *Circuit
	hooks   Hooks
}

// NewBuilder creates a Builder over a fresh Circuit with no hooks attached.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{Circuit: NewCircuit(opts...), hooks: NoHooks{}}
}

// NewBuilderWithHooks creates a Builder whose node creation, input
// creation, and connect calls are observed by hooks.
func NewBuilderWithHooks(hooks Hooks, opts ...Option) *Builder {
	if hooks == nil {
		hooks = NoHooks{}
	}
	return &Builder{Circuit: NewCircuit(opts...), hooks: hooks}
}

func (b *Builder) createNode(t GateType) NodeId {
	id := b.Circuit.CreateNode(t)
	b.hooks.CreateNodeHook(id)
	return id
}

func (b *Builder) createInput() NodeId {
	id := b.Circuit.CreateInput()
	b.hooks.CreateNodeHook(id)
	b.hooks.CreateInputHook(id)
	return id
}

func (b *Builder) connect(input, output NodeId) {
	b.Circuit.Connect(input, output)
	b.hooks.ConnectHook(input, output)
}

// Connector wraps a (Builder, NodeId) pair and exposes a chainable API
// for wiring gates together without juggling raw NodeIds.
type Connector struct {
	b      *Builder
	Output NodeId
}

// NewConnector allocates a fresh OR node (an undriven wire) on b.
func NewConnector(b *Builder) *Connector {
	return &Connector{b: b, Output: b.createNode(Or)}
}

// Input creates an external input node and returns both a Connector for
// wiring it into gates and the raw NodeId the controller drives with
// Circuit.SetInput.
func Input(b *Builder) (*Connector, NodeId) {
	id := b.createInput()
	return &Connector{b: b, Output: id}, id
}

// Invert returns a new Connector that is the logical NOT of c. NOR with a
// single input is exactly a NOT, so this is implemented as a one-input
// NOR gate.
func (c *Connector) Invert() *Connector {
	out := c.b.createNode(Nor)
	c.b.connect(c.Output, out)
	return &Connector{b: c.b, Output: out}
}

// Connect wires c's output into other's input.
func (c *Connector) Connect(other *Connector) *Connector {
	c.b.connect(c.Output, other.Output)
	return c
}

// Mark attaches an arbitrary tag to c's node via the builder's hooks.
func (c *Connector) Mark(tag any) *Connector {
	c.b.hooks.MarkNode(c.Output, tag)
	return c
}

// Set drives c's node directly; only meaningful for input nodes.
func (c *Connector) Set(v bool) {
	c.b.Circuit.SetInput(c.Output, v)
}

// GetOutput reads c's current output from the underlying circuit.
func (c *Connector) GetOutput() bool {
	return c.b.Circuit.GetOutput(c.Output)
}

func gateGen(t GateType, inputs []*Connector) *Connector {
	if len(inputs) == 0 {
		panic(errContract("gatesim: gate combinator called with no inputs"))
	}
	b := inputs[0].b
	out := b.createNode(t)
	for _, in := range inputs {
		if in.b != b {
			panic(errContract("gatesim: connector from a different builder"))
		}
		b.connect(in.Output, out)
	}
	return &Connector{b: b, Output: out}
}

// OrGate, NorGate, AndGate, NandGate, XorGate, XnorGate create a gate of the given type and
// connect each of inputs into it, returning a Connector for the new
// gate's output.
func OrGate(inputs ...*Connector) *Connector   { return gateGen(Or, inputs) }
func NorGate(inputs ...*Connector) *Connector  { return gateGen(Nor, inputs) }
func AndGate(inputs ...*Connector) *Connector  { return gateGen(And, inputs) }
func NandGate(inputs ...*Connector) *Connector { return gateGen(Nand, inputs) }
func XorGate(inputs ...*Connector) *Connector  { return gateGen(Xor, inputs) }
func XnorGate(inputs ...*Connector) *Connector { return gateGen(Xnor, inputs) }
