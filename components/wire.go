// Package components layers multi-bit and structural primitives —
// buses, adders, multiplexers, latches, and SRAM — on top of the
// gatesim engine.
package components

import (
	"github.com/pkg/errors"

	"github.com/vic/gatesim/gatesim"
)

// Unsigned is satisfied by any built-in unsigned integer type. Go has no
// const-generic array lengths (unlike the Rust original this is ported
// from), so Wire carries its bit width as a runtime field instead of a
// type parameter; this constraint exists only to make Read/Set generic
// over the integer type a caller wants to pack bits into.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Wire is a bus of N single-bit node lanes, LSB first.
type Wire struct {
	nodes []gatesim.NodeId
}

// Bits returns the wire's width.
func (w Wire) Bits() int { return len(w.nodes) }

// Node returns the NodeId for lane i.
func (w Wire) Node(i int) gatesim.NodeId { return w.nodes[i] }

// NewWire allocates bits fresh OR nodes.
func NewWire(c *gatesim.Circuit, bits int) Wire {
	nodes := make([]gatesim.NodeId, bits)
	for i := range nodes {
		nodes[i] = c.CreateNode(gatesim.Or)
	}
	return Wire{nodes: nodes}
}

// NewInputWire allocates bits fresh external input nodes.
func NewInputWire(c *gatesim.Circuit, bits int) Wire {
	nodes := make([]gatesim.NodeId, bits)
	for i := range nodes {
		nodes[i] = c.CreateInput()
	}
	return Wire{nodes: nodes}
}

// Read packs the wire's current outputs, bit 0 = LSB, into T.
func Read[T Unsigned](w Wire, c *gatesim.Circuit) T {
	var sum T
	for bit, id := range w.nodes {
		if c.GetOutput(id) {
			sum |= T(1) << uint(bit)
		}
	}
	return sum
}

// Set drives each lane's input node from the bits of val.
func Set[T Unsigned](w Wire, c *gatesim.Circuit, val T) {
	for bit, id := range w.nodes {
		c.SetInput(id, val&(T(1)<<uint(bit)) != 0)
	}
}

// Connect wires w into other lane-by-lane; both must be the same width.
func (w Wire) Connect(c *gatesim.Circuit, other Wire) {
	w.mustMatch(other)
	for i := range w.nodes {
		c.Connect(w.nodes[i], other.nodes[i])
	}
}

// Buffer returns a new wire that is a one-tick-delayed copy of w
// (a per-lane OR-of-one).
func (w Wire) Buffer(c *gatesim.Circuit) Wire {
	return w.Map(c, func(c *gatesim.Circuit, lane gatesim.NodeId) gatesim.NodeId {
		out := c.CreateNode(gatesim.Or)
		c.Connect(lane, out)
		return out
	})
}

// Invert returns a new wire that is the bitwise NOT of w, one tick later
// (a per-lane NOR-of-one).
func (w Wire) Invert(c *gatesim.Circuit) Wire {
	return w.Map(c, func(c *gatesim.Circuit, lane gatesim.NodeId) gatesim.NodeId {
		out := c.CreateNode(gatesim.Nor)
		c.Connect(lane, out)
		return out
	})
}

// Enable returns a new wire whose lanes are w's lanes ANDed with a
// shared enable line.
func (w Wire) Enable(c *gatesim.Circuit, enable gatesim.NodeId) Wire {
	return w.Map(c, func(c *gatesim.Circuit, lane gatesim.NodeId) gatesim.NodeId {
		out := c.CreateNode(gatesim.And)
		c.Connect(lane, out)
		c.Connect(enable, out)
		return out
	})
}

// Slice returns a view over w's lanes [start, start+length), sharing
// node ids with w (no new nodes are allocated).
func (w Wire) Slice(start, length int) Wire {
	if start < 0 || length < 0 || start+length > len(w.nodes) {
		panic(errors.Errorf("gatesim/components: slice [%d:%d) out of range for %d-bit wire", start, start+length, len(w.nodes)))
	}
	return Wire{nodes: w.nodes[start : start+length]}
}

// Map applies f to every lane of w, returning a wire built from the
// results. Used internally by Buffer/Invert/Enable, and exposed because
// SRAM's cell construction needs to wrap each data lane in a
// positive/negative drive pair before handing it to a latch.
func (w Wire) Map(c *gatesim.Circuit, f func(c *gatesim.Circuit, lane gatesim.NodeId) gatesim.NodeId) Wire {
	out := make([]gatesim.NodeId, len(w.nodes))
	for i, lane := range w.nodes {
		out[i] = f(c, lane)
	}
	return Wire{nodes: out}
}

// Decode builds a one-hot address decoder: outputs lanes, each active
// iff w's current value equals that lane's index. It builds buffered
// positive and inverted negative rails for w, then one AND gate per
// output line selecting the positive or negative rail per address bit.
func (w Wire) Decode(c *gatesim.Circuit, outputs int) Wire {
	bits := len(w.nodes)
	if outputs <= 0 || outputs > (1<<uint(bits)) {
		panic(errors.Errorf("gatesim/components: decode width %d exceeds 2^%d for a %d-bit wire", outputs, bits, bits))
	}

	pos := w.Buffer(c)
	neg := w.Invert(c)

	decoded := make([]gatesim.NodeId, outputs)
	for i := 0; i < outputs; i++ {
		and := c.CreateNode(gatesim.And)
		for bit := 0; bit < bits; bit++ {
			if (i>>uint(bit))&1 != 0 {
				c.Connect(pos.nodes[bit], and)
			} else {
				c.Connect(neg.nodes[bit], and)
			}
		}
		decoded[i] = and
	}
	return Wire{nodes: decoded}
}

func (w Wire) mustMatch(other Wire) {
	if len(w.nodes) != len(other.nodes) {
		panic(errors.Errorf("gatesim/components: wire width mismatch: %d vs %d", len(w.nodes), len(other.nodes)))
	}
}
