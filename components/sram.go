package components

import (
	"github.com/pkg/errors"

	"github.com/vic/gatesim/gatesim"
)

// Sram is an address-decoded bank of write-strobed D-latches. Decoding
// the address into a one-hot enable line takes two ticks (one for the
// buffered/inverted address rails, one for the per-line AND gate), so
// the write strobe is piped through matching OR-buffer delays before it
// reaches the cells — asserting write before decode has settled would
// latch the wrong word.
type Sram struct {
	Address Wire
	Input   Wire
	Output  Wire
	Write   gatesim.NodeId
}

// NewSram builds a one-dimensional address-decoded SRAM: cells need not
// fill the full 2^addrBits address space, trading decode gate count for
// address range headroom.
func NewSram(c *gatesim.Circuit, addrBits, wordBits, cells int) *Sram {
	address := NewInputWire(c, addrBits)
	input := NewInputWire(c, wordBits)

	write := c.CreateInput()
	writeDelay1 := c.CreateNode(gatesim.Or)
	writeDelay2 := c.CreateNode(gatesim.Or)
	c.Connect(write, writeDelay1)
	c.Connect(writeDelay1, writeDelay2)

	enables := address.Decode(c, cells)
	output := NewWire(c, wordBits)
	for _, enable := range enables.nodes {
		sramCell(c, input, enable, writeDelay2).Connect(c, output)
	}

	return &Sram{Address: address, Input: input, Output: output, Write: write}
}

// NewSram2D builds a fully populated two-dimensional address-decoded
// SRAM (2^addrBits cells): the address is split into two halves, each
// decoded separately, and a cell's enable is the AND of its row and
// column selectors. This trades one extra tick of write latency for
// two half-width decoders of O(sqrt(N)) AND gates plus one two-input AND
// per cell, instead of one full-width AND gate per cell.
func NewSram2D(c *gatesim.Circuit, addrBits, wordBits int) *Sram {
	if addrBits%2 != 0 {
		panic(errors.Errorf("gatesim/components: 2D SRAM needs an even address width, got %d", addrBits))
	}
	half := addrBits / 2
	cellCount := 1 << uint(addrBits)
	halfCount := 1 << uint(half)

	address := NewInputWire(c, addrBits)
	input := NewInputWire(c, wordBits)

	write := c.CreateInput()
	writeDelay1 := c.CreateNode(gatesim.Or)
	writeDelay2 := c.CreateNode(gatesim.Or)
	writeDelay3 := c.CreateNode(gatesim.Or)
	c.Connect(write, writeDelay1)
	c.Connect(writeDelay1, writeDelay2)
	c.Connect(writeDelay2, writeDelay3)

	sel0 := address.Slice(0, half).Decode(c, halfCount)
	sel1 := address.Slice(half, half).Decode(c, halfCount)

	output := NewWire(c, wordBits)
	for i := 0; i < cellCount; i++ {
		i0 := i & (halfCount - 1)
		i1 := i >> uint(half)
		enable := c.CreateNode(gatesim.And)
		c.Connect(sel0.nodes[i0], enable)
		c.Connect(sel1.nodes[i1], enable)

		sramCell(c, input, enable, writeDelay3).Connect(c, output)
	}

	return &Sram{Address: address, Input: input, Output: output, Write: write}
}

func sramCell(c *gatesim.Circuit, input Wire, enable, write gatesim.NodeId) Wire {
	return input.Map(c, func(c *gatesim.Circuit, lane gatesim.NodeId) gatesim.NodeId {
		inputPos := c.CreateNode(gatesim.Or)
		inputNeg := c.CreateNode(gatesim.Nor)
		c.Connect(lane, inputPos)
		c.Connect(lane, inputNeg)
		return DLatch2(c, inputPos, inputNeg, enable, write)
	})
}

// Set writes val to address: it drives the address and data buses, lets
// decode settle, pulses the write strobe through its own RunUntilDone
// so every cell observes a clean assert and release, then runs until the
// release has drained through the strobe's own delay chain.
func (s *Sram) Set(c *gatesim.Circuit, address, val uint16) {
	Set(s.Address, c, address)
	Set(s.Input, c, val)
	c.RunUntilDone()
	c.SetInput(s.Write, true)
	c.RunUntilDone()
	c.SetInput(s.Write, false)
	c.RunUntilDone()
}

// Get drives address onto the bus, lets decode settle, and reads the
// selected word.
func (s *Sram) Get(c *gatesim.Circuit, address uint16) uint16 {
	Set(s.Address, c, address)
	c.RunUntilDone()
	return Read[uint16](s.Output, c)
}
