package components

import (
	"github.com/pkg/errors"

	"github.com/vic/gatesim/gatesim"
)

// NToOneMux builds an N-to-1 multiplexer: sel is decoded into len(inputs)
// one-hot enable lines, each input wire is gated through its enable, and
// the results are ORed lane-by-lane onto the returned output wire.
func NToOneMux(c *gatesim.Circuit, inputs []Wire, sel Wire) Wire {
	n := len(inputs)
	if n == 0 {
		panic(errors.Errorf("gatesim/components: mux needs at least one input"))
	}
	bits := inputs[0].Bits()
	for _, w := range inputs {
		if w.Bits() != bits {
			panic(errors.Errorf("gatesim/components: mux inputs must share a width, got %d and %d", bits, w.Bits()))
		}
	}
	if n > (1 << uint(sel.Bits())) {
		panic(errors.Errorf("gatesim/components: mux has %d inputs but only %d select bits", n, sel.Bits()))
	}

	decoded := sel.Decode(c, n)
	output := NewWire(c, bits)
	for i, enable := range decoded.nodes {
		inputs[i].Enable(c, enable).Connect(c, output)
	}
	return output
}
