package components

import (
	"github.com/pkg/errors"

	"github.com/vic/gatesim/gatesim"
)

// FullAdder is a single-bit adder stage: sum is the XOR of its three
// inputs, cout is set whenever at least two of them are true.
type FullAdder struct {
	Sum, Cout *gatesim.Connector
}

// Adder builds a full adder from three already-wired connectors.
func Adder(a, b, cin *gatesim.Connector) FullAdder {
	sum := gatesim.XorGate(a, b, cin)
	cout := gatesim.OrGate(
		gatesim.AndGate(a, b),
		gatesim.AndGate(a, cin),
		gatesim.AndGate(b, cin),
	)
	return FullAdder{Sum: sum, Cout: cout}
}

// RippleCarryAdder chains bits full adders, carry rippling from bit 0
// upward, and exposes the raw input/output NodeIds a caller drives with
// Circuit.SetInput/GetOutput.
type RippleCarryAdder struct {
	Bits           int
	InputA, InputB []gatesim.NodeId
	Sum            []gatesim.NodeId
	Cin, Cout      gatesim.NodeId
}

// NewRippleCarryAdder builds a bits-wide ripple-carry adder on b, seeded
// with the given carry-in connector (pass a fresh, unconnected
// gatesim.NewConnector(b) for a plain adder with no carry chaining).
func NewRippleCarryAdder(b *gatesim.Builder, bits int, cin *gatesim.Connector) *RippleCarryAdder {
	if bits <= 0 {
		panic(errors.Errorf("gatesim/components: ripple-carry adder needs at least 1 bit, got %d", bits))
	}

	rca := &RippleCarryAdder{
		Bits:   bits,
		InputA: make([]gatesim.NodeId, bits),
		InputB: make([]gatesim.NodeId, bits),
		Sum:    make([]gatesim.NodeId, bits),
		Cin:    cin.Output,
	}

	carry := cin
	for i := 0; i < bits; i++ {
		a, idA := gatesim.Input(b)
		bb, idB := gatesim.Input(b)
		rca.InputA[i] = idA
		rca.InputB[i] = idB

		stage := Adder(a, bb, carry)
		rca.Sum[i] = stage.Sum.Output
		carry = stage.Cout
	}
	rca.Cout = carry.Output
	return rca
}
