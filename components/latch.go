package components

import "github.com/vic/gatesim/gatesim"

// DLatch builds a transparent D-latch: while enable is high, output
// follows input; once enable drops, a cross-coupled NOR pair holds the
// last value. The reset/set/output nodes are force-initialized to false
// via SetInput before the cross-coupled pair ever runs, since a fresh
// NOR pair with no forced initial value has no defined steady state.
func DLatch(c *gatesim.Circuit, input, enable gatesim.NodeId) gatesim.NodeId {
	inputNot := c.CreateNode(gatesim.Nor)
	c.Connect(input, inputNot)

	qReset := c.CreateNode(gatesim.And)
	c.Connect(inputNot, qReset)
	c.Connect(enable, qReset)
	c.SetInput(qReset, false)

	qSet := c.CreateNode(gatesim.And)
	c.Connect(input, qSet)
	c.Connect(enable, qSet)
	c.SetInput(qSet, false)

	q := c.CreateNode(gatesim.Nor)
	c.Connect(qReset, q)
	c.SetInput(q, false)

	qNot := c.CreateNode(gatesim.Nor)
	c.Connect(qSet, qNot)

	c.Connect(q, qNot)
	c.Connect(qNot, q)

	return q
}

// DLatch2 is a write-strobed variant of DLatch that takes its positive
// and negative input rails pre-built (SRAM cells share one input_pos/
// input_neg pair across every bit of a word) and gates a third "write"
// line alongside enable, so the latch only opens when both the cell's
// wordline is selected and a write is in progress. The returned node is
// q ANDed with enable, so reads outside the selected word settle to
// false rather than holding stale data.
func DLatch2(c *gatesim.Circuit, inputPos, inputNeg, enable, write gatesim.NodeId) gatesim.NodeId {
	qReset := c.CreateNode(gatesim.And)
	c.Connect(inputNeg, qReset)
	c.Connect(enable, qReset)
	c.Connect(write, qReset)
	c.SetInput(qReset, false)

	qSet := c.CreateNode(gatesim.And)
	c.Connect(inputPos, qSet)
	c.Connect(enable, qSet)
	c.Connect(write, qSet)
	c.SetInput(qSet, false)

	q := c.CreateNode(gatesim.Nor)
	c.Connect(qReset, q)
	c.SetInput(q, false)

	qNot := c.CreateNode(gatesim.Nor)
	c.Connect(qSet, qNot)

	c.Connect(q, qNot)
	c.Connect(qNot, q)

	output := c.CreateNode(gatesim.And)
	c.Connect(q, output)
	c.Connect(enable, output)
	return output
}
