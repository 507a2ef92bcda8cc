package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/gatesim/gatesim"
)

func TestDLatchTransparentWhenEnabled(t *testing.T) {
	c := gatesim.NewCircuit()
	input := c.CreateInput()
	enable := c.CreateInput()
	q := DLatch(c, input, enable)

	require.False(t, c.GetOutput(q))
	c.RunUntilDone()
	require.False(t, c.GetOutput(q))

	c.SetInput(enable, true)
	c.SetInput(input, true)
	c.RunUntilDone()
	require.True(t, c.GetOutput(q))

	c.SetInput(enable, false)
	c.RunUntilDone()
	require.True(t, c.GetOutput(q), "value should hold after enable drops")

	c.SetInput(enable, true)
	c.SetInput(input, false)
	c.RunUntilDone()
	require.False(t, c.GetOutput(q))

	c.SetInput(enable, false)
	c.RunUntilDone()
	require.False(t, c.GetOutput(q))
}
