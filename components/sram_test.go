package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/gatesim/gatesim"
)

func TestSramRoundTrip(t *testing.T) {
	c := gatesim.NewCircuit()
	sram := NewSram(c, 16, 16, 256)

	require.Equal(t, uint16(0), sram.Get(c, 12))

	sram.Set(c, 12, 5)
	require.Equal(t, uint16(5), sram.Get(c, 12))

	sram.Set(c, 42, 18)
	require.Equal(t, uint16(18), sram.Get(c, 42))
	require.Equal(t, uint16(5), sram.Get(c, 12), "writing a different word must not disturb address 12")

	sram.Set(c, 12, 99)
	require.Equal(t, uint16(99), sram.Get(c, 12))
	require.Equal(t, uint16(0), sram.Get(c, 0), "unwritten address stays at zero")
}

func TestSram1024WordRoundTrip(t *testing.T) {
	c := gatesim.NewCircuit()
	sram := NewSram(c, 16, 16, 1024)

	sram.Set(c, 12, 5)
	sram.Set(c, 42, 18)
	sram.Set(c, 12, 99)

	require.Equal(t, uint16(99), sram.Get(c, 12))
	require.Equal(t, uint16(18), sram.Get(c, 42))
	require.Equal(t, uint16(0), sram.Get(c, 0))
}

func TestSram2DRoundTrip(t *testing.T) {
	c := gatesim.NewCircuit()
	sram := NewSram2D(c, 8, 8)

	sram.Set(c, 67, 50)
	sram.Set(c, 68, 100)
	require.Equal(t, uint16(50), sram.Get(c, 67))
	require.Equal(t, uint16(100), sram.Get(c, 68))
}
