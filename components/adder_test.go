package components

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/gatesim/gatesim"
)

func TestFullAdder(t *testing.T) {
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for cin := 0; cin < 2; cin++ {
				av, bv, cv := a != 0, b != 0, cin != 0

				builder := gatesim.NewBuilder()
				ca, ia := gatesim.Input(builder)
				cb, ib := gatesim.Input(builder)
				ccin, icin := gatesim.Input(builder)
				fa := Adder(ca, cb, ccin)

				builder.Circuit.SetInput(ia, av)
				builder.Circuit.SetInput(ib, bv)
				builder.Circuit.SetInput(icin, cv)
				builder.Circuit.RunUntilDone()

				require.Equal(t, av != bv != cv, fa.Sum.GetOutput(), "sum(%v,%v,%v)", av, bv, cv)
				require.Equal(t, (av && bv) || (av && cv) || (bv && cv), fa.Cout.GetOutput(), "cout(%v,%v,%v)", av, bv, cv)
			}
		}
	}
}

func testRippleCarryAdder(t *testing.T, bits int, trials int) {
	t.Helper()
	builder := gatesim.NewBuilder()
	rca := NewRippleCarryAdder(builder, bits, gatesim.NewConnector(builder))

	overflow := uint64(1) << uint(bits)
	rng := rand.New(rand.NewSource(int64(bits)*7919 + 1))

	for i := 0; i < trials; i++ {
		a := uint64(rng.Int63()) % overflow
		b := uint64(rng.Int63()) % overflow

		for bit := 0; bit < bits; bit++ {
			builder.Circuit.SetInput(rca.InputA[bit], a&(1<<uint(bit)) != 0)
			builder.Circuit.SetInput(rca.InputB[bit], b&(1<<uint(bit)) != 0)
		}
		builder.Circuit.RunUntilDone()

		sum := a + b
		wantCout := sum >= overflow
		if wantCout {
			sum -= overflow
		}

		var got uint64
		for bit := 0; bit < bits; bit++ {
			if builder.Circuit.GetOutput(rca.Sum[bit]) {
				got |= 1 << uint(bit)
			}
		}
		gotCout := builder.Circuit.GetOutput(rca.Cout)

		require.Equalf(t, sum, got, "%d + %d (%d bits)", a, b, bits)
		require.Equalf(t, wantCout, gotCout, "%d + %d (%d bits) carry-out", a, b, bits)
	}
}

func TestRippleCarryAdder8Bit(t *testing.T)  { testRippleCarryAdder(t, 8, 100) }
func TestRippleCarryAdder16Bit(t *testing.T) { testRippleCarryAdder(t, 16, 100) }
func TestRippleCarryAdder32Bit(t *testing.T) { testRippleCarryAdder(t, 32, 100) }

func TestRippleCarryAdder8BitScenarios(t *testing.T) {
	cases := []struct {
		a, b, sum uint8
		cout      bool
	}{
		{0xAB, 0x37, 0xE2, false},
		{0xFF, 0x01, 0x00, true},
	}

	for _, tc := range cases {
		builder := gatesim.NewBuilder()
		rca := NewRippleCarryAdder(builder, 8, gatesim.NewConnector(builder))

		for bit := 0; bit < 8; bit++ {
			builder.Circuit.SetInput(rca.InputA[bit], tc.a&(1<<uint(bit)) != 0)
			builder.Circuit.SetInput(rca.InputB[bit], tc.b&(1<<uint(bit)) != 0)
		}
		builder.Circuit.RunUntilDone()

		var sum uint8
		for bit := 0; bit < 8; bit++ {
			if builder.Circuit.GetOutput(rca.Sum[bit]) {
				sum |= 1 << uint(bit)
			}
		}
		require.Equalf(t, tc.sum, sum, "0x%02X + 0x%02X", tc.a, tc.b)
		require.Equalf(t, tc.cout, builder.Circuit.GetOutput(rca.Cout), "0x%02X + 0x%02X carry-out", tc.a, tc.b)
	}
}
