package fixedpoint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, x := range []float32{0, 1, -1, 0.5, -0.5, 32767, -32767, 123.456, -999.125} {
		got := ToFloat(FromFloat(x))
		diff := math.Abs(float64(got) - float64(x))
		require.LessOrEqualf(t, diff, 1.0/float64(Scale), "round trip for %v: got %v", x, got)
	}
}

func TestMulIdentity(t *testing.T) {
	one := FromFloat(1.0)
	half := FromFloat(0.5)
	require.Equal(t, half, Mul(one, half))
}

func TestMulFraction(t *testing.T) {
	a := FromFloat(0.5)
	b := FromFloat(0.5)
	got := ToFloat(Mul(a, b))
	require.InDelta(t, 0.25, got, 1e-3)
}

func TestAddSatSaturatesHigh(t *testing.T) {
	got := AddSat(math.MaxInt32, 10)
	require.Equal(t, Fixed(math.MaxInt32), got)
}

func TestAddSatSaturatesLow(t *testing.T) {
	got := AddSat(math.MinInt32, -10)
	require.Equal(t, Fixed(math.MinInt32), got)
}

func TestSubSatSaturatesLow(t *testing.T) {
	got := SubSat(math.MinInt32, 10)
	require.Equal(t, Fixed(math.MinInt32), got)
}

func TestSubSatNormal(t *testing.T) {
	a := FromFloat(1.0)
	b := FromFloat(0.25)
	got := ToFloat(SubSat(a, b))
	require.InDelta(t, 0.75, got, 1e-3)
}

func TestClamp(t *testing.T) {
	lo := FromFloat(0.25)
	hi := FromFloat(0.75)
	require.Equal(t, lo, Clamp(FromFloat(0.1), lo, hi))
	require.Equal(t, hi, Clamp(FromFloat(0.9), lo, hi))
	mid := FromFloat(0.5)
	require.Equal(t, mid, Clamp(mid, lo, hi))
}
