package qsim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCatalogMatricesAreUnitary(t *testing.T) {
	for _, kind := range Kinds() {
		g := Gate{Kind: kind, Theta: 0.7}
		u := g.Matrix()
		require.NotNil(t, u, "kind %v", kind)

		r, c := u.Dims()
		dim := 2
		if kind.Arity() == 2 {
			dim = 4
		}
		require.Equal(t, dim, r, "kind %v", kind)
		require.Equal(t, dim, c, "kind %v", kind)

		prod := mulC(u.H(), u)
		assert.True(t, mat.CEqualApprox(prod, identityC(dim), 1e-12),
			"U†U != I for %v", kind)
	}
}

func TestGateArityAndParameters(t *testing.T) {
	assert.Equal(t, 1, GateH.Arity())
	assert.Equal(t, 1, GateRZ.Arity())
	assert.Equal(t, 2, GateCX.Arity())
	assert.Equal(t, 2, GateSwap.Arity())

	assert.True(t, GateRX.Parameterized())
	assert.True(t, GateCRZ.Parameterized())
	assert.False(t, GateH.Parameterized())
	assert.False(t, GateSwap.Parameterized())

	assert.Equal(t, "H", GateH.String())
	assert.Equal(t, "S†", GateSdg.String())
	assert.Equal(t, "CRZ", GateCRZ.String())
}

func TestHadamardMatrixValues(t *testing.T) {
	u := Gate{Kind: GateH}.Matrix()
	h := math.Sqrt(0.5)
	assert.InDelta(t, h, real(u.At(0, 0)), 1e-15)
	assert.InDelta(t, h, real(u.At(0, 1)), 1e-15)
	assert.InDelta(t, h, real(u.At(1, 0)), 1e-15)
	assert.InDelta(t, -h, real(u.At(1, 1)), 1e-15)
}

func TestTGateIsSqrtOfS(t *testing.T) {
	tg := Gate{Kind: GateT}.Matrix()
	tt := mulC(tg, tg)
	assert.True(t, mat.CEqualApprox(tt, Gate{Kind: GateS}.Matrix(), 1e-12))
}

func TestDaggerPairsCancel(t *testing.T) {
	pairs := [][2]GateKind{
		{GateS, GateSdg},
		{GateT, GateTdg},
	}
	for _, p := range pairs {
		prod := mulC(Gate{Kind: p[0]}.Matrix(), Gate{Kind: p[1]}.Matrix())
		assert.True(t, mat.CEqualApprox(prod, identityC(2), 1e-12),
			"%v·%v != I", p[0], p[1])
	}
}

func TestBellStatePreparation(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)
	require.NoError(t, s.H(0))
	require.NoError(t, s.CX(0, 1))

	amps := s.Amplitudes()
	h := math.Sqrt(0.5)
	assert.InDelta(t, h, real(amps[0]), 1e-12)
	assert.InDelta(t, 0.0, real(amps[1]), 1e-12)
	assert.InDelta(t, 0.0, real(amps[2]), 1e-12)
	assert.InDelta(t, h, real(amps[3]), 1e-12)
}

func TestSwapExchangesQubits(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)
	require.NoError(t, s.X(0))
	require.NoError(t, s.Swap(0, 1))

	// |01> -> |10>: index 1 -> index 2.
	amps := s.Amplitudes()
	assert.Equal(t, complex128(0), amps[1])
	assert.Equal(t, complex128(1), amps[2])
}

func TestRotationComposition(t *testing.T) {
	// Two quarter rotations equal one half rotation.
	a, err := New(1)
	require.NoError(t, err)
	b, err := New(1)
	require.NoError(t, err)

	require.NoError(t, a.RX(math.Pi/2, 0))
	require.NoError(t, a.RX(math.Pi/2, 0))
	require.NoError(t, b.RX(math.Pi, 0))

	assertAmplitudes(t, b.Amplitudes(), a.Amplitudes(), 1e-12)
}
