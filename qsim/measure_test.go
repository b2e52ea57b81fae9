package qsim

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseWithInjectedOutcome(t *testing.T) {
	s, err := New(1)
	require.NoError(t, err)
	h := complex(math.Sqrt(0.5), 0)
	require.NoError(t, s.Initialize([]complex128{h, h}))

	require.NoError(t, s.Collapse(0, 1))

	amps := s.Amplitudes()
	assert.InDelta(t, 0.0, real(amps[0]), 1e-12)
	assert.InDelta(t, 1.0, real(amps[1]), 1e-12)
	assert.InDelta(t, 1.0, s.Norm(), 1e-12)
}

func TestCollapseDegenerateOutcome(t *testing.T) {
	s, err := New(1)
	require.NoError(t, err)

	err = s.Collapse(0, 1)
	assert.ErrorIs(t, err, ErrDegenerateMeasurement)

	// Rejected call leaves the state untouched.
	assert.Equal(t, complex128(1), s.Amplitudes()[0])
}

func TestCollapseValidation(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Collapse(-1, 0), ErrInvalidQubitIndex)
	assert.ErrorIs(t, s.Collapse(2, 0), ErrInvalidQubitIndex)
	assert.ErrorIs(t, s.Collapse(0, 2), ErrDegenerateMeasurement)
}

func TestMeasureCertainOutcome(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)
	require.NoError(t, s.X(1))

	out, err := s.Measure(1)
	require.NoError(t, err)
	assert.Equal(t, 1, out)

	out, err = s.Measure(0)
	require.NoError(t, err)
	assert.Equal(t, 0, out)

	assert.InDelta(t, 1.0, s.Norm(), 1e-12)
}

func TestMeasureCollapsesSuperposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 50; trial++ {
		s, err := New(1, WithRand(rng))
		require.NoError(t, err)
		require.NoError(t, s.H(0))

		out, err := s.Measure(0)
		require.NoError(t, err)
		require.Contains(t, []int{0, 1}, out)

		amps := s.Amplitudes()
		p := real(amps[out]) * real(amps[out])
		assert.InDelta(t, 1.0, p, 1e-12)
		assert.InDelta(t, 1.0, s.Norm(), 1e-12)
	}
}

func TestMeasureRejectsBadIndex(t *testing.T) {
	s, err := New(1)
	require.NoError(t, err)
	_, err = s.Measure(3)
	assert.ErrorIs(t, err, ErrInvalidQubitIndex)
}

func TestSampleDrawsOnlyFromSupport(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	s, err := New(2, WithRand(rng))
	require.NoError(t, err)
	require.NoError(t, s.H(0))
	require.NoError(t, s.CX(0, 1))
	before := s.Amplitudes()

	seen := map[int]int{}
	for i := 0; i < 200; i++ {
		seen[s.Sample()]++
	}

	// Bell state support is {|00>, |11>}; with 200 draws both show up.
	assert.Len(t, seen, 2)
	assert.Positive(t, seen[0])
	assert.Positive(t, seen[3])

	// Sampling never disturbs the state.
	assertAmplitudes(t, before, s.Amplitudes(), 0)
}

func TestResetForcesQubitToZero(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)
	require.NoError(t, s.X(0))
	require.NoError(t, s.Reset(0))

	probs := s.QubitProbabilities()
	assert.InDelta(t, 1.0, probs[0].Prob0, 1e-12)

	// From a superposition, reset still lands on |0> with unit norm.
	rng := rand.New(rand.NewPCG(17, 19))
	for trial := 0; trial < 20; trial++ {
		s, err := New(1, WithRand(rng))
		require.NoError(t, err)
		require.NoError(t, s.H(0))
		require.NoError(t, s.Reset(0))

		probs := s.QubitProbabilities()
		assert.InDelta(t, 1.0, probs[0].Prob0, 1e-12)
		assert.InDelta(t, 1.0, s.Norm(), 1e-12)
	}
}
