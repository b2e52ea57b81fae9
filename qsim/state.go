// Package qsim simulates an n-qubit quantum register as a dense vector of
// 2^n complex amplitudes. Gates are applied immediately and in place, one
// call at a time: a gate acting on k qubits updates the 2^k-amplitude
// groups it touches directly, so the full 2^n x 2^n operator is never
// materialized. Basis index bit i corresponds to qubit i.
package qsim

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
)

// State holds the amplitude vector of an n-qubit register. It is the sole
// owner of the vector; Amplitudes returns copies. A State is not safe for
// concurrent use.
type State struct {
	amps      []complex128
	numQubits int
	rng       *rand.Rand
}

// New allocates a register of n qubits in the computational basis state
// |0...0>. It returns ErrInvalidSize when n < 1 or n exceeds the maximum
// (DefaultMaxQubits unless overridden with WithMaxQubits).
func New(n int, opts ...Option) (*State, error) {
	o := gatherOptions(opts)
	if n < 1 || n > o.maxQubits {
		return nil, ErrInvalidSize
	}
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &State{amps: amps, numQubits: n, rng: o.rng}, nil
}

// Initialize replaces the amplitude vector with a copy of the supplied one.
// The vector must have length exactly 2^n (ErrDimensionMismatch) and unit
// norm within NormTolerance (ErrNotNormalized); the store does not
// renormalize on the caller's behalf. On error the state is unchanged.
func (s *State) Initialize(vector []complex128) error {
	if len(vector) != len(s.amps) {
		return ErrDimensionMismatch
	}
	norm := 0.0
	for _, a := range vector {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	if math.Abs(norm-1) > NormTolerance {
		return ErrNotNormalized
	}
	copy(s.amps, vector)
	return nil
}

// Amplitudes returns a copy of the current amplitude vector.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// NumQubits returns the register size n.
func (s *State) NumQubits() int {
	return s.numQubits
}

// Norm returns the sum of squared amplitude magnitudes. It is 1 (within
// floating-point error) after every public operation.
func (s *State) Norm() float64 {
	norm := 0.0
	for _, a := range s.amps {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	return norm
}

// Clone returns an independent copy of the register sharing the same
// randomness source.
func (s *State) Clone() *State {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &State{amps: amps, numQubits: s.numQubits, rng: s.rng}
}

// QubitProbability is the marginal distribution of a single qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the marginal probability of each qubit reading
// 0 or 1, in qubit order.
func (s *State) QubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.numQubits)
	for i, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		for q := 0; q < s.numQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += p
			} else {
				probs[q].Prob0 += p
			}
		}
	}
	return probs
}

// BasisState describes one computational basis state with non-negligible
// probability.
type BasisState struct {
	Index       int
	Amplitude   complex128
	Probability float64
	Phase       float64
	Hamming     int
}

// Nonzero returns the basis states carrying more than 1e-10 probability, in
// index order.
func (s *State) Nonzero() []BasisState {
	states := make([]BasisState, 0, 8)
	for i, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p > 1e-10 {
			states = append(states, BasisState{
				Index:       i,
				Amplitude:   a,
				Probability: p,
				Phase:       cmplx.Phase(a),
				Hamming:     hammingWeight(i),
			})
		}
	}
	return states
}

// randFloat64 draws from the injected source, falling back to the shared
// generator.
func (s *State) randFloat64() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return rand.Float64()
}

func hammingWeight(x int) int {
	count := 0
	for x > 0 {
		count += x & 1
		x >>= 1
	}
	return count
}
