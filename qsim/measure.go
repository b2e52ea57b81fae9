package qsim

import (
	"fmt"
	"math"
)

// degenerateTolerance is the probability below which a forced measurement
// branch is considered empty and renormalization undefined.
const degenerateTolerance = 1e-12

// Measure performs a projective measurement of qubit q in the computational
// basis. The outcome is drawn from the state's randomness source per the
// Born rule; the register is collapsed onto the outcome and renormalized
// before returning.
func (s *State) Measure(q int) (int, error) {
	if q < 0 || q >= s.numQubits {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidQubitIndex, q, s.numQubits)
	}
	outcome := 0
	if s.randFloat64() >= s.probabilityZero(q) {
		outcome = 1
	}
	// Natural sampling never lands on a zero-probability branch, so this
	// collapse cannot fail.
	if err := s.Collapse(q, outcome); err != nil {
		return 0, err
	}
	return outcome, nil
}

// Collapse forces qubit q to the given outcome (0 or 1), zeroing every
// amplitude inconsistent with it and renormalizing the rest. It returns
// ErrDegenerateMeasurement when the requested branch carries numerically
// zero probability. Useful for deterministic tests and for post-selection.
func (s *State) Collapse(q, outcome int) error {
	if q < 0 || q >= s.numQubits {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidQubitIndex, q, s.numQubits)
	}
	if outcome != 0 && outcome != 1 {
		return fmt.Errorf("%w: outcome must be 0 or 1, got %d", ErrDegenerateMeasurement, outcome)
	}

	p0 := s.probabilityZero(q)
	p := p0
	if outcome == 1 {
		p = 1 - p0
	}
	if p < degenerateTolerance {
		return fmt.Errorf("%w: qubit %d outcome %d", ErrDegenerateMeasurement, q, outcome)
	}

	inv := complex(1/math.Sqrt(p), 0)
	bit := 1 << q
	want := 0
	if outcome == 1 {
		want = bit
	}
	for i := range s.amps {
		if i&bit == want {
			s.amps[i] *= inv
		} else {
			s.amps[i] = 0
		}
	}
	return nil
}

// Sample draws a full-register basis index per the Born rule without
// disturbing the state. The binary digits of the returned index give each
// qubit's value.
func (s *State) Sample() int {
	r := s.randFloat64()
	acc := 0.0
	last := 0
	for i, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p > 0 {
			last = i
		}
		acc += p
		if r < acc {
			return i
		}
	}
	// Rounding can leave acc marginally below 1; fall back to the last
	// basis state with any weight.
	return last
}

// Reset forces qubit q to |0>: the qubit is measured, and an X gate is
// applied when the outcome was 1. Unlike Collapse(q, 0) this is defined for
// every input state.
func (s *State) Reset(q int) error {
	outcome, err := s.Measure(q)
	if err != nil {
		return err
	}
	if outcome == 1 {
		return s.X(q)
	}
	return nil
}

// probabilityZero sums the squared magnitudes of every amplitude whose bit
// q is 0.
func (s *State) probabilityZero(q int) float64 {
	bit := 1 << q
	p0 := 0.0
	for i, a := range s.amps {
		if i&bit == 0 {
			p0 += real(a)*real(a) + imag(a)*imag(a)
		}
	}
	return p0
}
