package qsim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Apply updates the register in place with the unitary u acting on the
// given qubits: 2x2 with one index, 4x4 with two. For a 4x4 matrix the
// first index is the control/reference qubit. The matrix row and column
// order is |q0 q1> with q0 as the high bit, so supplying a controlled
// gate's indices in the wrong order changes the result.
//
// The 2^n-dimensional operator is never formed. The basis indices are
// partitioned into groups that agree on every bit outside the target
// qubits, and each group's amplitudes are multiplied by u independently.
// Unitarity of u is the caller's contract and is not re-verified per call.
//
// All validation happens before the first write, so a rejected call leaves
// the state untouched.
func (s *State) Apply(u mat.CMatrix, qubits ...int) error {
	switch len(qubits) {
	case 1:
		return s.apply1(u, qubits[0])
	case 2:
		return s.apply2(u, qubits[0], qubits[1])
	default:
		return fmt.Errorf("%w: gates act on 1 or 2 qubits, got %d indices", ErrInvalidQubitIndex, len(qubits))
	}
}

// apply1 multiplies every (bit t = 0, bit t = 1) amplitude pair by a 2x2
// matrix.
func (s *State) apply1(u mat.CMatrix, t int) error {
	if t < 0 || t >= s.numQubits {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidQubitIndex, t, s.numQubits)
	}
	r, c := u.Dims()
	if r != 2 || c != 2 {
		return fmt.Errorf("%w: single-qubit gate needs a 2x2 matrix, got %dx%d", ErrDimensionMismatch, r, c)
	}

	// Copy out of the CMatrix interface before the hot loop.
	var m [2][2]complex128
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] = u.At(i, j)
		}
	}

	n := len(s.amps)
	bit := 1 << t
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = m[0][0]*a0 + m[0][1]*a1
			s.amps[j] = m[1][0]*a0 + m[1][1]*a1
		}
	}
	return nil
}

// apply2 multiplies every group of four amplitudes agreeing outside qubits
// (q0, q1) by a 4x4 matrix. The local index within a group is
// 2*bit(q0) + bit(q1).
func (s *State) apply2(u mat.CMatrix, q0, q1 int) error {
	if q0 < 0 || q0 >= s.numQubits {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidQubitIndex, q0, s.numQubits)
	}
	if q1 < 0 || q1 >= s.numQubits {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidQubitIndex, q1, s.numQubits)
	}
	if q0 == q1 {
		return fmt.Errorf("%w: qubit indices must be distinct", ErrInvalidQubitIndex)
	}
	r, c := u.Dims()
	if r != 4 || c != 4 {
		return fmt.Errorf("%w: two-qubit gate needs a 4x4 matrix, got %dx%d", ErrDimensionMismatch, r, c)
	}

	var m [4][4]complex128
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = u.At(i, j)
		}
	}

	n := len(s.amps)
	hiBit := 1 << q0
	loBit := 1 << q1
	for i := 0; i < n; i++ {
		if i&hiBit == 0 && i&loBit == 0 {
			i01 := i | loBit
			i10 := i | hiBit
			i11 := i | hiBit | loBit
			a00, a01, a10, a11 := s.amps[i], s.amps[i01], s.amps[i10], s.amps[i11]
			s.amps[i] = m[0][0]*a00 + m[0][1]*a01 + m[0][2]*a10 + m[0][3]*a11
			s.amps[i01] = m[1][0]*a00 + m[1][1]*a01 + m[1][2]*a10 + m[1][3]*a11
			s.amps[i10] = m[2][0]*a00 + m[2][1]*a01 + m[2][2]*a10 + m[2][3]*a11
			s.amps[i11] = m[3][0]*a00 + m[3][1]*a01 + m[3][2]*a10 + m[3][3]*a11
		}
	}
	return nil
}
