package qsim

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// GateKind enumerates the supported gate catalog. The set is closed on
// purpose: every kind maps to a fixed or single-parameter matrix, and
// anything else goes through Apply directly.
type GateKind int

const (
	GateH GateKind = iota
	GateX
	GateY
	GateZ
	GateS
	GateSdg
	GateT
	GateTdg
	GateRX
	GateRY
	GateRZ
	GateCH
	GateCX
	GateCY
	GateCZ
	GateSwap
	GateCRX
	GateCRY
	GateCRZ
)

var gateNames = map[GateKind]string{
	GateH: "H", GateX: "X", GateY: "Y", GateZ: "Z",
	GateS: "S", GateSdg: "S†", GateT: "T", GateTdg: "T†",
	GateRX: "RX", GateRY: "RY", GateRZ: "RZ",
	GateCH: "CH", GateCX: "CX", GateCY: "CY", GateCZ: "CZ",
	GateSwap: "SWAP", GateCRX: "CRX", GateCRY: "CRY", GateCRZ: "CRZ",
}

func (k GateKind) String() string {
	if name, ok := gateNames[k]; ok {
		return name
	}
	return "?"
}

// Arity returns the number of qubit indices the gate takes: 1 or 2.
func (k GateKind) Arity() int {
	if k >= GateCH {
		return 2
	}
	return 1
}

// Parameterized reports whether the gate takes a rotation angle.
func (k GateKind) Parameterized() bool {
	switch k {
	case GateRX, GateRY, GateRZ, GateCRX, GateCRY, GateCRZ:
		return true
	}
	return false
}

// Gate pairs a catalog kind with its rotation angle. Theta is ignored for
// non-parameterized kinds.
type Gate struct {
	Kind  GateKind
	Theta float64
}

// Arity returns the number of qubit indices the gate takes.
func (g Gate) Arity() int { return g.Kind.Arity() }

// Matrix returns the gate's unitary in its minimal 2x2 or 4x4 space.
// Controlled gates act as identity on the control=0 block and as the base
// gate on the control=1 block, with the control as the high bit, so Apply
// needs no control-specific branching.
func (g Gate) Matrix() *mat.CDense {
	h := complex(math.Sqrt(0.5), 0)
	switch g.Kind {
	case GateH:
		return mat.NewCDense(2, 2, []complex128{h, h, h, -h})
	case GateX:
		return mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
	case GateY:
		return mat.NewCDense(2, 2, []complex128{0, -1i, 1i, 0})
	case GateZ:
		return mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
	case GateS:
		return mat.NewCDense(2, 2, []complex128{1, 0, 0, 1i})
	case GateSdg:
		return mat.NewCDense(2, 2, []complex128{1, 0, 0, -1i})
	case GateT:
		return mat.NewCDense(2, 2, []complex128{1, 0, 0, cmplx.Exp(complex(0, math.Pi/4))})
	case GateTdg:
		return mat.NewCDense(2, 2, []complex128{1, 0, 0, cmplx.Exp(complex(0, -math.Pi/4))})
	case GateRX:
		c := complex(math.Cos(g.Theta/2), 0)
		js := complex(0, -math.Sin(g.Theta/2))
		return mat.NewCDense(2, 2, []complex128{c, js, js, c})
	case GateRY:
		c := complex(math.Cos(g.Theta/2), 0)
		sn := complex(math.Sin(g.Theta/2), 0)
		return mat.NewCDense(2, 2, []complex128{c, -sn, sn, c})
	case GateRZ:
		e := cmplx.Exp(complex(0, g.Theta/2))
		return mat.NewCDense(2, 2, []complex128{cmplx.Conj(e), 0, 0, e})
	case GateCH:
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, h, h,
			0, 0, h, -h,
		})
	case GateCX:
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
		})
	case GateCY:
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, -1i,
			0, 0, 1i, 0,
		})
	case GateCZ:
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, -1,
		})
	case GateSwap:
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 0, 1, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
		})
	case GateCRX:
		c := complex(math.Cos(g.Theta/2), 0)
		js := complex(0, -math.Sin(g.Theta/2))
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, c, js,
			0, 0, js, c,
		})
	case GateCRY:
		c := complex(math.Cos(g.Theta/2), 0)
		sn := complex(math.Sin(g.Theta/2), 0)
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, c, -sn,
			0, 0, sn, c,
		})
	case GateCRZ:
		e := cmplx.Exp(complex(0, g.Theta/2))
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, cmplx.Conj(e), 0,
			0, 0, 0, e,
		})
	}
	return nil
}

// Kinds returns every catalog kind, in declaration order.
func Kinds() []GateKind {
	kinds := make([]GateKind, 0, len(gateNames))
	for k := GateH; k <= GateCRZ; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Convenience methods mirroring the usual circuit vocabulary. Each is a
// direct Apply of the catalog matrix; controlled variants take the control
// qubit first.

// H applies a Hadamard gate to qubit q.
func (s *State) H(q int) error { return s.Apply(Gate{Kind: GateH}.Matrix(), q) }

// X applies a Pauli X (NOT) gate to qubit q.
func (s *State) X(q int) error { return s.Apply(Gate{Kind: GateX}.Matrix(), q) }

// Y applies a Pauli Y gate to qubit q.
func (s *State) Y(q int) error { return s.Apply(Gate{Kind: GateY}.Matrix(), q) }

// Z applies a Pauli Z gate to qubit q.
func (s *State) Z(q int) error { return s.Apply(Gate{Kind: GateZ}.Matrix(), q) }

// S applies the phase gate to qubit q.
func (s *State) S(q int) error { return s.Apply(Gate{Kind: GateS}.Matrix(), q) }

// Sdg applies the adjoint phase gate to qubit q.
func (s *State) Sdg(q int) error { return s.Apply(Gate{Kind: GateSdg}.Matrix(), q) }

// T applies the pi/8 gate to qubit q.
func (s *State) T(q int) error { return s.Apply(Gate{Kind: GateT}.Matrix(), q) }

// Tdg applies the adjoint pi/8 gate to qubit q.
func (s *State) Tdg(q int) error { return s.Apply(Gate{Kind: GateTdg}.Matrix(), q) }

// RX rotates qubit q around the X axis by theta.
func (s *State) RX(theta float64, q int) error {
	return s.Apply(Gate{Kind: GateRX, Theta: theta}.Matrix(), q)
}

// RY rotates qubit q around the Y axis by theta.
func (s *State) RY(theta float64, q int) error {
	return s.Apply(Gate{Kind: GateRY, Theta: theta}.Matrix(), q)
}

// RZ rotates qubit q around the Z axis by theta.
func (s *State) RZ(theta float64, q int) error {
	return s.Apply(Gate{Kind: GateRZ, Theta: theta}.Matrix(), q)
}

// CH applies a controlled Hadamard gate.
func (s *State) CH(ctrl, targ int) error {
	return s.Apply(Gate{Kind: GateCH}.Matrix(), ctrl, targ)
}

// CX applies a controlled X (CNOT) gate.
func (s *State) CX(ctrl, targ int) error {
	return s.Apply(Gate{Kind: GateCX}.Matrix(), ctrl, targ)
}

// CY applies a controlled Y gate.
func (s *State) CY(ctrl, targ int) error {
	return s.Apply(Gate{Kind: GateCY}.Matrix(), ctrl, targ)
}

// CZ applies a controlled Z gate.
func (s *State) CZ(ctrl, targ int) error {
	return s.Apply(Gate{Kind: GateCZ}.Matrix(), ctrl, targ)
}

// Swap exchanges qubits a and b.
func (s *State) Swap(a, b int) error {
	return s.Apply(Gate{Kind: GateSwap}.Matrix(), a, b)
}

// CRX applies a controlled X rotation by theta.
func (s *State) CRX(theta float64, ctrl, targ int) error {
	return s.Apply(Gate{Kind: GateCRX, Theta: theta}.Matrix(), ctrl, targ)
}

// CRY applies a controlled Y rotation by theta.
func (s *State) CRY(theta float64, ctrl, targ int) error {
	return s.Apply(Gate{Kind: GateCRY, Theta: theta}.Matrix(), ctrl, targ)
}

// CRZ applies a controlled Z rotation by theta.
func (s *State) CRZ(theta float64, ctrl, targ int) error {
	return s.Apply(Gate{Kind: GateCRZ, Theta: theta}.Matrix(), ctrl, targ)
}
