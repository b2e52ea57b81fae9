package qsim

import "errors"

// Sentinel errors returned by the qsim package. Callers match them with
// errors.Is; every error is a synchronous, caller-correctable usage error
// and a rejected call leaves the state vector unmodified.
var (
	// ErrInvalidSize is returned when the requested qubit count is below 1
	// or above the configured maximum.
	ErrInvalidSize = errors.New("qsim: invalid register size")

	// ErrDimensionMismatch is returned when an initialization vector or a
	// gate matrix does not have the dimension required by the register and
	// the supplied qubit indices.
	ErrDimensionMismatch = errors.New("qsim: dimension mismatch")

	// ErrNotNormalized is returned when an initialization vector's squared
	// norm deviates from 1 beyond NormTolerance. The store never
	// renormalizes silently.
	ErrNotNormalized = errors.New("qsim: vector is not normalized")

	// ErrInvalidQubitIndex is returned for qubit indices that are out of
	// range, duplicated, or supplied with an unsupported arity.
	ErrInvalidQubitIndex = errors.New("qsim: invalid qubit index")

	// ErrDegenerateMeasurement is returned when a forced measurement
	// outcome has numerically zero probability, making renormalization
	// undefined.
	ErrDegenerateMeasurement = errors.New("qsim: measurement outcome has zero probability")
)
