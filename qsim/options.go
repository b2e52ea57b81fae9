package qsim

import "math/rand/v2"

// DefaultMaxQubits bounds register allocation: 2^25 amplitudes at 16 bytes
// each is 512 MiB, the practical ceiling for dense single-process
// simulation.
const DefaultMaxQubits = 25

// NormTolerance is the accepted deviation of a state vector's squared norm
// from 1 when initializing.
const NormTolerance = 1e-6

type options struct {
	maxQubits int
	rng       *rand.Rand
}

// Option configures a State at construction time.
type Option func(*options)

// WithMaxQubits overrides the maximum register size accepted by New.
// Values below 1 are ignored.
func WithMaxQubits(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxQubits = n
		}
	}
}

// WithRand sets the randomness source used by Measure and Sample. When not
// set, the shared math/rand/v2 generator is used. Injecting a seeded source
// makes measurement outcomes reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

func gatherOptions(opts []Option) options {
	o := options{maxQubits: DefaultMaxQubits}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
