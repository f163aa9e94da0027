package sampler

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Step size shared by the rotary positioner sweeps: 5 degrees.
const defaultSweepStep = math.Pi / 36

// Sweep describes the closed interval and fixed step with which a positioner
// axis is discretized. Both bounds are always sampled.
type Sweep[F Float] struct {
	Min  F `json:"min"`
	Max  F `json:"max"`
	Step F `json:"step"`
}

// DefaultTurntableSweep covers one full revolution of a rotary table.
func DefaultTurntableSweep[F Float]() Sweep[F] {
	return Sweep[F]{Min: -math.Pi, Max: math.Pi, Step: defaultSweepStep}
}

// DefaultSpoolSweep covers two full revolutions, reflecting the spool's
// compound joint.
func DefaultSpoolSweep[F Float]() Sweep[F] {
	return Sweep[F]{Min: -2 * math.Pi, Max: 2 * math.Pi, Step: defaultSweepStep}
}

// countTol absorbs single-precision rounding of Max, Min and Step so that a
// sweep spanning an exact number of steps still samples both boundaries.
const countTol = 1e-4

// Count returns the boundary-inclusive number of samples in the sweep.
func (s Sweep[F]) Count() int {
	return int(math.Floor(float64(s.Max-s.Min)/float64(s.Step)+countTol)) + 1
}

// Value returns the i-th sampled value. Values are computed from the index
// rather than accumulated so that Count values are hit exactly, in single
// precision as well.
func (s Sweep[F]) Value(i int) F {
	return s.Min + F(i)*s.Step
}

// Validate checks that the sweep describes a non-empty forward interval.
func (s Sweep[F]) Validate() error {
	var err error
	if s.Step <= 0 {
		err = multierr.Combine(err, errors.Errorf("sweep step must be positive, got %v", s.Step))
	}
	if s.Max < s.Min {
		err = multierr.Combine(err, errors.Errorf("sweep max %v is less than min %v", s.Max, s.Min))
	}
	return err
}
