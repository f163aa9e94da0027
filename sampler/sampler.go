// Package sampler generates valid manipulator configurations for a tool pose
// held by an auxiliary positioner (rail, rotary turntable, or tilt-rotate
// spool). Each sampler discretizes its positioner's degree of freedom,
// transforms the tool pose into the manipulator frame at each value, collects
// every inverse kinematics solution for the transformed pose, and keeps the
// ones that pass collision validation.
//
// Samplers append candidates to a caller-owned flat buffer as
// [joint_1 .. joint_dof, positionerValue]; the buffer length is always a
// multiple of DoF+1 (DoF for CartesianSampler, which has no positioner).
package sampler

import (
	"context"

	"github.com/pathweld/cartsample/spatialmath"
)

// Float is the numeric type solution buffers and sweep values are expressed
// in. Pose math is always double precision; single precision buffers halve
// the footprint of large solution sets.
type Float interface {
	~float32 | ~float64
}

// Solver is the consumed inverse kinematics contract. Implementations must be
// safe for concurrent use if samplers are driven in parallel.
type Solver[F Float] interface {
	// DoF returns the number of joints of the manipulator; every solution
	// returned by Solve has exactly this many values.
	DoF() int

	// Solve returns all joint solutions reaching the given pose, flattened
	// into one buffer whose length is a multiple of DoF. An empty buffer
	// means the pose is unreachable and is not an error.
	Solve(ctx context.Context, pose spatialmath.Pose) ([]F, error)
}

// Checker is the consumed collision validation contract: a pure predicate
// over a configuration vector of the declared width (manipulator joints
// followed by any positioner values). Implementations must be safe to call
// repeatedly within one sampling pass.
type Checker[F Float] interface {
	Validate(configuration []F, width int) bool
}

// PoseSampler is the common contract of all sampler variants. A sampler is
// constructed once per tool pose and Sample may be called exactly once;
// construct a fresh sampler for each new pose.
type PoseSampler[F Float] interface {
	// Sample appends every accepted candidate to solutionSet and reports
	// what kind of result, if any, was found. Appended values are never
	// removed, including when an error cuts the sweep short.
	Sample(ctx context.Context, solutionSet *[]F) (Outcome, error)
}

// Outcome describes the result of a sampling pass.
type Outcome int

const (
	// OutcomeNoSolution means no candidate was appended.
	OutcomeNoSolution Outcome = iota
	// OutcomeValidated means every appended candidate passed collision
	// validation.
	OutcomeValidated
	// OutcomeBestEffort means no candidate passed collision validation and
	// a single best-scoring unvalidated candidate was appended instead.
	// Downstream consumers must treat such a configuration as potentially
	// colliding.
	OutcomeBestEffort
)

// Found reports whether at least one candidate was appended, matching the
// boolean success convention of the samplers' callers.
func (o Outcome) Found() bool {
	return o != OutcomeNoSolution
}

func (o Outcome) String() string {
	switch o {
	case OutcomeNoSolution:
		return "NoSolution"
	case OutcomeValidated:
		return "Validated"
	case OutcomeBestEffort:
		return "BestEffort"
	default:
		return "Unknown"
	}
}

// jointSolutions splits a flat IK buffer into individual solutions of the
// given arity. A buffer that is not a multiple of the arity violates the
// Solver contract.
func jointSolutions[F Float](buffer []F, dof int) ([][]F, error) {
	if dof <= 0 {
		return nil, newInvalidDoFError(dof)
	}
	if len(buffer)%dof != 0 {
		return nil, newIKBufferError(len(buffer), dof)
	}
	solutions := make([][]F, 0, len(buffer)/dof)
	for i := 0; i < len(buffer); i += dof {
		solutions = append(solutions, buffer[i:i+dof])
	}
	return solutions, nil
}

// packCandidate returns the joint solution with the positioner value(s)
// appended, in the layout candidates are validated and stored in.
func packCandidate[F Float](joints []F, positioner ...F) []F {
	candidate := make([]F, 0, len(joints)+len(positioner))
	candidate = append(candidate, joints...)
	return append(candidate, positioner...)
}
