package sampler

import (
	"context"
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"github.com/pathweld/cartsample/spatialmath"
)

// Rail describes a linear rail: its direction of travel in the manipulator
// frame and the sweep of offsets searched along it.
type Rail[F Float] struct {
	Axis   r3.Vector `json:"axis"`
	Travel Sweep[F]  `json:"travel"`
}

// Validate checks the rail geometry.
func (r Rail[F]) Validate() error {
	if r.Axis.Norm() == 0 {
		return newZeroRailAxisError()
	}
	return r.Travel.Validate()
}

// RailedSampler samples a tool pose held by a linear rail. Unlike the rotary
// variants it does not report candidates across the whole travel: it searches
// the travel for the offset holding the best-scoring collision-free solution
// and appends all collision-free solutions found there. With allowCollision
// set, a single best-scoring unvalidated solution is substituted when no
// collision-free one exists anywhere on the rail.
type RailedSampler[F Float] struct {
	toolPose       spatialmath.Pose
	kin            Solver[F]
	collision      Checker[F]
	rail           Rail[F]
	allowCollision bool
	metric         ConfigurationMetric[F]
	logger         golog.Logger
	sampled        bool
}

// RailedOption configures a RailedSampler.
type RailedOption[F Float] func(*RailedSampler[F])

// WithRailMetric overrides the scoring metric used to rank solutions. The
// default scores squared displacement from the zero configuration.
func WithRailMetric[F Float](metric ConfigurationMetric[F]) RailedOption[F] {
	return func(s *RailedSampler[F]) {
		s.metric = metric
	}
}

// NewRailedSampler creates a single-shot sampler for a tool pose fixed in the
// rail's moving frame.
func NewRailedSampler[F Float](
	toolPose spatialmath.Pose,
	kin Solver[F],
	collision Checker[F],
	rail Rail[F],
	allowCollision bool,
	logger golog.Logger,
	opts ...RailedOption[F],
) (*RailedSampler[F], error) {
	if toolPose == nil {
		return nil, errNilToolPose
	}
	if kin == nil {
		return nil, errNilSolver
	}
	if collision == nil {
		return nil, errNilChecker
	}
	if err := rail.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = golog.Global()
	}
	s := &RailedSampler[F]{
		toolPose:       toolPose,
		kin:            kin,
		collision:      collision,
		rail:           rail,
		allowCollision: allowCollision,
		metric:         NewDisplacementMetric[F](nil),
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sample resolves the rail offset and appends candidates as
// [joints..., offset].
func (s *RailedSampler[F]) Sample(ctx context.Context, solutionSet *[]F) (Outcome, error) {
	if solutionSet == nil {
		return OutcomeNoSolution, errNilSolutionSet
	}
	if s.sampled {
		return OutcomeNoSolution, errAlreadySampled
	}
	s.sampled = true

	dof := s.kin.DoF()
	bestValidScore := math.Inf(1)
	var bestValidCandidates [][]F
	bestAnyScore := math.Inf(1)
	var bestAnyCandidate []F

	for i := 0; i < s.rail.Travel.Count(); i++ {
		offset := s.rail.Travel.Value(i)
		buffer, err := s.kin.Solve(ctx, RailFrame(s.toolPose, s.rail.Axis, offset))
		if err != nil {
			return OutcomeNoSolution, err
		}
		solutions, err := jointSolutions(buffer, dof)
		if err != nil {
			return OutcomeNoSolution, err
		}

		var valid [][]F
		offsetScore := math.Inf(1)
		for _, joints := range solutions {
			candidate := packCandidate(joints, offset)
			score := s.metric(joints)
			if s.collision.Validate(candidate, dof+1) {
				valid = append(valid, candidate)
				if score < offsetScore {
					offsetScore = score
				}
			} else if score < bestAnyScore {
				bestAnyScore = score
				bestAnyCandidate = candidate
			}
		}
		if len(valid) > 0 && offsetScore < bestValidScore {
			bestValidScore = offsetScore
			bestValidCandidates = valid
		}
	}

	if len(bestValidCandidates) > 0 {
		for _, candidate := range bestValidCandidates {
			*solutionSet = append(*solutionSet, candidate...)
		}
		return OutcomeValidated, nil
	}
	if s.allowCollision && bestAnyCandidate != nil {
		s.logger.Debugw("no collision-free rail solution, returning best effort", "score", bestAnyScore)
		*solutionSet = append(*solutionSet, bestAnyCandidate...)
		return OutcomeBestEffort, nil
	}
	return OutcomeNoSolution, nil
}
