package sampler

import (
	"context"
	"math"

	"github.com/edaniels/golog"

	"github.com/pathweld/cartsample/spatialmath"
)

// CartesianSampler samples a tool pose expressed directly in the manipulator
// frame, with no positioner: candidates carry the joint values only. With
// allowCollision set, a single best-scoring unvalidated solution is
// substituted when no collision-free one exists.
type CartesianSampler[F Float] struct {
	toolPose       spatialmath.Pose
	kin            Solver[F]
	collision      Checker[F]
	allowCollision bool
	metric         ConfigurationMetric[F]
	logger         golog.Logger
	sampled        bool
}

// CartesianOption configures a CartesianSampler.
type CartesianOption[F Float] func(*CartesianSampler[F])

// WithCartesianMetric overrides the scoring metric used to rank solutions.
func WithCartesianMetric[F Float](metric ConfigurationMetric[F]) CartesianOption[F] {
	return func(s *CartesianSampler[F]) {
		s.metric = metric
	}
}

// NewCartesianSampler creates a single-shot sampler for a fixed
// manipulator-frame tool pose.
func NewCartesianSampler[F Float](
	toolPose spatialmath.Pose,
	kin Solver[F],
	collision Checker[F],
	allowCollision bool,
	logger golog.Logger,
	opts ...CartesianOption[F],
) (*CartesianSampler[F], error) {
	if toolPose == nil {
		return nil, errNilToolPose
	}
	if kin == nil {
		return nil, errNilSolver
	}
	if collision == nil {
		return nil, errNilChecker
	}
	if logger == nil {
		logger = golog.Global()
	}
	s := &CartesianSampler[F]{
		toolPose:       toolPose,
		kin:            kin,
		collision:      collision,
		allowCollision: allowCollision,
		metric:         NewDisplacementMetric[F](nil),
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sample appends candidates as [joints...]; the solution set stays a multiple
// of the manipulator DoF.
func (s *CartesianSampler[F]) Sample(ctx context.Context, solutionSet *[]F) (Outcome, error) {
	if solutionSet == nil {
		return OutcomeNoSolution, errNilSolutionSet
	}
	if s.sampled {
		return OutcomeNoSolution, errAlreadySampled
	}
	s.sampled = true

	dof := s.kin.DoF()
	buffer, err := s.kin.Solve(ctx, s.toolPose)
	if err != nil {
		return OutcomeNoSolution, err
	}
	solutions, err := jointSolutions(buffer, dof)
	if err != nil {
		return OutcomeNoSolution, err
	}

	outcome := OutcomeNoSolution
	bestScore := math.Inf(1)
	var bestCandidate []F
	for _, joints := range solutions {
		candidate := packCandidate(joints)
		if s.collision.Validate(candidate, dof) {
			*solutionSet = append(*solutionSet, candidate...)
			outcome = OutcomeValidated
		} else if score := s.metric(joints); score < bestScore {
			bestScore = score
			bestCandidate = candidate
		}
	}
	if outcome == OutcomeNoSolution && s.allowCollision && bestCandidate != nil {
		s.logger.Debugw("no collision-free solution, returning best effort", "score", bestScore)
		*solutionSet = append(*solutionSet, bestCandidate...)
		outcome = OutcomeBestEffort
	}
	return outcome, nil
}
