package sampler

import (
	"context"

	"github.com/edaniels/golog"

	"github.com/pathweld/cartsample/spatialmath"
)

// frameFunc maps the fixed tool pose and a positioner value to the
// manipulator frame; each rotary variant supplies its own.
type frameFunc[F Float] func(toolPose spatialmath.Pose, angle F) spatialmath.Pose

// rotarySweep is the shared core of the range-discretizing sampler variants.
// It scans the configured sweep end to end with no early termination and
// appends every collision-free candidate.
type rotarySweep[F Float] struct {
	toolPose  spatialmath.Pose
	kin       Solver[F]
	collision Checker[F]
	sweep     Sweep[F]
	toFrame   frameFunc[F]
	logger    golog.Logger
	sampled   bool
}

func newRotarySweep[F Float](
	toolPose spatialmath.Pose,
	kin Solver[F],
	collision Checker[F],
	sweep Sweep[F],
	toFrame frameFunc[F],
	logger golog.Logger,
) (*rotarySweep[F], error) {
	if toolPose == nil {
		return nil, errNilToolPose
	}
	if kin == nil {
		return nil, errNilSolver
	}
	if collision == nil {
		return nil, errNilChecker
	}
	if err := sweep.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = golog.Global()
	}
	return &rotarySweep[F]{
		toolPose:  toolPose,
		kin:       kin,
		collision: collision,
		sweep:     sweep,
		toFrame:   toFrame,
		logger:    logger,
	}, nil
}

// Sample scans the whole sweep, appending every validated candidate as
// [joints..., angle].
func (s *rotarySweep[F]) Sample(ctx context.Context, solutionSet *[]F) (Outcome, error) {
	if solutionSet == nil {
		return OutcomeNoSolution, errNilSolutionSet
	}
	if s.sampled {
		return OutcomeNoSolution, errAlreadySampled
	}
	s.sampled = true

	dof := s.kin.DoF()
	outcome := OutcomeNoSolution
	appended := 0
	for i := 0; i < s.sweep.Count(); i++ {
		angle := s.sweep.Value(i)
		buffer, err := s.kin.Solve(ctx, s.toFrame(s.toolPose, angle))
		if err != nil {
			return outcome, err
		}
		solutions, err := jointSolutions(buffer, dof)
		if err != nil {
			return outcome, err
		}
		for _, joints := range solutions {
			candidate := packCandidate(joints, angle)
			if s.collision.Validate(candidate, dof+1) {
				*solutionSet = append(*solutionSet, candidate...)
				outcome = OutcomeValidated
				appended++
			}
		}
	}
	s.logger.Debugf("swept %d positioner values, kept %d candidates", s.sweep.Count(), appended)
	return outcome, nil
}

// ExternalAxisSampler samples a tool pose held by a single-axis rotary table,
// scanning the table angle across its sweep and collecting every
// collision-free manipulator configuration.
type ExternalAxisSampler[F Float] struct {
	*rotarySweep[F]
}

// ExternalAxisOption configures an ExternalAxisSampler.
type ExternalAxisOption[F Float] func(*externalAxisConfig[F])

type externalAxisConfig[F Float] struct {
	sweep Sweep[F]
}

// WithTurntableSweep overrides the default turntable sweep.
func WithTurntableSweep[F Float](sweep Sweep[F]) ExternalAxisOption[F] {
	return func(cfg *externalAxisConfig[F]) {
		cfg.sweep = sweep
	}
}

// NewExternalAxisSampler creates a single-shot sampler for a tool pose fixed
// in the rotary table's moving frame.
func NewExternalAxisSampler[F Float](
	toolPose spatialmath.Pose,
	kin Solver[F],
	collision Checker[F],
	logger golog.Logger,
	opts ...ExternalAxisOption[F],
) (*ExternalAxisSampler[F], error) {
	cfg := externalAxisConfig[F]{sweep: DefaultTurntableSweep[F]()}
	for _, opt := range opts {
		opt(&cfg)
	}
	core, err := newRotarySweep(toolPose, kin, collision, cfg.sweep, TurntableFrame[F], logger)
	if err != nil {
		return nil, err
	}
	return &ExternalAxisSampler[F]{core}, nil
}

// SpoolSampler samples a tool pose held by a tilt-rotate spool positioner,
// scanning the spool's compound rotation across a double revolution.
type SpoolSampler[F Float] struct {
	*rotarySweep[F]
}

// SpoolOption configures a SpoolSampler.
type SpoolOption[F Float] func(*spoolConfig[F])

type spoolConfig[F Float] struct {
	sweep Sweep[F]
}

// WithSpoolSweep overrides the default spool sweep.
func WithSpoolSweep[F Float](sweep Sweep[F]) SpoolOption[F] {
	return func(cfg *spoolConfig[F]) {
		cfg.sweep = sweep
	}
}

// NewSpoolSampler creates a single-shot sampler for a tool pose fixed in the
// spool's moving frame.
func NewSpoolSampler[F Float](
	toolPose spatialmath.Pose,
	kin Solver[F],
	collision Checker[F],
	logger golog.Logger,
	opts ...SpoolOption[F],
) (*SpoolSampler[F], error) {
	cfg := spoolConfig[F]{sweep: DefaultSpoolSweep[F]()}
	for _, opt := range opts {
		opt(&cfg)
	}
	core, err := newRotarySweep(toolPose, kin, collision, cfg.sweep, SpoolFrame[F], logger)
	if err != nil {
		return nil, err
	}
	return &SpoolSampler[F]{core}, nil
}
