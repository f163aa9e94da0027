package sampler

import "github.com/pkg/errors"

var (
	errNilSolver      = errors.New("kinematics solver cannot be nil")
	errNilChecker     = errors.New("collision checker cannot be nil")
	errNilToolPose    = errors.New("tool pose cannot be nil")
	errNilSolutionSet = errors.New("solution set cannot be nil")

	// errAlreadySampled is returned on a second Sample call; samplers are
	// single-shot and a fresh one must be constructed per tool pose.
	errAlreadySampled = errors.New("sampler has already been consumed, construct a new sampler per tool pose")
)

// newIKBufferError reports a Solver contract violation: the flat solution
// buffer must be a multiple of the manipulator's DoF.
func newIKBufferError(length, dof int) error {
	return errors.Errorf("ik returned a buffer of %d values, not a multiple of the %d joint dof", length, dof)
}

func newInvalidDoFError(dof int) error {
	return errors.Errorf("solver reported invalid dof %d", dof)
}

func newZeroRailAxisError() error {
	return errors.New("rail axis cannot be the zero vector")
}
