package spatialmath

import (
	"github.com/golang/geo/r3"

	"github.com/pathweld/cartsample/utils"
)

// Pose represents a rigid 3D transform: a rotation together with a
// translation. Poses are immutable values; all constructors and Compose
// return fresh instances.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

// NewZeroPose returns a pose at (0, 0, 0) with no rotation.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPose takes a point and an orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		return NewPoseFromPoint(p)
	}
	q := newDualQuaternionFromRotation(o)
	q.setTranslation(p.X, p.Y, p.Z)
	return q
}

// NewPoseFromPoint takes a cartesian (x, y, z) and stores it as a pure
// translation with no rotation.
func NewPoseFromPoint(point r3.Vector) Pose {
	q := newDualQuaternion()
	q.setTranslation(point.X, point.Y, point.Z)
	return q
}

// NewPoseFromOrientation takes an Orientation and returns a Pose with no
// translation.
func NewPoseFromOrientation(o Orientation) Pose {
	if o == nil {
		return NewZeroPose()
	}
	return newDualQuaternionFromRotation(o)
}

// NewPoseFromDH creates a pose from a single set of Denavit-Hartenberg
// parameters.
func NewPoseFromDH(a, d, alpha float64) Pose {
	return newDualQuaternionFromDH(a, d, alpha)
}

// Compose treats Poses as functions A(x) and B(x), and produces a new
// function C(x) = A(B(x)). The second pose is expressed in the frame of the
// first.
func Compose(a, b Pose) Pose {
	aq := dualQuaternionFromPose(a)
	result := newDualQuaternion()
	result.Number = aq.transformation(dualQuaternionFromPose(b).Number)
	return result
}

// PoseAlmostCoincident checks if two poses approximately have the same
// position and orientation.
func PoseAlmostCoincident(a, b Pose) bool {
	return PointAlmostEqual(a.Point(), b.Point(), 1e-8) &&
		OrientationAlmostEqual(a.Orientation(), b.Orientation())
}

// PointAlmostEqual compares two vectors element-wise within the given
// epsilon.
func PointAlmostEqual(v1, v2 r3.Vector, epsilon float64) bool {
	return utils.Float64AlmostEqual(v1.X, v2.X, epsilon) &&
		utils.Float64AlmostEqual(v1.Y, v2.Y, epsilon) &&
		utils.Float64AlmostEqual(v1.Z, v2.Z, epsilon)
}
