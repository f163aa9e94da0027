package spatialmath

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/pathweld/cartsample/utils"
)

// Orientation is an interface used to express the different parameterizations
// of the orientation of a rigid object or a frame of reference in 3D
// Euclidean space.
type Orientation interface {
	Quaternion() quat.Number
	AxisAngles() *R4AA
}

// NewZeroOrientation returns an orientation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &quaternion{Real: 1}
}

// OrientationAlmostEqual will return a bool describing whether two
// orientations are approximately the same.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// QuaternionAlmostEqual compares two quaternions element-wise within the
// given tolerance. A quaternion and its negation represent the same rotation,
// so both signs are checked.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	same := utils.Float64AlmostEqual(a.Real, b.Real, tol) &&
		utils.Float64AlmostEqual(a.Imag, b.Imag, tol) &&
		utils.Float64AlmostEqual(a.Jmag, b.Jmag, tol) &&
		utils.Float64AlmostEqual(a.Kmag, b.Kmag, tol)
	flipped := utils.Float64AlmostEqual(a.Real, -b.Real, tol) &&
		utils.Float64AlmostEqual(a.Imag, -b.Imag, tol) &&
		utils.Float64AlmostEqual(a.Jmag, -b.Jmag, tol) &&
		utils.Float64AlmostEqual(a.Kmag, -b.Kmag, tol)
	return same || flipped
}

// quaternion is an Orientation backed directly by a unit quaternion.
type quaternion quat.Number

// Quaternion returns the orientation in quaternion representation.
func (q *quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// AxisAngles returns the orientation in axis angle representation.
func (q *quaternion) AxisAngles() *R4AA {
	return QuatToR4AA(q.Quaternion())
}
