// Package spatialmath defines the rigid transform math used by the samplers.
// Poses are represented internally as dual quaternions, which compose by
// multiplication and stay numerically stable over long chains of transforms.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// dualQuaternion is the private implementation of Pose. The real part holds
// the rotation as a unit quaternion and the dual part encodes half the
// translation against that rotation.
type dualQuaternion struct {
	dualquat.Number
}

// newDualQuaternion returns an identity dualQuaternion. Since the real part
// must be a unit quaternion, not all zeroes, this should be used instead of
// &dualQuaternion{}.
func newDualQuaternion() *dualQuaternion {
	return &dualQuaternion{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

// newDualQuaternionFromRotation returns a dualQuaternion with the given
// orientation and no translation.
func newDualQuaternionFromRotation(o Orientation) *dualQuaternion {
	return &dualQuaternion{dualquat.Number{
		Real: o.Quaternion(),
		Dual: quat.Number{},
	}}
}

// newDualQuaternionFromDH creates a dualQuaternion from a single set of
// Denavit-Hartenberg parameters: link length a, link offset d, link twist
// alpha.
func newDualQuaternionFromDH(a, d, alpha float64) *dualQuaternion {
	m := mgl64.Ident4()

	m.Set(1, 1, math.Cos(alpha))
	m.Set(1, 2, -1*math.Sin(alpha))

	m.Set(2, 0, 0)
	m.Set(2, 1, math.Sin(alpha))
	m.Set(2, 2, math.Cos(alpha))

	qRot := mgl64.Mat4ToQuat(m)
	q := newDualQuaternion()
	q.Real = quat.Number{Real: qRot.W, Imag: qRot.X(), Jmag: qRot.Y(), Kmag: qRot.Z()}
	q.setTranslation(a, 0, d)
	return q
}

// Point returns the translation of the transform as a vector. The dual
// quaternion multiplied by its own conjugate leaves an identity real part and
// a dual part representing half the real-world translation.
func (q *dualQuaternion) Point() r3.Vector {
	tq := dualquat.Mul(q.Number, dualquat.Conj(q.Number))
	return r3.Vector{X: tq.Dual.Imag, Y: tq.Dual.Jmag, Z: tq.Dual.Kmag}
}

// Orientation returns the rotation of the transform.
func (q *dualQuaternion) Orientation() Orientation {
	rot := quaternion(q.Real)
	return &rot
}

// setTranslation correctly sets the translation quaternion against the
// rotation.
func (q *dualQuaternion) setTranslation(x, y, z float64) {
	q.Dual = quat.Number{Imag: x / 2, Jmag: y / 2, Kmag: z / 2}
	q.rotate()
}

// rotate multiplies the dual part of the quaternion by the real part, to give
// the correct rotation.
func (q *dualQuaternion) rotate() {
	q.Dual = quat.Mul(q.Dual, q.Real)
}

// transformation multiplies this dual quaternion by another, composing the
// two rigid transforms.
func (q *dualQuaternion) transformation(by dualquat.Number) dualquat.Number {
	// Ensure we are multiplying by a unit dual quaternion
	if vecLen := quat.Abs(by.Real); vecLen != 1 {
		by.Real = quat.Scale(1/vecLen, by.Real)
	}
	return dualquat.Mul(q.Number, by)
}

// dualQuaternionFromPose returns a dual quaternion view of any Pose,
// avoiding a conversion when the Pose is already one.
func dualQuaternionFromPose(p Pose) *dualQuaternion {
	if q, ok := p.(*dualQuaternion); ok {
		return &dualQuaternion{q.Number}
	}
	q := newDualQuaternionFromRotation(p.Orientation())
	pt := p.Point()
	q.setTranslation(pt.X, pt.Y, pt.Z)
	return q
}
