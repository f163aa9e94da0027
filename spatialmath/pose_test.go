package spatialmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestZeroPose(t *testing.T) {
	zero := NewZeroPose()
	test.That(t, zero.Point(), test.ShouldResemble, r3.Vector{})
	test.That(t, OrientationAlmostEqual(zero.Orientation(), NewZeroOrientation()), test.ShouldBeTrue)
}

func TestNewPose(t *testing.T) {
	pt := r3.Vector{X: 1, Y: 2, Z: 3}
	p := NewPose(pt, &R4AA{Theta: math.Pi / 2, RZ: 1})
	test.That(t, PointAlmostEqual(p.Point(), pt, 1e-10), test.ShouldBeTrue)
	test.That(t, p.Orientation().AxisAngles().Theta, test.ShouldAlmostEqual, math.Pi/2)

	// nil orientation means no rotation
	p = NewPose(pt, nil)
	test.That(t, OrientationAlmostEqual(p.Orientation(), NewZeroOrientation()), test.ShouldBeTrue)
}

func TestComposeTranslationOnly(t *testing.T) {
	a := NewPoseFromPoint(r3.Vector{X: 1})
	b := NewPoseFromPoint(r3.Vector{Y: 2})
	c := Compose(a, b)
	test.That(t, PointAlmostEqual(c.Point(), r3.Vector{X: 1, Y: 2}, 1e-10), test.ShouldBeTrue)
}

func TestComposeRotatesTranslation(t *testing.T) {
	// a 90 degree rotation about Z carries a subsequent X translation onto Y
	rot := NewPoseFromOrientation(&R4AA{Theta: math.Pi / 2, RZ: 1})
	trans := NewPoseFromPoint(r3.Vector{X: 1})
	c := Compose(rot, trans)
	test.That(t, PointAlmostEqual(c.Point(), r3.Vector{Y: 1}, 1e-10), test.ShouldBeTrue)

	// cross-check the rotation against mathgl
	mglQ := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	expected := mglQ.Rotate(mgl64.Vec3{1, 0, 0})
	test.That(t, c.Point().X, test.ShouldAlmostEqual, expected.X())
	test.That(t, c.Point().Y, test.ShouldAlmostEqual, expected.Y())
	test.That(t, c.Point().Z, test.ShouldAlmostEqual, expected.Z())
}

func TestComposeAssociativity(t *testing.T) {
	a := NewPose(r3.Vector{X: 1, Z: 0.5}, &R4AA{Theta: math.Pi / 3, RX: 1})
	b := NewPose(r3.Vector{Y: -2}, &R4AA{Theta: math.Pi / 5, RZ: 1})
	c := NewPoseFromPoint(r3.Vector{X: 0.25, Y: 0.25, Z: 0.25})
	left := Compose(Compose(a, b), c)
	right := Compose(a, Compose(b, c))
	test.That(t, PoseAlmostCoincident(left, right), test.ShouldBeTrue)
}

func TestComposeWithIdentity(t *testing.T) {
	p := NewPose(r3.Vector{X: 3, Y: -1, Z: 2}, &R4AA{Theta: 1.1, RX: 0.5, RY: 0.5, RZ: math.Sqrt(0.5)})
	test.That(t, PoseAlmostCoincident(Compose(p, NewZeroPose()), p), test.ShouldBeTrue)
	test.That(t, PoseAlmostCoincident(Compose(NewZeroPose(), p), p), test.ShouldBeTrue)
}

func TestPoseFromDH(t *testing.T) {
	// zero twist reduces to a pure translation by (a, 0, d)
	p := NewPoseFromDH(2, 3, 0)
	test.That(t, PointAlmostEqual(p.Point(), r3.Vector{X: 2, Z: 3}, 1e-10), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(p.Orientation(), NewZeroOrientation()), test.ShouldBeTrue)

	// a 90 degree twist is a rotation about X
	p = NewPoseFromDH(0, 0, math.Pi/2)
	aa := p.Orientation().AxisAngles()
	test.That(t, aa.Theta, test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, aa.RX, test.ShouldAlmostEqual, 1)
}

func TestQuaternionAlmostEqual(t *testing.T) {
	q := quat.Number{Real: math.Cos(0.3), Imag: math.Sin(0.3)}
	negated := quat.Number{Real: -q.Real, Imag: -q.Imag}
	test.That(t, QuaternionAlmostEqual(q, negated, 1e-8), test.ShouldBeTrue)
	test.That(t, QuaternionAlmostEqual(q, quat.Number{Real: 1}, 1e-8), test.ShouldBeFalse)
}

func TestR4AAConversions(t *testing.T) {
	aa := &R4AA{Theta: math.Pi / 4, RX: 1}
	back := QuatToR4AA(aa.ToQuat())
	test.That(t, back.Theta, test.ShouldAlmostEqual, aa.Theta)
	test.That(t, back.RX, test.ShouldAlmostEqual, 1)
	test.That(t, back.RY, test.ShouldAlmostEqual, 0)
	test.That(t, back.RZ, test.ShouldAlmostEqual, 0)

	// axis gets normalized on conversion
	skewed := &R4AA{Theta: 1, RX: 2, RY: 0, RZ: 0}
	skewed.ToQuat()
	test.That(t, skewed.RX, test.ShouldAlmostEqual, 1)

	zero := NewR4AA()
	test.That(t, zero.Theta, test.ShouldEqual, 0.)
	test.That(t, QuaternionAlmostEqual(zero.ToQuat(), quat.Number{Real: 1}, 1e-8), test.ShouldBeTrue)
}
