package sampler

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/pathweld/cartsample/spatialmath"
)

func TestRailFrame(t *testing.T) {
	tool := spatialmath.NewZeroPose()
	p := RailFrame(tool, r3.Vector{X: 1}, 2.0)
	test.That(t, spatialmath.PointAlmostEqual(p.Point(), r3.Vector{X: 2}, 1e-10), test.ShouldBeTrue)

	// a non-unit axis is normalized, not scaled into the offset
	p = RailFrame(tool, r3.Vector{X: 10}, 2.0)
	test.That(t, spatialmath.PointAlmostEqual(p.Point(), r3.Vector{X: 2}, 1e-10), test.ShouldBeTrue)

	// the tool pose rides along the rail
	tool = spatialmath.NewPoseFromPoint(r3.Vector{Y: 1})
	p = RailFrame(tool, r3.Vector{Z: 1}, -0.5)
	test.That(t, spatialmath.PointAlmostEqual(p.Point(), r3.Vector{Y: 1, Z: -0.5}, 1e-10), test.ShouldBeTrue)
}

func TestTurntableFrame(t *testing.T) {
	// at angle zero the tool sits at the table's base offset
	p := TurntableFrame(spatialmath.NewZeroPose(), 0.0)
	test.That(t, spatialmath.PointAlmostEqual(p.Point(), r3.Vector{X: 1.25}, 1e-10), test.ShouldBeTrue)
	test.That(t, spatialmath.OrientationAlmostEqual(p.Orientation(), spatialmath.NewZeroOrientation()), test.ShouldBeTrue)

	// a quarter turn carries a tool at table-frame X onto Y
	tool := spatialmath.NewPoseFromPoint(r3.Vector{X: 1})
	p = TurntableFrame(tool, math.Pi/2)
	test.That(t, spatialmath.PointAlmostEqual(p.Point(), r3.Vector{X: 1.25, Y: 1}, 1e-10), test.ShouldBeTrue)
}

func TestSpoolFrame(t *testing.T) {
	// at angle zero the tool sits at the spool's base offset, tilted 90
	// degrees about X
	p := SpoolFrame(spatialmath.NewZeroPose(), 0.0)
	test.That(t, spatialmath.PointAlmostEqual(p.Point(), r3.Vector{X: 1.25, Z: 0.5}, 1e-10), test.ShouldBeTrue)
	aa := p.Orientation().AxisAngles()
	test.That(t, aa.Theta, test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, aa.RX, test.ShouldAlmostEqual, 1)

	// the tilt carries a tool at spool-frame Z onto -Y
	tool := spatialmath.NewPoseFromPoint(r3.Vector{Z: 1})
	p = SpoolFrame(tool, 0.0)
	test.That(t, spatialmath.PointAlmostEqual(p.Point(), r3.Vector{X: 1.25, Y: -1, Z: 0.5}, 1e-10), test.ShouldBeTrue)
}

func TestFrameDeterminism(t *testing.T) {
	tool := spatialmath.NewPose(r3.Vector{X: 0.3, Y: -0.2, Z: 0.9}, &spatialmath.R4AA{Theta: 0.7, RY: 1})
	for _, angle := range []float64{-math.Pi, -1, 0, 0.5, math.Pi} {
		a := TurntableFrame(tool, angle)
		b := TurntableFrame(tool, angle)
		test.That(t, a.Point(), test.ShouldResemble, b.Point())
		test.That(t, a.Orientation().Quaternion(), test.ShouldResemble, b.Orientation().Quaternion())

		a = SpoolFrame(tool, angle)
		b = SpoolFrame(tool, angle)
		test.That(t, a.Point(), test.ShouldResemble, b.Point())
		test.That(t, a.Orientation().Quaternion(), test.ShouldResemble, b.Orientation().Quaternion())
	}
}

func TestFrameFloat32Angles(t *testing.T) {
	// the generic angle parameter accepts single precision sweeps
	p64 := TurntableFrame(spatialmath.NewZeroPose(), float64(math.Pi/2))
	p32 := TurntableFrame(spatialmath.NewZeroPose(), float32(math.Pi/2))
	test.That(t, spatialmath.PointAlmostEqual(p32.Point(), p64.Point(), 1e-6), test.ShouldBeTrue)
}
