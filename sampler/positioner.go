package sampler

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/pathweld/cartsample/spatialmath"
)

// Mounting geometry of the positioners relative to the manipulator base, in
// meters. These values come from the cell's physical specification; changing
// them without resurveying the cell breaks kinematic correctness.
const (
	// turntableOffsetX is the distance from the manipulator base to the
	// rotary table's center of rotation, along the base X axis.
	turntableOffsetX = 1.25

	// spoolOffsetX and spoolOffsetZ locate the spool's rotation center
	// relative to the manipulator base.
	spoolOffsetX = 1.25
	spoolOffsetZ = 0.5

	// spoolTilt is the fixed tilt of the spool's rotary axis about the base
	// X axis.
	spoolTilt = math.Pi / 2
)

// RailFrame expresses a tool pose held by a linear rail in the manipulator
// frame: a translation along the rail axis by the given offset, then the tool
// pose. The axis is normalized before use.
func RailFrame[F Float](toolPose spatialmath.Pose, axis r3.Vector, offset F) spatialmath.Pose {
	travel := spatialmath.NewPoseFromPoint(axis.Normalize().Mul(float64(offset)))
	return spatialmath.Compose(travel, toolPose)
}

// TurntableFrame expresses a tool pose held by a single-axis rotary table in
// the manipulator frame: the fixed base offset, a rotation about the vertical
// axis by the scan angle, then the tool pose.
func TurntableFrame[F Float](toolPose spatialmath.Pose, angle F) spatialmath.Pose {
	offset := spatialmath.NewPoseFromPoint(r3.Vector{X: turntableOffsetX})
	spin := spatialmath.NewPoseFromOrientation(&spatialmath.R4AA{Theta: float64(angle), RZ: 1})
	return spatialmath.Compose(spatialmath.Compose(offset, spin), toolPose)
}

// SpoolFrame expresses a tool pose held by a tilt-rotate spool in the
// manipulator frame: the fixed base offset, the fixed tilt about the base X
// axis, a rotation about the vertical axis by the scan angle, then the tool
// pose.
func SpoolFrame[F Float](toolPose spatialmath.Pose, angle F) spatialmath.Pose {
	offset := spatialmath.NewPoseFromPoint(r3.Vector{X: spoolOffsetX, Z: spoolOffsetZ})
	tilt := spatialmath.NewPoseFromOrientation(&spatialmath.R4AA{Theta: spoolTilt, RX: 1})
	spin := spatialmath.NewPoseFromOrientation(&spatialmath.R4AA{Theta: float64(angle), RZ: 1})
	frame := spatialmath.Compose(spatialmath.Compose(offset, tilt), spin)
	return spatialmath.Compose(frame, toolPose)
}
