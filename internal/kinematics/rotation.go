// Package kinematics implements the purely kinematic parts of hit
// detection: candidate-frame selection from ball angular velocity, rotation
// matrices from recorded pitch/yaw/roll, and the batched world→local
// displacement pipeline.
package kinematics

import (
	"math"

	"github.com/kcolton/carball/pkg/core"
)

// Matrix3 is a 3x3 rotation matrix in row-major order.
type Matrix3 [3][3]float64

// RotationMatrix builds the local→world orientation matrix for the given
// pitch/yaw/roll (radians). The composition matches the replay recording's
// convention: yaw about the world up axis applied after pitch, roll about
// the body's forward axis.
func RotationMatrix(r core.Rotation) Matrix3 {
	cp, sp := math.Cos(r.Pitch), math.Sin(r.Pitch)
	cy, sy := math.Cos(r.Yaw), math.Sin(r.Yaw)
	cr, sr := math.Cos(r.Roll), math.Sin(r.Roll)

	return Matrix3{
		{cp * cy, cy*sp*sr - cr*sy, -cr*cy*sp - sr*sy},
		{cp * sy, sy*sp*sr + cr*cy, -cr*sy*sp + sr*cy},
		{sp, -cp * sr, cp * cr},
	}
}

// Apply rotates v from the local frame into the world frame.
func (m Matrix3) Apply(v core.Vector3) core.Vector3 {
	return core.Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// ApplyTranspose rotates v from the world frame into the local frame. The
// transpose of an orthonormal rotation matrix is its inverse, so no explicit
// inversion is needed.
func (m Matrix3) ApplyTranspose(v core.Vector3) core.Vector3 {
	return core.Vector3{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		Z: m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}
