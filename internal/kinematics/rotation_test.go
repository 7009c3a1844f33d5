package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kcolton/carball/pkg/core"
)

func TestRotationMatrix_Identity(t *testing.T) {
	m := RotationMatrix(core.Rotation{})
	v := core.Vector3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, v, m.Apply(v))
	assert.Equal(t, v, m.ApplyTranspose(v))
}

func TestRotationMatrix_YawQuarterTurn(t *testing.T) {
	m := RotationMatrix(core.Rotation{Yaw: math.Pi / 2})
	// A unit step along local forward ends up along world Y.
	got := m.Apply(core.Vector3{X: 1})
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 1, got.Y, 1e-12)
	assert.InDelta(t, 0, got.Z, 1e-12)
}

func TestRotationMatrix_PitchQuarterTurn(t *testing.T) {
	m := RotationMatrix(core.Rotation{Pitch: math.Pi / 2})
	// Nose-up pitch sends local forward to world up.
	got := m.Apply(core.Vector3{X: 1})
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 0, got.Y, 1e-12)
	assert.InDelta(t, 1, got.Z, 1e-12)
}

func TestRotationMatrix_RoundTrip(t *testing.T) {
	rotations := []core.Rotation{
		{},
		{Pitch: 0.3},
		{Yaw: -1.2},
		{Roll: 2.8},
		{Pitch: 0.5, Yaw: 1.1, Roll: -0.7},
		{Pitch: -math.Pi / 3, Yaw: math.Pi, Roll: math.Pi / 6},
		{Pitch: 1.5707, Yaw: -2.9, Roll: 3.1},
	}
	vectors := []core.Vector3{
		{X: 1},
		{Y: -2},
		{Z: 3.5},
		{X: 100.25, Y: -250.5, Z: 17.125},
		{X: -0.001, Y: 0.002, Z: -0.003},
	}

	for _, r := range rotations {
		m := RotationMatrix(r)
		for _, v := range vectors {
			back := m.Apply(m.ApplyTranspose(v))
			assert.InDelta(t, v.X, back.X, 1e-9)
			assert.InDelta(t, v.Y, back.Y, 1e-9)
			assert.InDelta(t, v.Z, back.Z, 1e-9)
		}
	}
}

func TestRotationMatrix_Orthonormal(t *testing.T) {
	m := RotationMatrix(core.Rotation{Pitch: 0.4, Yaw: -1.9, Roll: 0.8})
	// Norm is preserved under rotation.
	v := core.Vector3{X: 3, Y: -4, Z: 12}
	assert.InDelta(t, v.Norm(), m.Apply(v).Norm(), 1e-9)
	assert.InDelta(t, v.Norm(), m.ApplyTranspose(v).Norm(), 1e-9)
}
