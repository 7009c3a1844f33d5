// Package hitbox provides the vehicle shape oracle consumed by hit
// detection: a pure mapping from a local-frame displacement to a scalar
// distance from the vehicle surface. Geometry data lives here as a fixed
// table of cuboid presets keyed by vehicle body item id.
package hitbox

import (
	"math"

	"github.com/kcolton/carball/pkg/core"
)

// Shape computes a collision distance from a displacement expressed in the
// vehicle's local frame. The result is near zero at genuine contact and
// grows with separation; implementations must be pure and deterministic.
type Shape interface {
	CollisionDistance(local core.Vector3) float64
}

// Box is a cuboid hitbox. Dimensions are full extents in local coordinates
// (X forward, Y right, Z up); Offset shifts the box center away from the
// vehicle pivot.
type Box struct {
	Length float64
	Width  float64
	Height float64
	Offset core.Vector3
}

// CollisionDistance returns the Euclidean distance from the displacement
// point to the box surface, or 0 when the point is inside the box.
func (b Box) CollisionDistance(local core.Vector3) float64 {
	dx := axisExcess(local.X-b.Offset.X, b.Length/2)
	dy := axisExcess(local.Y-b.Offset.Y, b.Width/2)
	dz := axisExcess(local.Z-b.Offset.Z, b.Height/2)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func axisExcess(d, half float64) float64 {
	return math.Max(math.Abs(d)-half, 0)
}

// Preset hitboxes by vehicle body item id. Values are the measured body
// hitbox extents from the game's common body classes.
var presets = map[int]Box{
	21:   {Length: 131.49, Width: 80.52, Height: 30.30, Offset: core.Vector3{X: 12.50, Z: 11.75}}, // Breakout class
	22:   {Length: 127.02, Width: 82.19, Height: 34.16, Offset: core.Vector3{X: 13.88, Z: 20.75}}, // Hybrid class
	23:   {Length: 118.01, Width: 84.20, Height: 36.16, Offset: core.Vector3{X: 13.88, Z: 20.75}}, // Octane class
	24:   {Length: 127.93, Width: 83.28, Height: 31.30, Offset: core.Vector3{X: 9.00, Z: 15.75}},  // Dominus class
	25:   {Length: 128.82, Width: 84.67, Height: 29.39, Offset: core.Vector3{X: 9.01, Z: 12.09}},  // Plank class
	26:   {Length: 120.72, Width: 76.71, Height: 41.66, Offset: core.Vector3{X: 11.38, Z: 21.50}}, // Merc class
	403:  {Length: 127.93, Width: 83.28, Height: 31.30, Offset: core.Vector3{X: 9.00, Z: 15.75}},  // Dominus
	803:  {Length: 118.01, Width: 84.20, Height: 36.16, Offset: core.Vector3{X: 13.88, Z: 20.75}}, // Octane ZSR
	1018: {Length: 127.02, Width: 82.19, Height: 34.16, Offset: core.Vector3{X: 13.88, Z: 20.75}}, // Endo
	1623: {Length: 128.82, Width: 84.67, Height: 29.39, Offset: core.Vector3{X: 9.01, Z: 12.09}},  // Batmobile
}

// defaultShape is used for bodies without a measured entry. The Octane class
// is the game's baseline body and the closest fit for most unmapped cars.
var defaultShape = presets[23]

// ShapeFor returns the hitbox for a vehicle body item id, falling back to
// the default body class for unknown ids.
func ShapeFor(carItemID int) Shape {
	if b, ok := presets[carItemID]; ok {
		return b
	}
	return defaultShape
}

// Known reports whether an exact preset exists for the item id.
func Known(carItemID int) bool {
	_, ok := presets[carItemID]
	return ok
}
