package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcolton/carball/pkg/core"
)

func positionedBall(x, y, z float64) core.BallSample {
	return core.BallSample{PosX: fp(x), PosY: fp(y), PosZ: fp(z)}
}

func positionedPlayer(name string, samples ...core.PlayerSample) *core.Player {
	return &core.Player{Name: name, Frames: samples}
}

func TestLocalDisplacements_WorldDisplacementAndDistance(t *testing.T) {
	match := &core.Match{
		Ball: []core.BallSample{
			positionedBall(0, 0, 0),
			positionedBall(10, 0, 0),
		},
		Players: []*core.Player{
			positionedPlayer("alice",
				core.PlayerSample{PosX: fp(0), PosY: fp(0), PosZ: fp(0), RotX: fp(0), RotY: fp(0), RotZ: fp(0)},
				core.PlayerSample{PosX: fp(13), PosY: fp(4), PosZ: fp(0), RotX: fp(0), RotY: fp(0), RotZ: fp(0)},
			),
		},
	}

	out := LocalDisplacements(match, []uint{1})
	require.Contains(t, out, "alice")
	d := out["alice"]
	require.Len(t, d.World, 1)

	// player − ball
	assert.Equal(t, core.Vector3{X: 3, Y: 4, Z: 0}, d.World[0])
	assert.InDelta(t, 5, d.WorldDistance[0], 1e-12)
	// identity rotation: local equals world
	assert.Equal(t, d.World[0], d.Local[0])
}

func TestLocalDisplacements_RotatedIntoLocalFrame(t *testing.T) {
	yaw := math.Pi / 2
	match := &core.Match{
		Ball: []core.BallSample{
			positionedBall(0, 10, 0),
		},
		Players: []*core.Player{
			positionedPlayer("bob",
				core.PlayerSample{PosX: fp(0), PosY: fp(0), PosZ: fp(0), RotX: fp(0), RotY: fp(yaw), RotZ: fp(0)},
			),
		},
	}

	out := LocalDisplacements(match, []uint{0})
	d := out["bob"]
	require.Len(t, d.Local, 1)

	// World displacement (player − ball) is (0,−10,0); a quarter yaw turn
	// means world Y is the player's local forward, so local is (−10,0,0).
	assert.InDelta(t, -10, d.Local[0].X, 1e-9)
	assert.InDelta(t, 0, d.Local[0].Y, 1e-9)
	assert.InDelta(t, 0, d.Local[0].Z, 1e-9)
}

func TestLocalDisplacements_MissingSamplesAreNaN(t *testing.T) {
	match := &core.Match{
		Ball: []core.BallSample{
			positionedBall(0, 0, 0),
			positionedBall(1, 1, 1),
		},
		Players: []*core.Player{
			positionedPlayer("carol",
				core.PlayerSample{PosX: fp(5), PosY: fp(5), PosZ: fp(5), RotX: fp(0), RotY: fp(0), RotZ: fp(0)},
				// frame 1 entirely missing
				core.PlayerSample{},
			),
		},
	}

	out := LocalDisplacements(match, []uint{0, 1})
	d := out["carol"]
	require.Len(t, d.World, 2)

	assert.False(t, math.IsNaN(d.WorldDistance[0]))
	assert.True(t, math.IsNaN(d.WorldDistance[1]))
	assert.True(t, math.IsNaN(d.World[1].X))
	assert.True(t, math.IsNaN(d.Local[1].X))
}

func TestLocalDisplacements_PartialRotationLeavesLocalNaN(t *testing.T) {
	match := &core.Match{
		Ball: []core.BallSample{
			positionedBall(0, 0, 0),
		},
		Players: []*core.Player{
			positionedPlayer("dave",
				core.PlayerSample{PosX: fp(1), PosY: fp(2), PosZ: fp(3), RotX: fp(0)},
			),
		},
	}

	out := LocalDisplacements(match, []uint{0})
	d := out["dave"]

	// World displacement still evaluated from positions.
	assert.Equal(t, core.Vector3{X: 1, Y: 2, Z: 3}, d.World[0])
	// Incomplete rotation cannot orient the local frame in the batch path.
	assert.True(t, math.IsNaN(d.Local[0].X))
}

func TestLocalDisplacements_AllPlayersKeyed(t *testing.T) {
	match := &core.Match{
		Ball: []core.BallSample{positionedBall(0, 0, 0)},
		Players: []*core.Player{
			positionedPlayer("p1", core.PlayerSample{PosX: fp(1), PosY: fp(0), PosZ: fp(0), RotX: fp(0), RotY: fp(0), RotZ: fp(0)}),
			positionedPlayer("p2", core.PlayerSample{PosX: fp(2), PosY: fp(0), PosZ: fp(0), RotX: fp(0), RotY: fp(0), RotZ: fp(0)}),
			positionedPlayer("p3", core.PlayerSample{PosX: fp(3), PosY: fp(0), PosZ: fp(0), RotX: fp(0), RotY: fp(0), RotZ: fp(0)}),
		},
	}

	out := LocalDisplacements(match, []uint{0})
	assert.Len(t, out, 3)
	for _, name := range []string{"p1", "p2", "p3"} {
		require.Contains(t, out, name)
		assert.Equal(t, []uint{0}, out[name].Frames)
	}
}
