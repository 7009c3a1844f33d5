// internal/kinematics/pipeline.go
package kinematics

import (
	"math"
	"sync"

	"github.com/kcolton/carball/pkg/core"
)

// PlayerDisplacements holds the batch products of the transform pipeline for
// one player. All slices are aligned with Frames. Components that could not
// be evaluated because of missing samples are NaN; the batch output is a
// diagnostic signal and never drives the striker decision.
type PlayerDisplacements struct {
	Player *core.Player

	Frames []uint

	// World is the world-frame displacement player − ball per frame.
	World []core.Vector3

	// WorldDistance is the Euclidean norm of World, kept for diagnostics
	// and tie reporting.
	WorldDistance []float64

	// Local is World re-expressed in the player's local frame.
	Local []core.Vector3
}

// LocalDisplacements runs the transform pipeline for every player over the
// given candidate frames. Players are independent, so the per-player batches
// run concurrently; results are keyed by player name.
func LocalDisplacements(match *core.Match, frames []uint) map[string]*PlayerDisplacements {
	out := make(map[string]*PlayerDisplacements, len(match.Players))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, player := range match.Players {
		wg.Add(1)
		go func(p *core.Player) {
			defer wg.Done()
			d := playerDisplacements(match, p, frames)
			mu.Lock()
			out[p.Name] = d
			mu.Unlock()
		}(player)
	}
	wg.Wait()
	return out
}

func playerDisplacements(match *core.Match, p *core.Player, frames []uint) *PlayerDisplacements {
	d := &PlayerDisplacements{
		Player:        p,
		Frames:        frames,
		World:         make([]core.Vector3, len(frames)),
		WorldDistance: make([]float64, len(frames)),
		Local:         make([]core.Vector3, len(frames)),
	}

	nan := math.NaN()
	for i, frame := range frames {
		world := core.Vector3{X: nan, Y: nan, Z: nan}
		local := core.Vector3{X: nan, Y: nan, Z: nan}
		dist := nan

		ps, okPlayer := p.SampleAt(frame)
		bs, okBall := match.BallSampleAt(frame)
		if okPlayer && okBall {
			world = core.Vector3{
				X: diffComponent(ps.PosX, bs.PosX),
				Y: diffComponent(ps.PosY, bs.PosY),
				Z: diffComponent(ps.PosZ, bs.PosZ),
			}
			dist = world.Norm()
			if ps.RotX != nil && ps.RotY != nil && ps.RotZ != nil {
				m := RotationMatrix(core.Rotation{Pitch: *ps.RotX, Yaw: *ps.RotY, Roll: *ps.RotZ})
				local = m.ApplyTranspose(world)
			}
		}

		d.World[i] = world
		d.WorldDistance[i] = dist
		d.Local[i] = local
	}
	return d
}

func diffComponent(a, b *float64) float64 {
	if a == nil || b == nil {
		return math.NaN()
	}
	return *a - *b
}
