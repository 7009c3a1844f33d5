// internal/kinematics/selector.go
package kinematics

import "github.com/kcolton/carball/pkg/core"

// CandidateFrames scans the ball's angular-velocity series and returns, in
// increasing order, every frame where at least one component changed from
// the previous frame. An abrupt angular-velocity change is the cheapest
// purely kinematic signal that something perturbed the ball; later stages
// filter the false positives.
//
// A component whose prior or current value is undefined never counts as
// changed, and the first frame has no predecessor, so neither can be a
// candidate.
func CandidateFrames(ball []core.BallSample) []uint {
	var frames []uint
	for i := 1; i < len(ball); i++ {
		if angVelChanged(ball[i-1], ball[i]) {
			frames = append(frames, uint(i))
		}
	}
	return frames
}

func angVelChanged(prev, cur core.BallSample) bool {
	return componentChanged(prev.AngVelX, cur.AngVelX) ||
		componentChanged(prev.AngVelY, cur.AngVelY) ||
		componentChanged(prev.AngVelZ, cur.AngVelZ)
}

func componentChanged(prev, cur *float64) bool {
	if prev == nil || cur == nil {
		return false
	}
	return *prev != *cur
}
