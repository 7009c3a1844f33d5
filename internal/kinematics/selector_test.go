package kinematics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kcolton/carball/pkg/core"
)

func fp(v float64) *float64 { return &v }

func ballSample(x, y, z float64) core.BallSample {
	return core.BallSample{AngVelX: fp(x), AngVelY: fp(y), AngVelZ: fp(z)}
}

func TestCandidateFrames_NoChange(t *testing.T) {
	ball := []core.BallSample{
		ballSample(1, 2, 3),
		ballSample(1, 2, 3),
		ballSample(1, 2, 3),
	}
	assert.Empty(t, CandidateFrames(ball))
}

func TestCandidateFrames_SingleComponentChange(t *testing.T) {
	ball := []core.BallSample{
		ballSample(1, 2, 3),
		ballSample(1, 2, 3),
		ballSample(1, 5, 3),
	}
	assert.Equal(t, []uint{2}, CandidateFrames(ball))
}

func TestCandidateFrames_FirstFrameNeverCandidate(t *testing.T) {
	ball := []core.BallSample{
		ballSample(9, 9, 9),
	}
	assert.Empty(t, CandidateFrames(ball))
}

func TestCandidateFrames_MultipleChanges(t *testing.T) {
	ball := []core.BallSample{
		ballSample(0, 0, 0),
		ballSample(0, 0, 1),
		ballSample(0, 0, 1),
		ballSample(2, 0, 1),
	}
	assert.Equal(t, []uint{1, 3}, CandidateFrames(ball))
}

func TestCandidateFrames_MissingComponents(t *testing.T) {
	tests := []struct {
		name string
		ball []core.BallSample
		want []uint
	}{
		{
			name: "undefined prior never counts as changed",
			ball: []core.BallSample{
				{AngVelY: fp(2), AngVelZ: fp(3)},
				ballSample(1, 2, 3),
			},
			want: nil,
		},
		{
			name: "undefined current never counts as changed",
			ball: []core.BallSample{
				ballSample(1, 2, 3),
				{AngVelX: fp(1), AngVelY: fp(2)},
			},
			want: nil,
		},
		{
			name: "defined components still compared",
			ball: []core.BallSample{
				{AngVelX: fp(1), AngVelY: fp(2)},
				{AngVelX: fp(1), AngVelY: fp(7)},
			},
			want: []uint{1},
		},
		{
			name: "entirely undefined frames excluded",
			ball: []core.BallSample{
				{},
				{},
				ballSample(1, 2, 3),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CandidateFrames(tt.ball))
		})
	}
}

func TestCandidateFrames_IncreasingOrderNoDuplicates(t *testing.T) {
	ball := []core.BallSample{
		ballSample(0, 0, 0),
		ballSample(1, 1, 1), // all three change, still one candidate
		ballSample(2, 2, 2),
	}
	assert.Equal(t, []uint{1, 2}, CandidateFrames(ball))
}
