// pkg/core/hit.go
package core

// Hit is one detected ball contact. Hits are created once per qualifying
// candidate frame and never mutated afterwards.
type Hit struct {
	FrameNumber uint `json:"frameNumber"`

	// GoalNumber is set only when the recording marks a goal segment at the
	// hit frame.
	GoalNumber *int `json:"goalNumber,omitempty"`

	// PlayerID is assigned by the external identity-mapping function; the
	// detector itself never computes identities.
	PlayerID string `json:"playerId"`

	// PlayerName is the striker's in-match name, kept for diagnostics.
	PlayerName string `json:"playerName"`

	CollisionDistance float64 `json:"collisionDistance"`

	// BallPosition is the ball's world position at the hit frame.
	BallPosition Vector3 `json:"ballPosition"`
}
