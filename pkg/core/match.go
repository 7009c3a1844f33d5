// pkg/core/match.go
package core

// Match is a fully loaded, immutable recording of one game: the ball
// trajectory plus every player's trajectory, indexed by capture frame.
// Trajectory slices are indexed by frame number; a frame may be missing
// data for an entity, which is represented by nil sample components and
// never by zero values.
type Match struct {
	Name      string
	BallShape string // ball body variant; "" means the default shape
	Ball      []BallSample
	Players   []*Player
	Teams     []*Team
}

// BallSample is the ball's recorded state at one frame. All components are
// optional: a nil pointer means the recording carries no value at this frame.
type BallSample struct {
	PosX *float64 `json:"posX,omitempty"`
	PosY *float64 `json:"posY,omitempty"`
	PosZ *float64 `json:"posZ,omitempty"`

	AngVelX *float64 `json:"angVelX,omitempty"`
	AngVelY *float64 `json:"angVelY,omitempty"`
	AngVelZ *float64 `json:"angVelZ,omitempty"`

	// HitTeam is the team recorded as responsible for a ball event at this
	// frame: 0 = blue, 1 = orange, nil = no team recorded.
	HitTeam *int `json:"hitTeam,omitempty"`

	// GoalNumber is the enclosing goal segment, when the recording marks one.
	GoalNumber *int `json:"goalNumber,omitempty"`
}

// Position returns the ball's world position if all three components are
// defined at this sample.
func (s BallSample) Position() (Vector3, bool) {
	if s.PosX == nil || s.PosY == nil || s.PosZ == nil {
		return Vector3{}, false
	}
	return Vector3{X: *s.PosX, Y: *s.PosY, Z: *s.PosZ}, true
}

// PlayerSample is one player's recorded state at one frame, with the same
// optional-component semantics as BallSample.
type PlayerSample struct {
	PosX *float64 `json:"posX,omitempty"`
	PosY *float64 `json:"posY,omitempty"`
	PosZ *float64 `json:"posZ,omitempty"`

	RotX *float64 `json:"rotX,omitempty"` // pitch, radians
	RotY *float64 `json:"rotY,omitempty"` // yaw, radians
	RotZ *float64 `json:"rotZ,omitempty"` // roll, radians
}

// Empty reports whether the sample carries no data at all.
func (s PlayerSample) Empty() bool {
	return s.PosX == nil && s.PosY == nil && s.PosZ == nil &&
		s.RotX == nil && s.RotY == nil && s.RotZ == nil
}

// LoadoutEntry is one vehicle selection in a player's loadout. A loadout has
// one entry, or two entries keyed by team side (index 0 = blue, 1 = orange).
type LoadoutEntry struct {
	CarItemID int `json:"car"`
}

// Player is one participant with its trajectory.
type Player struct {
	Name     string
	IsOrange bool
	Loadout  []LoadoutEntry
	Frames   []PlayerSample
}

// SampleAt returns the player's sample at the given frame. ok is false when
// the frame is outside the recorded range or the sample is entirely empty.
func (p *Player) SampleAt(frame uint) (PlayerSample, bool) {
	if frame >= uint(len(p.Frames)) {
		return PlayerSample{}, false
	}
	s := p.Frames[frame]
	if s.Empty() {
		return PlayerSample{}, false
	}
	return s, true
}

// Team groups the players of one side. Player order is the order of first
// appearance in the recording and is significant: striker ties resolve to
// the first-listed teammate.
type Team struct {
	IsOrange bool
	Players  []*Player
}

// BallSampleAt returns the ball sample at the given frame.
func (m *Match) BallSampleAt(frame uint) (BallSample, bool) {
	if frame >= uint(len(m.Ball)) {
		return BallSample{}, false
	}
	return m.Ball[frame], true
}

// TeamByOrange returns the team with the given side flag.
func (m *Match) TeamByOrange(isOrange bool) (*Team, bool) {
	for _, t := range m.Teams {
		if t.IsOrange == isOrange {
			return t, true
		}
	}
	return nil, false
}

// FrameCount returns the number of recorded ball frames.
func (m *Match) FrameCount() uint {
	return uint(len(m.Ball))
}
