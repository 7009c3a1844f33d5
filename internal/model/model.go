// Package model defines the database schema for persisted hit logs.
package model

import (
	"database/sql"

	geom "github.com/peterstace/simplefeatures/geom"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&Replay{},
	&Player{},
	&HitEvent{},
}

// Replay is the main model for one analyzed match recording
type Replay struct {
	gorm.Model
	Name       string `json:"name" gorm:"size:200"`
	BallShape  string `json:"ballShape" gorm:"size:64"`
	FrameCount uint   `json:"frameCount"`

	Players   []Player
	HitEvents []HitEvent
}

func (*Replay) TableName() string {
	return "replays"
}

// Player is one participant of an analyzed replay
type Player struct {
	gorm.Model
	ReplayID uint   `json:"replayId" gorm:"index:idx_player_replay_id"`
	Replay   Replay `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ReplayID;"`

	Name     string         `json:"name" gorm:"size:64"`
	IsOrange bool           `json:"isOrange"`
	Loadout  datatypes.JSON `json:"loadout" gorm:"type:jsonb;default:'[]'"` // loadout entries as JSON array
}

func (*Player) TableName() string {
	return "players"
}

// HitEvent is one detected ball contact
type HitEvent struct {
	ID       uint   `json:"id" gorm:"primarykey;autoIncrement;"`
	ReplayID uint   `json:"replayId" gorm:"index:idx_hitevent_replay_id"`
	Replay   Replay `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ReplayID;"`

	FrameNumber uint          `json:"frameNumber" gorm:"index:idx_hitevent_frame_number"` // Frame number of the contact
	GoalNumber  sql.NullInt32 `json:"goalNumber" gorm:"default:NULL"`                     // Enclosing goal segment, when marked
	PlayerID    string        `json:"playerId" gorm:"size:64"`                            // Externally assigned striker identity
	PlayerName  string        `json:"playerName" gorm:"size:64"`                          // Striker in-match name

	CollisionDistance float64    `json:"collisionDistance"`
	BallPosition      geom.Point `json:"ballPosition"` // Ball world position at the hit frame
}

func (*HitEvent) TableName() string {
	return "hit_events"
}
