// Package convert provides functions to convert core models to GORM models
package convert

import (
	"database/sql"
	"encoding/json"

	"github.com/kcolton/carball/internal/model"
	"github.com/kcolton/carball/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
)

// vectorToPoint converts a core.Vector3 to an XYZ geom.Point.
func vectorToPoint(v core.Vector3) geom.Point {
	pt, err := geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: v.X, Y: v.Y},
		Z:    v.Z,
		Type: geom.DimXYZ,
	})
	if err != nil {
		// validation only rejects non-finite coordinates
		return geom.Point{}
	}
	return pt
}

// PointToVector converts an XYZ geom.Point back to a core.Vector3.
func PointToVector(p geom.Point) core.Vector3 {
	coord, ok := p.Coordinates()
	if !ok {
		return core.Vector3{}
	}
	return core.Vector3{X: coord.XY.X, Y: coord.XY.Y, Z: coord.Z}
}

// MatchToReplay converts a loaded match to its Replay row.
func MatchToReplay(m *core.Match) model.Replay {
	return model.Replay{
		Name:       m.Name,
		BallShape:  m.BallShape,
		FrameCount: m.FrameCount(),
	}
}

// PlayerToModel converts a core.Player to its Player row. The loadout is
// stored as a JSON array of entries.
func PlayerToModel(replayID uint, p *core.Player) model.Player {
	loadout, err := json.Marshal(p.Loadout)
	if err != nil {
		loadout = []byte("[]")
	}
	return model.Player{
		ReplayID: replayID,
		Name:     p.Name,
		IsOrange: p.IsOrange,
		Loadout:  loadout,
	}
}

// HitToModel converts a detected hit to its HitEvent row.
func HitToModel(replayID uint, h *core.Hit) model.HitEvent {
	row := model.HitEvent{
		ReplayID:          replayID,
		FrameNumber:       h.FrameNumber,
		PlayerID:          h.PlayerID,
		PlayerName:        h.PlayerName,
		CollisionDistance: h.CollisionDistance,
		BallPosition:      vectorToPoint(h.BallPosition),
	}
	if h.GoalNumber != nil {
		row.GoalNumber = sql.NullInt32{Int32: int32(*h.GoalNumber), Valid: true}
	}
	return row
}
