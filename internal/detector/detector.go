// Package detector resolves which vehicle struck the ball at each candidate
// frame and builds the resulting hit records.
//
// The detection pass is a synchronous batch computation over an immutable,
// fully loaded match: select candidate frames from ball kinematics, run the
// batch transform pipeline for diagnostics, then resolve the striker per
// frame with a direct scalar recomputation of the same rotation math. The
// scalar path is authoritative; the batch products are kept for profiling
// and diagnostics only.
package detector

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/kcolton/carball/internal/hitbox"
	"github.com/kcolton/carball/internal/kinematics"
	"github.com/kcolton/carball/pkg/core"
)

// IdentityFunc writes a player's external identity into a hit record. The
// detector never computes identities itself; storage of identities is an
// external concern.
type IdentityFunc func(hit *core.Hit, playerName string)

// Timing holds wall-clock durations of the pass phases, for the performance
// sinks.
type Timing struct {
	SelectionMs  float64
	PipelineMs   float64
	ResolutionMs float64
}

// Result is the outcome of one detection pass.
type Result struct {
	// Hits maps frame number to the hit detected at that frame. At most one
	// hit exists per frame.
	Hits map[uint]*core.Hit

	// Frames lists the hit frame numbers in increasing order.
	Frames []uint

	// CandidateFrames is the full candidate set the resolver worked from.
	CandidateFrames []uint

	// Displacements and BatchCollisionDistances are the diagnostic batch
	// products, keyed by player name and aligned with CandidateFrames.
	Displacements           map[string]*kinematics.PlayerDisplacements
	BatchCollisionDistances map[string][]float64

	Timing Timing
}

// Detector runs detection passes. Safe for reuse across matches; the shape
// cache is reset per pass.
type Detector struct {
	log        *slog.Logger
	thresholds Thresholds
	shapes     *hitbox.Cache
	identity   IdentityFunc
	metrics    *metrics
}

// Option configures a Detector.
type Option func(*Detector)

// WithThresholds overrides the default collision-distance limits.
func WithThresholds(t Thresholds) Option {
	return func(d *Detector) { d.thresholds = t }
}

// WithIdentityFunc sets the external identity mapping. The default copies
// the player name into the hit's PlayerID.
func WithIdentityFunc(f IdentityFunc) Option {
	return func(d *Detector) { d.identity = f }
}

// New creates a Detector.
func New(log *slog.Logger, opts ...Option) (*Detector, error) {
	m, err := newMetrics()
	if err != nil {
		return nil, err
	}
	d := &Detector{
		log:        log,
		thresholds: DefaultThresholds(),
		shapes:     hitbox.NewCache(),
		identity:   func(h *core.Hit, name string) { h.PlayerID = name },
		metrics:    m,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Detect runs the full pass over one match. It always completes: frames and
// players with missing or unrecognized data are skipped, never fatal.
func (d *Detector) Detect(ctx context.Context, match *core.Match) *Result {
	d.shapes.Reset()

	acceptance, known := d.thresholds.AcceptanceFor(match.BallShape)
	if !known {
		d.log.Warn("no acceptance distance calibrated for ball shape, using default-shape limit",
			"ballShape", match.BallShape, "limit", acceptance)
	}

	start := time.Now()
	candidates := kinematics.CandidateFrames(match.Ball)
	selectionMs := msSince(start)
	d.log.Info("candidate frame selection complete",
		"frames", len(candidates), "ms", selectionMs)
	d.metrics.candidateFrames.Add(ctx, int64(len(candidates)))
	d.metrics.recordPhase(ctx, "selection", selectionMs)

	pipelineStart := time.Now()
	displacements := kinematics.LocalDisplacements(match, candidates)
	batchDistances := d.batchCollisionDistances(displacements)
	pipelineMs := msSince(pipelineStart)
	d.log.Info("transform pipeline complete", "players", len(displacements), "ms", pipelineMs)
	d.metrics.recordPhase(ctx, "pipeline", pipelineMs)

	resolveStart := time.Now()
	res := &Result{
		Hits:                    make(map[uint]*core.Hit),
		CandidateFrames:         candidates,
		Displacements:           displacements,
		BatchCollisionDistances: batchDistances,
	}
	for _, frame := range candidates {
		hit, ok := d.resolveFrame(ctx, match, frame, acceptance)
		if !ok {
			continue
		}
		res.Hits[frame] = hit
		res.Frames = append(res.Frames, frame)
	}
	resolutionMs := msSince(resolveStart)
	d.log.Info("ball hit creation complete", "hits", len(res.Frames), "ms", resolutionMs)
	d.metrics.hitsDetected.Add(ctx, int64(len(res.Frames)))
	d.metrics.recordPhase(ctx, "resolution", resolutionMs)

	res.Timing = Timing{
		SelectionMs:  selectionMs,
		PipelineMs:   pipelineMs,
		ResolutionMs: resolutionMs,
	}
	return res
}

// batchCollisionDistances evaluates the shape oracle over the batch local
// displacements. NaN components propagate to a NaN distance.
func (d *Detector) batchCollisionDistances(displacements map[string]*kinematics.PlayerDisplacements) map[string][]float64 {
	out := make(map[string][]float64, len(displacements))
	for name, pd := range displacements {
		shape, ok := d.shapes.PlayerShape(pd.Player)
		if !ok {
			continue
		}
		dists := make([]float64, len(pd.Local))
		for i, local := range pd.Local {
			dists[i] = shape.CollisionDistance(local)
		}
		out[name] = dists
	}
	return out
}

// resolveFrame picks the striker for one candidate frame, or reports that
// the frame produced no hit.
func (d *Detector) resolveFrame(ctx context.Context, match *core.Match, frame uint, acceptance float64) (*core.Hit, bool) {
	bs, ok := match.BallSampleAt(frame)
	if !ok || bs.HitTeam == nil {
		d.metrics.framesSkipped.Add(ctx, 1)
		return nil, false
	}
	if *bs.HitTeam != 0 && *bs.HitTeam != 1 {
		d.log.Debug("unrecognized responsible team flag, skipping frame", "frame", frame, "hitTeam", *bs.HitTeam)
		d.metrics.framesSkipped.Add(ctx, 1)
		return nil, false
	}
	team, ok := match.TeamByOrange(*bs.HitTeam == 1)
	if !ok {
		d.log.Debug("unknown responsible team, skipping frame", "frame", frame, "hitTeam", *bs.HitTeam)
		d.metrics.framesSkipped.Add(ctx, 1)
		return nil, false
	}
	ballPos, ok := bs.Position()
	if !ok {
		d.log.Debug("ball position undefined, skipping frame", "frame", frame)
		d.metrics.framesSkipped.Add(ctx, 1)
		return nil, false
	}

	var closest *core.Player
	closestDistance := math.Inf(1)

	for _, player := range team.Players {
		distance, ok := d.playerCollisionDistance(ctx, player, frame, ballPos)
		if !ok {
			continue
		}
		// Strict less-than keeps the first-listed teammate on ties.
		if distance < closestDistance {
			closest = player
			closestDistance = distance
		}
	}

	if closest == nil || closestDistance >= acceptance {
		return nil, false
	}

	hit := &core.Hit{
		FrameNumber:       frame,
		PlayerName:        closest.Name,
		CollisionDistance: closestDistance,
		BallPosition:      ballPos,
	}
	if bs.GoalNumber != nil {
		goal := *bs.GoalNumber
		hit.GoalNumber = &goal
	}
	d.identity(hit, closest.Name)
	return hit, true
}

// playerCollisionDistance computes one player's instantaneous collision
// distance at a frame using the scalar path. ok is false when required data
// is missing: no sample at the frame, no loadout, or an entirely undefined
// rotation. Individually undefined components are dropped and the surviving
// values evaluated, mirroring the recording's partial-sample tolerance.
func (d *Detector) playerCollisionDistance(ctx context.Context, player *core.Player, frame uint, ballPos core.Vector3) (float64, bool) {
	shape, ok := d.shapes.PlayerShape(player)
	if !ok {
		d.log.Debug("player has no loadout, skipping", "player", player.Name, "frame", frame)
		d.metrics.playersSkipped.Add(ctx, 1)
		return 0, false
	}
	ps, ok := player.SampleAt(frame)
	if !ok {
		d.metrics.playersSkipped.Add(ctx, 1)
		return 0, false
	}
	if ps.RotX == nil && ps.RotY == nil && ps.RotZ == nil {
		d.metrics.playersSkipped.Add(ctx, 1)
		return 0, false
	}

	displacement, survivors := cleanDisplacement(ballPos, ps)
	if survivors == 0 {
		d.metrics.playersSkipped.Add(ctx, 1)
		return 0, false
	}

	rotation := cleanRotation(ps)
	local := kinematics.RotationMatrix(rotation).ApplyTranspose(displacement)
	return shape.CollisionDistance(local), true
}

// cleanDisplacement computes ball − player per component, dropping
// components whose player coordinate is undefined (they contribute nothing
// to the distance). survivors counts the defined components.
func cleanDisplacement(ballPos core.Vector3, ps core.PlayerSample) (core.Vector3, int) {
	var v core.Vector3
	survivors := 0
	if ps.PosX != nil {
		v.X = ballPos.X - *ps.PosX
		survivors++
	}
	if ps.PosY != nil {
		v.Y = ballPos.Y - *ps.PosY
		survivors++
	}
	if ps.PosZ != nil {
		v.Z = ballPos.Z - *ps.PosZ
		survivors++
	}
	return v, survivors
}

// cleanRotation reads the defined rotation components; a dropped component
// contributes the identity (zero angle) about its axis.
func cleanRotation(ps core.PlayerSample) core.Rotation {
	var r core.Rotation
	if ps.RotX != nil {
		r.Pitch = *ps.RotX
	}
	if ps.RotY != nil {
		r.Yaw = *ps.RotY
	}
	if ps.RotZ != nil {
		r.Roll = *ps.RotZ
	}
	return r
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t)) / float64(time.Millisecond)
}
