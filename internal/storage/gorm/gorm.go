// Package gormstorage implements the storage.Backend interface on a GORM
// database (Postgres, or the SQLite fallback). Hit rows are buffered in a
// queue and written in batches.
package gormstorage

import (
	"fmt"
	"sync"

	"github.com/kcolton/carball/internal/database"
	"github.com/kcolton/carball/internal/model"
	"github.com/kcolton/carball/internal/model/convert"
	"github.com/kcolton/carball/internal/queue"
	"github.com/kcolton/carball/pkg/core"
)

// flushBatchSize is the number of buffered hit rows that triggers a write.
const flushBatchSize = 256

// Dependencies holds all dependencies for the GORM backend.
type Dependencies struct {
	Manager *database.Manager
}

// Backend persists hit logs relationally.
type Backend struct {
	deps Dependencies

	mu       sync.Mutex
	replayID uint
	hitQueue *queue.Queue[model.HitEvent]
}

// New creates a new GORM storage backend.
func New(deps Dependencies) *Backend {
	return &Backend{
		deps:     deps,
		hitQueue: queue.New[model.HitEvent](),
	}
}

// Init migrates the schema.
func (b *Backend) Init() error {
	if b.deps.Manager == nil || !b.deps.Manager.IsValid {
		return fmt.Errorf("no valid database connection")
	}
	return b.deps.Manager.Migrate()
}

// Close flushes any buffered rows and closes the connection.
func (b *Backend) Close() error {
	if err := b.flush(); err != nil {
		return err
	}
	return b.deps.Manager.Close()
}

// StartReplay creates the replay and player rows.
func (b *Backend) StartReplay(match *core.Match) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	replay := convert.MatchToReplay(match)
	if err := b.deps.Manager.DB.Create(&replay).Error; err != nil {
		return fmt.Errorf("creating replay row: %w", err)
	}
	b.replayID = replay.ID

	for _, p := range match.Players {
		row := convert.PlayerToModel(replay.ID, p)
		if err := b.deps.Manager.DB.Create(&row).Error; err != nil {
			return fmt.Errorf("creating player row %q: %w", p.Name, err)
		}
	}
	return nil
}

// RecordHit buffers one hit row, flushing when the batch is full.
func (b *Backend) RecordHit(h *core.Hit) error {
	b.mu.Lock()
	replayID := b.replayID
	b.mu.Unlock()
	if replayID == 0 {
		return fmt.Errorf("no replay started")
	}

	b.hitQueue.Push(convert.HitToModel(replayID, h))
	if b.hitQueue.Len() >= flushBatchSize {
		return b.flush()
	}
	return nil
}

// EndReplay flushes the remaining buffered rows.
func (b *Backend) EndReplay() error {
	if err := b.flush(); err != nil {
		return err
	}
	b.mu.Lock()
	b.replayID = 0
	b.mu.Unlock()
	return nil
}

func (b *Backend) flush() error {
	rows := b.hitQueue.Drain()
	if len(rows) == 0 {
		return nil
	}
	if err := b.deps.Manager.DB.Create(&rows).Error; err != nil {
		return fmt.Errorf("writing %d hit rows: %w", len(rows), err)
	}
	return nil
}
