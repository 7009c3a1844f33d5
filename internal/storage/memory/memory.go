// internal/storage/memory/memory.go
package memory

import (
	"fmt"
	"sync"

	"github.com/kcolton/carball/internal/config"
	"github.com/kcolton/carball/pkg/core"
)

// Backend stores hit logs in memory and exports to JSON
type Backend struct {
	cfg   config.MemoryConfig
	match *core.Match

	hits   map[uint]*core.Hit
	frames []uint // hit frame numbers in creation (increasing) order

	exportedPath string
	mu           sync.RWMutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{
		cfg:  cfg,
		hits: make(map[uint]*core.Hit),
	}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// StartReplay begins accumulating hits for a new replay
func (b *Backend) StartReplay(match *core.Match) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.match = match
	b.hits = make(map[uint]*core.Hit)
	b.frames = nil
	b.exportedPath = ""
	return nil
}

// RecordHit stores one hit. At most one hit may exist per frame.
func (b *Backend) RecordHit(h *core.Hit) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.match == nil {
		return fmt.Errorf("no replay started")
	}
	if _, exists := b.hits[h.FrameNumber]; exists {
		return fmt.Errorf("duplicate hit for frame %d", h.FrameNumber)
	}
	b.hits[h.FrameNumber] = h
	b.frames = append(b.frames, h.FrameNumber)
	return nil
}

// EndReplay writes the accumulated hit log to the output directory
func (b *Backend) EndReplay() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.match == nil {
		return fmt.Errorf("no replay started")
	}
	path, err := b.exportJSON()
	if err != nil {
		return err
	}
	b.exportedPath = path
	b.match = nil
	return nil
}

// GetExportedFilePath returns the path of the last exported hit log
func (b *Backend) GetExportedFilePath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.exportedPath
}

// Hits returns the recorded hits keyed by frame number (for tests and
// in-process consumers).
func (b *Backend) Hits() map[uint]*core.Hit {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[uint]*core.Hit, len(b.hits))
	for k, v := range b.hits {
		out[k] = v
	}
	return out
}
