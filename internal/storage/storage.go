// internal/storage/storage.go
package storage

import "github.com/kcolton/carball/pkg/core"

// Backend is the interface all hit-log storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Replay management
	StartReplay(match *core.Match) error
	EndReplay() error

	// Event recording
	RecordHit(h *core.Hit) error
}

// Exportable is an optional interface for backends that produce an output
// file for the downstream statistics pipeline.
type Exportable interface {
	GetExportedFilePath() string
}
