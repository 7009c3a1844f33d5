// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kcolton/carball/internal/config"
	"github.com/kcolton/carball/internal/database"
	gormstorage "github.com/kcolton/carball/internal/storage/gorm"
	"github.com/kcolton/carball/internal/storage/memory"
)

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "postgres", "sqlite":
		dbm := database.NewManager(log)
		if err := dbm.Connect(); err != nil {
			return nil, fmt.Errorf("connecting hit-log database: %w", err)
		}
		return gormstorage.New(gormstorage.Dependencies{Manager: dbm}), nil
	case "memory":
		return memory.New(cfg.Memory), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
