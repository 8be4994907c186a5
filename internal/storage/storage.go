package storage

import (
	"time"

	"ctp/internal/config"
	"ctp/internal/domain"
)

// Storage persists and loads parse runs (e.g. for the view command).
type Storage interface {
	Save(records []domain.TestInvocationRecord, totalLines int, source string, duration time.Duration) error
	Load() (*domain.ParseRunOutput, error)
}

// JSONStorage stores parse runs in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
