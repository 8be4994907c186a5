package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ctp/internal/domain"
)

// Save writes a parse run to the configured JSON output file.
func (s *JSONStorage) Save(records []domain.TestInvocationRecord, totalLines int, source string, duration time.Duration) error {
	// Every record consumes exactly three lines; the rest were skipped.
	skipped := totalLines - 3*len(records)
	if skipped < 0 {
		skipped = 0
	}

	output := domain.ParseRunOutput{
		Meta: domain.ParseRunMeta{
			TotalLines:      totalLines,
			Records:         len(records),
			SkippedLines:    skipped,
			Source:          source,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Records: records,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal parse run: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write parse run: %w", err)
	}
	return nil
}

// Load reads the last parse run from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.ParseRunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parse run file: %w", err)
	}
	var output domain.ParseRunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse run file: %w", err)
	}
	return &output, nil
}
