package ui

import "ctp/internal/domain"

// Viewer displays parse results in an interactive TUI
type Viewer interface {
	View(results *domain.ParseRunOutput) error
}
