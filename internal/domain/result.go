package domain

// ParseRunMeta contains metadata about a parse run
type ParseRunMeta struct {
	TotalLines      int     `json:"total_lines"`
	Records         int     `json:"records"`
	SkippedLines    int     `json:"skipped_lines"`
	Source          string  `json:"source"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// ParseRunOutput is the complete output structure for a parse run
type ParseRunOutput struct {
	Meta    ParseRunMeta           `json:"meta"`
	Records []TestInvocationRecord `json:"records"`
}
