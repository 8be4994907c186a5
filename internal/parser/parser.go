package parser

import "ctp/internal/domain"

// Parser extracts test invocation records from an encoded transcript
type Parser interface {
	Parse(transcript string) []domain.TestInvocationRecord
}

// Progress receives scan progress while parsing
type Progress interface {
	Update(linesScanned, recordsFound int)
	Finish()
}
