package parser

import (
	"strings"

	"ctp/internal/domain"
)

// Markers identifying the three consecutive lines of one CTest invocation
const (
	commandMarker   = ": Test command: "
	directoryMarker = ": Working Directory:"
	testNameMarker  = "Test"
)

// Delimiters of the serialized record form
const (
	FieldDelimiter  = ","
	RecordDelimiter = ";"
)

// CTestParser parses CTest verbose output where logical lines are joined
// by a sentinel token instead of real line breaks
type CTestParser struct {
	sentinel string
	progress Progress
}

// NewCTestParser creates a new CTestParser splitting on the given sentinel token
func NewCTestParser(sentinel string) *CTestParser {
	return &CTestParser{sentinel: sentinel}
}

// SetProgress sets an optional progress sink updated while scanning
func (p *CTestParser) SetProgress(progress Progress) {
	p.progress = progress
}

// Parse scans the transcript for command/directory/test-name line groups.
// Lines are consumed strictly in groups of three per record: a group whose
// second or third line lacks its marker is dropped without rolling the
// cursor back, so a malformed middle line shifts group alignment for the
// rest of the input. Malformed segments are skipped silently; Parse never
// fails.
func (p *CTestParser) Parse(transcript string) []domain.TestInvocationRecord {
	var records []domain.TestInvocationRecord
	lines := strings.Split(transcript, p.sentinel)
	index := 0

	for index < len(lines) {
		line := lines[index]
		index++

		if p.progress != nil {
			p.progress.Update(index, len(records))
		}

		pos := strings.Index(line, commandMarker)
		if pos < 0 {
			continue
		}
		command := line[pos+len(commandMarker):]
		cmdFields := strings.Fields(command)
		if len(cmdFields) == 0 {
			continue
		}
		executable := cmdFields[len(cmdFields)-1]

		// Command marker on one of the last two lines: the group cannot
		// complete, abandon it.
		if index >= len(lines) {
			break
		}
		line = lines[index]
		index++

		pos = strings.Index(line, directoryMarker)
		if pos < 0 {
			continue
		}
		directory := line[pos+len(directoryMarker):]

		if index >= len(lines) {
			break
		}
		line = lines[index]
		index++

		if !strings.Contains(line, testNameMarker) {
			continue
		}
		nameFields := strings.Fields(line)

		records = append(records, domain.TestInvocationRecord{
			Command:          command,
			Executable:       executable,
			WorkingDirectory: directory,
			TestName:         nameFields[len(nameFields)-1],
		})
	}

	if p.progress != nil {
		p.progress.Update(len(lines), len(records))
		p.progress.Finish()
	}

	return records
}

// Serialize renders records as semicolon-separated entries of four
// comma-separated fields: command, executable, working directory, test name.
// Returns the empty string when no records were parsed.
func Serialize(records []domain.TestInvocationRecord) string {
	entries := make([]string, 0, len(records))
	for _, r := range records {
		fields := []string{r.Command, r.Executable, r.WorkingDirectory, r.TestName}
		entries = append(entries, strings.Join(fields, FieldDelimiter))
	}
	return strings.Join(entries, RecordDelimiter)
}
