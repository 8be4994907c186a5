package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultSentinel is the token standing in for line breaks in encoded transcripts
	DefaultSentinel = "_NEWLINE_"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "parse-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
)
