package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Transcript encoding
	Sentinel string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	File     string
	Sentinel string
	Quiet    bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		Sentinel:       DefaultSentinel,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
}

// LoadEnv applies overrides from a .env file in the project directory and
// from the process environment. A missing .env file is not an error.
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if v := os.Getenv("CTP_SENTINEL"); v != "" {
		c.Sentinel = v
	}
	if v := os.Getenv("CTP_OUTPUT_DIR"); v != "" {
		c.OutputJSONDir = v
	}
	if v := os.Getenv("CTP_OUTPUT_FILE"); v != "" {
		c.OutputJSONFile = v
	}
}

// GetSentinel returns the sentinel token, using the flag if provided
func (c *Config) GetSentinel() string {
	if c.Flags.Sentinel != "" {
		return c.Flags.Sentinel
	}
	return c.Sentinel
}

// GetOutputPath returns the full path to the output JSON file (under the
// project so parse and view use the same file). Resolves to an absolute
// path so both commands read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
