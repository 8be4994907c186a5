package config

import (
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.Sentinel != DefaultSentinel {
		t.Errorf("expected Sentinel %s, got %s", DefaultSentinel, cfg.Sentinel)
	}
	if cfg.OutputJSONFile != DefaultOutputJSONFile {
		t.Errorf("expected OutputJSONFile %s, got %s", DefaultOutputJSONFile, cfg.OutputJSONFile)
	}
	if cfg.OutputJSONDir != DefaultOutputJSONDir {
		t.Errorf("expected OutputJSONDir %s, got %s", DefaultOutputJSONDir, cfg.OutputJSONDir)
	}
}

func TestConfig_GetSentinel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default sentinel",
			config:   New(),
			expected: "_NEWLINE_",
		},
		{
			name: "flag override",
			config: &Config{
				Sentinel: DefaultSentinel,
				Flags:    Flags{Sentinel: "|"},
			},
			expected: "|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.config.GetSentinel(); result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = "/project"

	path := cfg.GetOutputPath()
	expected := filepath.Join("/project", DefaultOutputJSONDir, DefaultOutputJSONFile)
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %s", path)
	}
}

func TestConfig_LoadEnv(t *testing.T) {
	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CTP_SENTINEL", "@@")
		t.Setenv("CTP_OUTPUT_DIR", "out")
		t.Setenv("CTP_OUTPUT_FILE", "runs.json")

		cfg := New()
		cfg.ProjectPath = t.TempDir() // no .env file there
		cfg.LoadEnv()

		if cfg.Sentinel != "@@" {
			t.Errorf("expected sentinel %q, got %q", "@@", cfg.Sentinel)
		}
		if cfg.OutputJSONDir != "out" {
			t.Errorf("expected output dir %q, got %q", "out", cfg.OutputJSONDir)
		}
		if cfg.OutputJSONFile != "runs.json" {
			t.Errorf("expected output file %q, got %q", "runs.json", cfg.OutputJSONFile)
		}
	})

	t.Run("missing .env keeps defaults", func(t *testing.T) {
		cfg := New()
		cfg.ProjectPath = t.TempDir()
		cfg.LoadEnv()

		if cfg.Sentinel != DefaultSentinel {
			t.Errorf("expected default sentinel, got %q", cfg.Sentinel)
		}
	})
}
