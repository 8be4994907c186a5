package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"ctp/internal/config"
	"ctp/internal/storage"
	"ctp/internal/ui"

	"github.com/spf13/cobra"
)

func TestParseCommand_Execute(t *testing.T) {
	transcript := `: Test command: /usr/bin/foo --x
: Working Directory: /tmp
Test #1: mytest
`

	newParse := func(cfg *config.Config) *ParseCommand {
		return NewParseCommand(cfg, storage.NewJSONStorage(cfg), ui.NewFormatter(cfg))
	}

	t.Run("quiet prints serialized records from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		file := filepath.Join(tmpDir, "transcript.log")
		if err := os.WriteFile(file, []byte(transcript), 0644); err != nil {
			t.Fatalf("failed to write transcript: %v", err)
		}

		cfg := config.New()
		cfg.ProjectPath = tmpDir
		cfg.Flags = config.Flags{File: file, Quiet: true}

		cmd := &cobra.Command{}
		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := newParse(cfg).Execute(cmd, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := "/usr/bin/foo --x,--x, /tmp,mytest\n"
		if out.String() != expected {
			t.Errorf("expected output %q, got %q", expected, out.String())
		}
	})

	t.Run("quiet reads stdin when no file flag", func(t *testing.T) {
		cfg := config.New()
		cfg.ProjectPath = t.TempDir()
		cfg.Flags = config.Flags{Quiet: true}

		cmd := &cobra.Command{}
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetIn(bytes.NewBufferString(transcript))

		if err := newParse(cfg).Execute(cmd, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := "/usr/bin/foo --x,--x, /tmp,mytest\n"
		if out.String() != expected {
			t.Errorf("expected output %q, got %q", expected, out.String())
		}
	})

	t.Run("quiet run does not persist results", func(t *testing.T) {
		cfg := config.New()
		cfg.ProjectPath = t.TempDir()
		cfg.Flags = config.Flags{Quiet: true}

		cmd := &cobra.Command{}
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetIn(bytes.NewBufferString(transcript))

		if err := newParse(cfg).Execute(cmd, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := storage.NewJSONStorage(cfg).Load(); err == nil {
			t.Error("expected no saved parse run in quiet mode")
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		cfg := config.New()
		cfg.ProjectPath = t.TempDir()
		cfg.Flags = config.Flags{File: filepath.Join(cfg.ProjectPath, "nope.log"), Quiet: true}

		cmd := &cobra.Command{}
		cmd.SetOut(&bytes.Buffer{})

		if err := newParse(cfg).Execute(cmd, nil); err == nil {
			t.Error("expected error for missing transcript file")
		}
	})
}
