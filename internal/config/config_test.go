package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/artifact"
)

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultFormat != "" {
		t.Errorf("DefaultFormat = %v, want empty", cfg.DefaultFormat)
	}
	if cfg.IncludeAssumptions {
		t.Error("IncludeAssumptions = true, want false")
	}
}

func TestSaveAndLoad(t *testing.T) {
	root := t.TempDir()

	cfg := &Config{
		DefaultFormat:      artifact.FormatSummarySpec,
		IncludeAssumptions: true,
	}
	if err := Save(root, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, ".config", "design-prompts", "config.yaml")); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}

	loaded, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultFormat != artifact.FormatSummarySpec {
		t.Errorf("DefaultFormat = %v, want %v", loaded.DefaultFormat, artifact.FormatSummarySpec)
	}
	if !loaded.IncludeAssumptions {
		t.Error("IncludeAssumptions = false, want true")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown format", "default_format: poster\n", "invalid format"},
		{"malformed yaml", "default_format: [\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			path := Path(root)
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(root)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	root := t.TempDir()
	if err := Save(root, &Config{DefaultFormat: "poster"}); err == nil {
		t.Error("Save() error = nil, want error")
	}
	if _, err := os.Stat(Path(root)); !os.IsNotExist(err) {
		t.Error("invalid config was written")
	}
}
