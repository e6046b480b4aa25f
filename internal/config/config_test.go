package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "missing file uses defaults",
			want: "simple",
		},
		{
			name:    "explicit theme",
			content: "[blog]\ntheme = \"dark\"\n",
			want:    "dark",
		},
		{
			name:    "empty blog table falls back to default theme",
			content: "[blog]\n",
			want:    "simple",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.content != "" {
				if err := os.WriteFile(Path(root), []byte(tt.content), 0644); err != nil {
					t.Fatalf("Failed to write config: %v", err)
				}
			}

			cfg, err := Load(root)
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if cfg.Blog.Theme != tt.want {
				t.Errorf("Blog.Theme = %v, want %v", cfg.Blog.Theme, tt.want)
			}
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(Path(root), []byte("[blog\ntheme = simple"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(root); err == nil {
		t.Error("Expected error but got none")
	}
}

func TestWriteThenLoad(t *testing.T) {
	root := t.TempDir()

	if err := Write(root, Default()); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	data, err := os.ReadFile(Path(root))
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if !strings.Contains(string(data), "[blog]") {
		t.Errorf("config.toml = %q, want a [blog] table", data)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Blog.Theme != "simple" {
		t.Errorf("Blog.Theme = %v, want %v", cfg.Blog.Theme, "simple")
	}
}
