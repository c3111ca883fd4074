package descriptor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sopack/sopack/internal/models"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "package.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write descriptor: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeDescriptor(t, `
name: libfoo
version: 1.2.3
license: MIT
url: https://example.com/libfoo
install_requires:
  - libbar>=2.0
install_dev_requires:
  - libbar-dev
`)

	meta, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if meta.Name != "libfoo" {
		t.Errorf("Name = %q, want libfoo", meta.Name)
	}
	if meta.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", meta.Version)
	}
	if meta.License != "MIT" {
		t.Errorf("License = %q, want MIT", meta.License)
	}
	if len(meta.InstallRequires) != 1 || meta.InstallRequires[0] != "libbar>=2.0" {
		t.Errorf("InstallRequires = %v", meta.InstallRequires)
	}
	if len(meta.InstallDevRequires) != 1 || meta.InstallDevRequires[0] != "libbar-dev" {
		t.Errorf("InstallDevRequires = %v", meta.InstallDevRequires)
	}
}

func TestLoadMissingDevRequires(t *testing.T) {
	path := writeDescriptor(t, "name: libfoo\nversion: 1.0\n")

	meta, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Missing optional lists are empty, never an error
	if len(meta.InstallDevRequires) != 0 {
		t.Errorf("InstallDevRequires = %v, want empty", meta.InstallDevRequires)
	}
}

func TestLoadMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no name", "version: 1.0\n"},
		{"no version", "name: libfoo\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDescriptor(t, tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load should have failed")
			}

			var perr *models.PackError
			if !errors.As(err, &perr) || perr.Type != models.ErrDescriptor {
				t.Errorf("error = %v, want ErrDescriptor", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load should have failed for a missing file")
	}
}
