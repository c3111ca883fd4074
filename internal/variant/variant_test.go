package variant

import (
	"reflect"
	"testing"

	"github.com/sopack/sopack/internal/models"
)

func baseMeta() *models.Metadata {
	return &models.Metadata{
		Name:            "libfoo",
		Version:         "1.2.3",
		License:         "MIT",
		URL:             "https://example.com/libfoo",
		InstallRequires: []string{"libbar>=2.0"},
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name         string
		dbg, dev     bool
		devRequires  []string
		wantName     string
		wantVariant  models.Variant
		wantRequires []string
	}{
		{
			name:         "release",
			wantName:     "libfoo",
			wantVariant:  models.VariantRelease,
			wantRequires: []string{"libbar>=2.0"},
		},
		{
			name:         "debug",
			dbg:          true,
			wantName:     "libfoo-dbg",
			wantVariant:  models.VariantDebug,
			wantRequires: []string{"libfoo-dbg==1.2.3"},
		},
		{
			name:         "development",
			dev:          true,
			devRequires:  []string{"cmake", "libbar-dev"},
			wantName:     "libfoo-dev",
			wantVariant:  models.VariantDevelopment,
			wantRequires: []string{"libfoo-dev==1.2.3", "cmake", "libbar-dev"},
		},
		{
			name:         "debug and development",
			dbg:          true,
			dev:          true,
			devRequires:  []string{"cmake"},
			wantName:     "libfoo-dbg-dev",
			wantVariant:  models.VariantDevelopment,
			wantRequires: []string{"libfoo-dbg-dev==1.2.3", "cmake"},
		},
		{
			name:         "development without dev requires",
			dev:          true,
			wantName:     "libfoo-dev",
			wantVariant:  models.VariantDevelopment,
			wantRequires: []string{"libfoo-dev==1.2.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := baseMeta()
			meta.InstallDevRequires = tt.devRequires

			v := Derive(meta, tt.dbg, tt.dev)

			if meta.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", meta.Name, tt.wantName)
			}
			if v != tt.wantVariant {
				t.Errorf("variant = %v, want %v", v, tt.wantVariant)
			}
			if !reflect.DeepEqual(meta.InstallRequires, tt.wantRequires) {
				t.Errorf("InstallRequires = %v, want %v", meta.InstallRequires, tt.wantRequires)
			}
		})
	}
}

// A base name already carrying a -dev suffix upstream makes the package a
// development variant even when the dev flag is unset.
func TestDeriveImplicitDev(t *testing.T) {
	meta := baseMeta()
	meta.Name = "libfoo-dev"

	v := Derive(meta, false, false)

	if v != models.VariantDevelopment {
		t.Errorf("variant = %v, want development", v)
	}
	if v.SonameMustMatch() {
		t.Error("development variant must require mismatched sonames")
	}
	if meta.Name != "libfoo-dev" {
		t.Errorf("Name = %q, want libfoo-dev", meta.Name)
	}
}

func TestDeriveDescription(t *testing.T) {
	meta := baseMeta()
	Derive(meta, true, false)

	want := "libfoo-dbg\n==========\n"
	if meta.Description != want {
		t.Errorf("Description = %q, want %q", meta.Description, want)
	}
}

func TestSonameMustMatch(t *testing.T) {
	if !models.VariantRelease.SonameMustMatch() {
		t.Error("release libraries must match their soname")
	}
	if !models.VariantDebug.SonameMustMatch() {
		t.Error("debug libraries must match their soname")
	}
	if models.VariantDevelopment.SonameMustMatch() {
		t.Error("development libraries must not match their soname")
	}
}
