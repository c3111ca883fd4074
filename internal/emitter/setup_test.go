package emitter

import (
	"strings"
	"testing"

	"github.com/sopack/sopack/internal/layout"
	"github.com/sopack/sopack/internal/models"
)

func TestRenderSetup(t *testing.T) {
	meta := &models.Metadata{
		Name:            "libfoo-dbg",
		Version:         "1.2.3",
		License:         "MIT",
		URL:             "https://example.com/libfoo",
		InstallRequires: []string{"libfoo-dbg==1.2.3"},
		Description:     "libfoo-dbg\n==========\n",
	}
	listing := &layout.FileListing{
		Dirs: map[string][]string{
			"lib": {"/build/root/usr/local/lib/libfoo.so"},
			"bin": {"/build/root/usr/local/bin/runner"},
		},
	}

	setup := string(RenderSetup(meta, listing))

	for _, want := range []string{
		`name="libfoo-dbg"`,
		`version="1.2.3"`,
		`license="MIT"`,
		`url="https://example.com/libfoo"`,
		`maintainer=`,
		`maintainer_email=`,
		`long_description="libfoo-dbg\n==========\n"`,
		`long_description_content_type="text/markdown"`,
		`"libfoo-dbg==1.2.3"`,
		`("lib", [`,
		`("bin", [`,
		`"/build/root/usr/local/lib/libfoo.so"`,
		`"/build/root/usr/local/bin/runner"`,
	} {
		if !strings.Contains(setup, want) {
			t.Errorf("setup.py missing %q:\n%s", want, setup)
		}
	}

	// Deterministic: bin renders before lib
	if strings.Index(setup, `("bin", [`) > strings.Index(setup, `("lib", [`) {
		t.Error("data_files directories are not sorted")
	}
}
