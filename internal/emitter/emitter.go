// Package emitter renders the build descriptor and drives the external
// wheel builder that produces the installable archive.
package emitter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sopack/sopack/internal/layout"
	"github.com/sopack/sopack/internal/models"
)

const (
	// DefaultPython is the interpreter used to run the wheel builder
	DefaultPython = "python3"

	// DefaultPlatTag is the platform tag for the target device fleet
	DefaultPlatTag = "linux_armv7l"

	setupFileName = "setup.py"
)

// Emitter produces the platform-tagged archive from final metadata and a
// grouped file listing
type Emitter struct {
	Python  string
	PlatTag string
}

// New creates an emitter for the given platform tag. An empty tag selects
// DefaultPlatTag.
func New(platTag string) *Emitter {
	if platTag == "" {
		platTag = DefaultPlatTag
	}
	return &Emitter{
		Python:  DefaultPython,
		PlatTag: platTag,
	}
}

// Emit writes the rendered setup.py into the artifact root, invokes the
// wheel builder with the artifact root as its working directory, and
// returns the path of the archive left in outputDir. Archive builds are
// deterministic and idempotent; a non-zero builder exit is a genuine
// defect in the inputs and is propagated, never retried.
func (e *Emitter) Emit(ctx context.Context, meta *models.Metadata, listing *layout.FileListing, root, outputDir string) (string, error) {
	setupPath := filepath.Join(root, setupFileName)
	if err := os.WriteFile(setupPath, RenderSetup(meta, listing), 0644); err != nil {
		return "", &models.PackError{
			Type: models.ErrToolExec,
			Path: setupPath,
			Err:  fmt.Errorf("failed to write build descriptor: %w", err),
		}
	}

	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(absOut, 0755); err != nil {
		return "", err
	}

	logrus.Infof("Building %s %s archive for %s", meta.Name, meta.Version, e.PlatTag)
	cmd := exec.CommandContext(ctx, e.Python, setupFileName, "bdist_wheel",
		"--plat-name", e.PlatTag, "--dist-dir", absOut)
	cmd.Dir = root
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", &models.PackError{
			Type: models.ErrToolExec,
			Err:  fmt.Errorf("wheel builder failed: %w: %s", err, out),
		}
	}
	logrus.Debugf("Wheel builder output:\n%s", out)

	return e.findArchive(absOut, meta)
}

// findArchive locates the wheel the builder left in dir. The archive is
// matched by name so that rebuilding into a populated output directory
// finds the overwritten wheel: builds are idempotent and a retried
// pipeline must not fail on its second run.
func (e *Emitter) findArchive(dir string, meta *models.Metadata) (string, error) {
	pattern := fmt.Sprintf("%s-%s-*-%s.whl",
		escapeWheelField(meta.Name), escapeWheelField(meta.Version), e.PlatTag)
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", &models.PackError{
			Type: models.ErrToolExec,
			Path: dir,
			Err:  fmt.Errorf("wheel builder exited zero but produced no archive matching %s", pattern),
		}
	default:
		return "", &models.PackError{
			Type: models.ErrToolExec,
			Path: dir,
			Err:  fmt.Errorf("multiple archives match %s: %v", pattern, matches),
		}
	}
}

// escapeWheelField escapes a distribution name or version the way wheel
// filenames do (PEP 427): anything outside [A-Za-z0-9.] becomes "_".
func escapeWheelField(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.':
			return r
		default:
			return '_'
		}
	}, s)
}
