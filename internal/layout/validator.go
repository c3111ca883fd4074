// Package layout validates the artifact tree of a prebuilt package and
// produces the grouped file listing handed to the archive emitter.
//
// The tree is read-only except for in-place symbol stripping; validation
// never renames or moves a file. Symbolic links cannot be represented in
// the output archive format, so their presence anywhere under the install
// prefix aborts the run.
package layout

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/sopack/sopack/internal/models"
)

// InstallPrefix is the only subtree of the artifact root the archive
// format can map files into. Anything elsewhere under the root is
// invisible to the emitter.
const InstallPrefix = "usr/local"

// FileListing groups absolute file paths by their directory relative to
// the install prefix. It is created once by Validate and consumed once by
// the emitter.
type FileListing struct {
	// Dirs maps a prefix-relative directory to the absolute paths of
	// the files it contains, sorted.
	Dirs map[string][]string

	// DebugFiles holds the absolute paths of detached debug-info files,
	// for the optional dbgsym bundle.
	DebugFiles []string
}

// SortedDirs returns the directory keys in sorted order
func (l *FileListing) SortedDirs() []string {
	dirs := make([]string, 0, len(l.Dirs))
	for d := range l.Dirs {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// Validator walks an artifact tree, stripping and checking shared
// libraries against the variant's soname invariant.
type Validator struct {
	Soname   SonameReader
	Stripper Stripper // nil means no stripping
}

// NewValidator creates a validator reading sonames from ELF files.
// stripper may be nil.
func NewValidator(stripper Stripper) *Validator {
	return &Validator{
		Soname:   ELFSonameReader{},
		Stripper: stripper,
	}
}

// Validate walks every directory under root's install prefix and returns
// the grouped file listing. The artifact root is passed explicitly; the
// process working directory is never changed.
//
// For the release and debug variants every shared library must carry a
// soname equal to its filename; for the development variant it must
// differ. Libraries matching an exempted cross-ABI suffix skip the check.
func (v *Validator) Validate(ctx context.Context, root string, variant models.Variant) (*FileListing, error) {
	prefix := filepath.Join(root, filepath.FromSlash(InstallPrefix))
	if _, err := os.Stat(prefix); err != nil {
		return nil, &models.PackError{
			Type: models.ErrLayout,
			Path: prefix,
			Err:  fmt.Errorf("artifact tree has no %s prefix: %w", InstallPrefix, err),
		}
	}

	mustMatch := variant.SonameMustMatch()
	listing := &FileListing{Dirs: make(map[string][]string)}

	err := filepath.Walk(prefix, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.Mode()&os.ModeSymlink != 0 {
			return &models.PackError{
				Type: models.ErrLayout,
				Path: path,
				Err:  fmt.Errorf("symbolic links cannot be represented in the archive"),
			}
		}

		if info.IsDir() {
			return nil
		}

		name := info.Name()

		if IsSharedLibrary(name) {
			if err := v.checkLibrary(ctx, path, name, mustMatch); err != nil {
				return err
			}
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		relDir, err := filepath.Rel(prefix, filepath.Dir(path))
		if err != nil {
			return err
		}
		relDir = filepath.ToSlash(relDir)

		listing.Dirs[relDir] = append(listing.Dirs[relDir], abs)
		if IsDebugInfo(name) {
			listing.DebugFiles = append(listing.DebugFiles, abs)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, files := range listing.Dirs {
		sort.Strings(files)
	}
	sort.Strings(listing.DebugFiles)

	logrus.Debugf("Validated %d directories under %s", len(listing.Dirs), prefix)
	return listing, nil
}

// checkLibrary strips a shared library and enforces the soname invariant
func (v *Validator) checkLibrary(ctx context.Context, path, name string, mustMatch bool) error {
	if v.Stripper != nil {
		logrus.Infof("Stripping %s", path)
		if err := v.Stripper.Strip(ctx, path); err != nil {
			return &models.PackError{
				Type: models.ErrToolExec,
				Path: path,
				Err:  err,
			}
		}
	}

	if IsABITagged(name) {
		logrus.Debugf("Skipping soname check for ABI-tagged library %s", name)
		return nil
	}

	soname, err := v.Soname.Soname(path)
	if err != nil {
		return &models.PackError{
			Type: models.ErrLayout,
			Path: path,
			Err:  err,
		}
	}

	if (soname == name) != mustMatch {
		var reason string
		if mustMatch {
			reason = fmt.Sprintf("soname %q does not match filename", soname)
		} else {
			reason = fmt.Sprintf("soname %q matches filename, development libraries must be renamed", soname)
		}
		return &models.PackError{
			Type: models.ErrLayout,
			Path: path,
			Err:  fmt.Errorf("%s", reason),
		}
	}

	return nil
}
