// Package dbgsym bundles detached debug-info files into a compressed tar
// archive shipped next to the wheel, so stripped release libraries can
// still be symbolized off-device.
package dbgsym

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/sopack/sopack/internal/models"
	"github.com/sopack/sopack/internal/utils"
)

// Bundle writes the detached debug-info files found under root into
// <name>_<version>_dbgsym.tar.<format> in outputDir and returns its path.
// Entry names preserve the path relative to the artifact root. Returns an
// empty path when there are no debug files.
func Bundle(meta *models.Metadata, debugFiles []string, root, outputDir, format string) (string, error) {
	if len(debugFiles) == 0 {
		return "", nil
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s_dbgsym.tar.%s", meta.Name, meta.Version, format)
	path := filepath.Join(outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	// Never leave a truncated bundle behind
	if err := writeBundle(f, absRoot, debugFiles, format); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	logrus.Infof("Wrote debug symbol bundle %s (%d files)", path, len(debugFiles))
	return path, nil
}

// writeBundle streams the debug-info files as a compressed tar into w
func writeBundle(w io.Writer, root string, debugFiles []string, format string) error {
	cw, err := utils.NewCompressor(w, format)
	if err != nil {
		return err
	}
	tw := tar.NewWriter(cw)

	for _, file := range debugFiles {
		if err := addFile(tw, root, file); err != nil {
			return fmt.Errorf("failed to bundle %s: %w", file, err)
		}
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return cw.Close()
}

// addFile appends one debug-info file to the tar stream
func addFile(tw *tar.Writer, root, file string) error {
	info, err := os.Stat(file)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(root, file)
	if err != nil {
		return err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = filepath.ToSlash(rel)

	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}

	src, err := os.Open(file)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(tw, src)
	return err
}
