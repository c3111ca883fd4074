// Package variant rewrites package metadata for debug and development
// builds and computes the variant tag consumed by layout validation.
package variant

import (
	"strings"

	"github.com/sopack/sopack/internal/models"
)

// Derive rewrites meta in place for the requested build variant and
// returns the variant tag.
//
// Non-release variants are renamed with a -dbg and/or -dev suffix and are
// pinned to the exact release build they were produced alongside. A name
// that already carries a -dev suffix upstream is treated as a development
// package even when the dev flag is unset: the suffix on the final name is
// the single source of truth for the soname invariant direction.
func Derive(meta *models.Metadata, dbg, dev bool) models.Variant {
	name := meta.Name
	if dbg {
		name += "-dbg"
	}
	if dev {
		name += "-dev"
	}

	if dbg || dev {
		meta.InstallRequires = []string{name + "==" + meta.Version}
	}
	if dev {
		// Missing install_dev_requires is an empty list, not an error.
		meta.InstallRequires = append(meta.InstallRequires, meta.InstallDevRequires...)
	}
	meta.Name = name

	v := models.VariantRelease
	if dbg {
		v = models.VariantDebug
	}
	if strings.HasSuffix(name, "-dev") {
		v = models.VariantDevelopment
	}

	meta.Description = name + "\n" + strings.Repeat("=", len(name)) + "\n"

	return v
}
