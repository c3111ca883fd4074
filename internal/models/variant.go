package models

// Variant represents the build variant of a package
type Variant int

const (
	VariantRelease Variant = iota
	VariantDebug
	VariantDevelopment
)

// String returns the string representation of Variant
func (v Variant) String() string {
	switch v {
	case VariantRelease:
		return "release"
	case VariantDebug:
		return "debug"
	case VariantDevelopment:
		return "development"
	default:
		return "unknown"
	}
}

// SonameMustMatch reports whether shared libraries in this variant must
// carry a soname equal to their filename. Release and debug packages ship
// libraries under their linked name so the dynamic linker resolves them
// directly; development packages ship deliberately mismatched names so
// they can coexist on disk with the release package.
func (v Variant) SonameMustMatch() bool {
	return v != VariantDevelopment
}
