package models

// BuildConfig contains configuration for a package build
type BuildConfig struct {
	// Inputs
	DescriptorPath string
	ArtifactRoot   string

	// Output
	OutputPath string

	// Variant flags
	Dbg bool
	Dev bool

	// Stripping
	StripTool string // empty means no stripping

	// Archive
	PlatTag string

	// Debug symbol bundle
	Dbgsym       bool
	DbgsymFormat string

	// Signing
	GPGKeyPath    string
	GPGPassphrase string
}
