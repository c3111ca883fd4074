package models

// Metadata holds the package metadata declared by a descriptor file,
// plus the fields derived during variant derivation.
type Metadata struct {
	Name               string   `yaml:"name"`
	Version            string   `yaml:"version"`
	License            string   `yaml:"license"`
	URL                string   `yaml:"url"`
	InstallRequires    []string `yaml:"install_requires"`
	InstallDevRequires []string `yaml:"install_dev_requires"`

	// Description is synthesized during variant derivation and is not
	// read from the descriptor.
	Description string `yaml:"-"`
}
