// Package descriptor loads package metadata from a declarative YAML
// descriptor file. The descriptor replaces executable build metadata with a
// static document, so loading it can never run code.
package descriptor

import (
	"fmt"
	"os"

	"github.com/sopack/sopack/internal/models"
	"gopkg.in/yaml.v2"
)

// Load reads and parses a descriptor file
func Load(path string) (*models.Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.PackError{
			Type: models.ErrDescriptor,
			Path: path,
			Err:  err,
		}
	}

	var meta models.Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, &models.PackError{
			Type: models.ErrDescriptor,
			Path: path,
			Err:  fmt.Errorf("failed to parse descriptor: %w", err),
		}
	}

	if meta.Name == "" {
		return nil, &models.PackError{
			Type: models.ErrDescriptor,
			Path: path,
			Err:  fmt.Errorf("descriptor does not declare a name"),
		}
	}
	if meta.Version == "" {
		return nil, &models.PackError{
			Type: models.ErrDescriptor,
			Path: path,
			Err:  fmt.Errorf("descriptor does not declare a version"),
		}
	}

	return &meta, nil
}
