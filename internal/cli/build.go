package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/sopack/sopack/internal/dbgsym"
	"github.com/sopack/sopack/internal/descriptor"
	"github.com/sopack/sopack/internal/emitter"
	"github.com/sopack/sopack/internal/layout"
	"github.com/sopack/sopack/internal/models"
	"github.com/sopack/sopack/internal/signer"
	"github.com/sopack/sopack/internal/utils"
	"github.com/sopack/sopack/internal/variant"
)

func validateConfig(config *models.BuildConfig) error {
	if _, err := os.Stat(config.DescriptorPath); err != nil {
		return &models.PackError{
			Type: models.ErrInvalidConfig,
			Path: config.DescriptorPath,
			Err:  fmt.Errorf("descriptor not readable: %w", err),
		}
	}

	info, err := os.Stat(config.ArtifactRoot)
	if err != nil || !info.IsDir() {
		return &models.PackError{
			Type: models.ErrInvalidConfig,
			Path: config.ArtifactRoot,
			Err:  fmt.Errorf("artifact root is not a directory"),
		}
	}

	switch config.DbgsymFormat {
	case utils.FormatGz, utils.FormatXz:
	default:
		return &models.PackError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("unsupported dbgsym format: %s", config.DbgsymFormat),
		}
	}

	return nil
}

func runBuild(ctx context.Context, config *models.BuildConfig) error {
	// Step 1: Load package metadata
	logrus.Infof("Loading descriptor: %s", config.DescriptorPath)
	meta, err := descriptor.Load(config.DescriptorPath)
	if err != nil {
		return err
	}

	// Step 2: Derive the build variant
	v := variant.Derive(meta, config.Dbg, config.Dev)
	logrus.Infof("Building %s variant of %s %s", v, meta.Name, meta.Version)

	// Step 3: Validate the artifact layout
	var stripper layout.Stripper
	if config.StripTool != "" {
		stripper = layout.NewExecStripper(config.StripTool)
	}

	validator := layout.NewValidator(stripper)
	listing, err := validator.Validate(ctx, config.ArtifactRoot, v)
	if err != nil {
		return err
	}

	// Step 4: Emit the archive
	em := emitter.New(config.PlatTag)
	archive, err := em.Emit(ctx, meta, listing, config.ArtifactRoot, config.OutputPath)
	if err != nil {
		return err
	}

	sum, err := utils.SHA256File(archive)
	if err != nil {
		return err
	}
	logrus.Infof("Wrote %s (sha256 %s)", archive, sum)

	// Optional: bundle detached debug symbols
	if config.Dbgsym {
		if _, err := dbgsym.Bundle(meta, listing.DebugFiles, config.ArtifactRoot, config.OutputPath, config.DbgsymFormat); err != nil {
			return err
		}
	}

	// Optional: sign the archive
	if config.GPGKeyPath != "" {
		if err := signArchive(archive, config); err != nil {
			return err
		}
	}

	return nil
}

// signArchive writes an armored detached signature and the public key
// next to the archive
func signArchive(archive string, config *models.BuildConfig) error {
	s, err := signer.NewGPGSigner(config.GPGKeyPath, config.GPGPassphrase)
	if err != nil {
		return &models.PackError{
			Type: models.ErrSigning,
			Err:  fmt.Errorf("failed to initialize GPG signer: %w", err),
		}
	}

	data, err := os.ReadFile(archive)
	if err != nil {
		return err
	}

	sig, err := s.SignDetached(data)
	if err != nil {
		return &models.PackError{
			Type: models.ErrSigning,
			Path: archive,
			Err:  err,
		}
	}
	if err := os.WriteFile(archive+".asc", sig, 0644); err != nil {
		return err
	}

	pub, err := s.GetPublicKey()
	if err != nil {
		return &models.PackError{
			Type: models.ErrSigning,
			Err:  err,
		}
	}
	if err := os.WriteFile(archive+".pub.asc", pub, 0644); err != nil {
		return err
	}

	logrus.Infof("Signed %s", archive)
	return nil
}
