package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/sopack/sopack/internal/models"
	"github.com/sopack/sopack/internal/utils"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var config models.BuildConfig

	rootCmd := &cobra.Command{
		Use:   "sopack <descriptor> <artifact-root>",
		Short: "Package prebuilt shared libraries into an installable archive",
		Long: `Sopack packages prebuilt non-source artifacts laid out under
<artifact-root>/usr/local into a platform-tagged wheel archive for
deployment onto an embedded Linux target.

Package metadata is read from a YAML descriptor. The binary layout is
validated against platform naming conventions: symbolic links are
rejected, and every shared library's embedded soname must match its
filename (development variants invert that requirement so they can
coexist on disk with the release package).`,
		Args: cobra.ExactArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config.DescriptorPath = args[0]
			config.ArtifactRoot = args[1]

			if err := validateConfig(&config); err != nil {
				return err
			}

			logrus.Debugf("Configuration: %+v", config)
			return runBuild(cmd.Context(), &config)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Variant flags
	rootCmd.Flags().BoolVar(&config.Dbg, "dbg", false, "Build the debug variant")
	rootCmd.Flags().BoolVar(&config.Dev, "dev", false, "Build the development variant")

	// Output flags
	rootCmd.Flags().StringVarP(&config.OutputPath, "output-path", "o", ".", "Directory to leave the archive in")
	rootCmd.Flags().StringVar(&config.PlatTag, "plat-name", "", "Platform tag for the archive")

	// Stripping
	rootCmd.Flags().StringVar(&config.StripTool, "strip", "", "Path to a strip executable (no stripping when omitted)")

	// Debug symbol bundle
	rootCmd.Flags().BoolVar(&config.Dbgsym, "dbgsym", false, "Bundle detached .debug files next to the archive")
	rootCmd.Flags().StringVar(&config.DbgsymFormat, "dbgsym-format", utils.FormatXz, "Compression for the debug bundle (xz, gz)")

	// Signing
	rootCmd.Flags().StringVar(&config.GPGKeyPath, "gpg-key", "", "Path to GPG private key for signing the archive")
	rootCmd.Flags().StringVar(&config.GPGPassphrase, "gpg-passphrase", "", "GPG key passphrase")

	return rootCmd
}
