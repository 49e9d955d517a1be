// Package cli provides the cobra command-line interface for fripon.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fripon-labs/fripon-cli/internal/core/ports/driving"
	"github.com/fripon-labs/fripon-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// verbose enables debug logging on stderr.
var verbose bool

// listingService is the injected listing composer.
var listingService driving.ListingComposer

var rootCmd = &cobra.Command{
	Use:   "fripon",
	Short: "Compose second-hand clothing listings for Vinted",
	Long: `Fripon composes structured French marketplace listings for
second-hand garments: Levi's denim jeans and Tommy Hilfiger knitwear.

Listings can be composed from an existing features file or extracted
directly from photographs with a vision model.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// SetListingService injects the listing composer used by the commands.
func SetListingService(svc driving.ListingComposer) {
	listingService = svc
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
