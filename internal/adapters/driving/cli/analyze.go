package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
)

var (
	analyzeProfile string
	analyzeMode    string
	analyzeJSON    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>...",
	Short: "Analyze garment photographs and compose a listing",
	Long: `Sends all photographs of one garment to the vision model, extracts
the garment features, and composes a listing from them.

All images must show the same physical item: label close-ups, full views,
and flat measurements are cross-checked against each other.

The --measurement-mode flag controls how the size is determined:
  etiquette  size is read from the visible size label only
  mesures    the size label is treated as missing and the size is
             estimated from the flat measurements`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "analysis profile (jean_levis, pull_tommy)")
	analyzeCmd.Flags().StringVarP(&analyzeMode, "measurement-mode", "m", "", "size source: etiquette or mesures")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the listing as JSON")
	_ = analyzeCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if listingService == nil {
		return errors.New("listing service not configured")
	}

	if analyzeMode != "" &&
		analyzeMode != domain.MeasurementModeLabel &&
		analyzeMode != domain.MeasurementModeFlat {
		return fmt.Errorf("invalid measurement mode %q (want %q or %q)",
			analyzeMode, domain.MeasurementModeLabel, domain.MeasurementModeFlat)
	}

	images, err := loadImages(args)
	if err != nil {
		return err
	}

	listing, err := listingService.AnalyzeAndCompose(cmd.Context(), domain.AnalysisRequest{
		Profile:         domain.ProfileName(analyzeProfile),
		Images:          images,
		MeasurementMode: analyzeMode,
	})
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	return outputListing(cmd, listing, analyzeJSON)
}

// loadImages reads the image files into memory.
func loadImages(paths []string) ([]domain.Image, error) {
	images := make([]domain.Image, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", path, err)
		}
		images = append(images, domain.Image{
			Data:     data,
			MIMEType: imageMIMEType(path),
		})
	}
	return images, nil
}

// imageMIMEType maps a file extension to its image content type.
func imageMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
