package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
)

var (
	composeProfile     string
	composeDescription string
	composeDefects     string
	composeJSON        bool
)

var composeCmd = &cobra.Command{
	Use:   "compose [features.json]",
	Short: "Compose a listing from an extracted features file",
	Long: `Composes a French marketplace listing from a JSON file of extracted
garment features. Use "-" (or no argument) to read the features from stdin.

Example features file for the jean_levis profile:

  {
    "model": "501",
    "fit": "skinny",
    "color": "bleu délavé",
    "size_fr": "38",
    "size_us": "28",
    "rise_type": "high",
    "cotton_percent": 98,
    "elasthane_percent": 2
  }`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringVarP(&composeProfile, "profile", "p", "", "analysis profile (jean_levis, pull_tommy)")
	composeCmd.Flags().StringVar(&composeDescription, "description", "", "fallback AI description")
	composeCmd.Flags().StringVar(&composeDefects, "defects", "", "defect summary overriding the features file")
	composeCmd.Flags().BoolVar(&composeJSON, "json", false, "output the listing as JSON")
	_ = composeCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	if listingService == nil {
		return errors.New("listing service not configured")
	}

	features, err := readFeatures(cmd, args)
	if err != nil {
		return err
	}

	listing, err := listingService.ComposeFromFeatures(
		domain.ProfileName(composeProfile),
		features,
		composeDescription,
		composeDefects,
	)
	if err != nil {
		return fmt.Errorf("compose failed: %w", err)
	}

	return outputListing(cmd, listing, composeJSON)
}

// readFeatures loads the feature mapping from the file argument or stdin.
func readFeatures(cmd *cobra.Command, args []string) (domain.FeatureSet, error) {
	var reader io.Reader
	if len(args) == 0 || args[0] == "-" {
		reader = cmd.InOrStdin()
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open features file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read features: %w", err)
	}

	var features domain.FeatureSet
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, fmt.Errorf("parse features JSON: %w", err)
	}
	return features, nil
}

// listingOutput is the JSON shape of a composed listing.
type listingOutput struct {
	ID       string `json:"id"`
	Profile  string `json:"profile"`
	Title    string `json:"title,omitempty"`
	Body     string `json:"body"`
	Degraded bool   `json:"degraded"`
}

// outputListing prints a listing as text or JSON.
func outputListing(cmd *cobra.Command, listing domain.Listing, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(listingOutput{
			ID:       listing.ID,
			Profile:  string(listing.Profile),
			Title:    listing.Title,
			Body:     listing.Body,
			Degraded: listing.Degraded,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal listing: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if listing.Title != "" {
		cmd.Println(listing.Title)
		cmd.Println()
	}
	cmd.Println(listing.Body)
	if listing.Degraded {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: composition degraded to the raw AI description")
	}
	return nil
}
