package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the supported analysis profiles",
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	if listingService == nil {
		return errors.New("listing service not configured")
	}

	for _, name := range listingService.Profiles() {
		cmd.Println(string(name))
	}
	return nil
}
