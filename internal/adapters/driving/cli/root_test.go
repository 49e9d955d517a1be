package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fripon-labs/fripon-cli/internal/composers"
	"github.com/fripon-labs/fripon-cli/internal/core/services"
)

// setupTestServices wires a real listing service (no vision) into the
// commands and returns a cleanup function.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	registry := composers.NewRegistry()
	require.NoError(t, composers.RegisterDefaults(registry))
	SetListingService(services.NewListingService(registry, nil, nil, nil))

	return func() {
		SetListingService(nil)
	}
}

func TestRootCmd_Use(t *testing.T) {
	require.Equal(t, "fripon", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	require.Equal(t, "v", flag.Shorthand)
}
