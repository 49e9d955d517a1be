package mcp

import (
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Listing composes marketplace listings.
	Listing driving.ListingComposer
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Listing == nil {
		return ErrMissingListingService
	}
	return nil
}
