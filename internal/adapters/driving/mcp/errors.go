// Package mcp provides an MCP (Model Context Protocol) server adapter
// for fripon. It lets AI assistants compose marketplace listings from
// extracted garment features.
package mcp

import "errors"

// ErrMissingListingService is returned when the listing service is not provided.
var ErrMissingListingService = errors.New("mcp: listing service is required")
