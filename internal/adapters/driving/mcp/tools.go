package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
)

// ComposeListingInput is the input schema for the compose_listing tool.
type ComposeListingInput struct {
	Profile       string         `json:"profile" jsonschema:"the analysis profile (jean_levis or pull_tommy)"`
	Features      map[string]any `json:"features" jsonschema:"the extracted garment attributes"`
	AIDescription string         `json:"ai_description,omitempty" jsonschema:"free-text fallback description from a previous analysis"`
	AIDefects     string         `json:"ai_defects,omitempty" jsonschema:"free-text defect summary overriding the features' defects field"`
}

// ComposeListingOutput is the output schema for the compose_listing tool.
type ComposeListingOutput struct {
	ID       string `json:"id"`
	Profile  string `json:"profile"`
	Body     string `json:"body"`
	Degraded bool   `json:"degraded"`
}

// ListProfilesOutput is the output schema for the list_profiles tool.
type ListProfilesOutput struct {
	Profiles []string `json:"profiles"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compose_listing",
		Description: "Compose a French marketplace listing from extracted garment features",
	}, s.handleComposeListing)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_profiles",
		Description: "List the supported analysis profiles",
	}, s.handleListProfiles)
}

// handleComposeListing handles the compose_listing tool invocation.
func (s *Server) handleComposeListing(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ComposeListingInput,
) (*mcp.CallToolResult, ComposeListingOutput, error) {
	listing, err := s.ports.Listing.ComposeFromFeatures(
		domain.ProfileName(input.Profile),
		domain.FeatureSet(input.Features),
		input.AIDescription,
		input.AIDefects,
	)
	if err != nil {
		return nil, ComposeListingOutput{}, err
	}

	return nil, ComposeListingOutput{
		ID:       listing.ID,
		Profile:  string(listing.Profile),
		Body:     listing.Body,
		Degraded: listing.Degraded,
	}, nil
}

// handleListProfiles handles the list_profiles tool invocation.
func (s *Server) handleListProfiles(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListProfilesOutput, error) {
	names := s.ports.Listing.Profiles()

	out := ListProfilesOutput{Profiles: make([]string, len(names))}
	for i, name := range names {
		out.Profiles[i] = string(name)
	}
	return nil, out, nil
}
