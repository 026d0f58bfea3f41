package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fpl-fdr/internal/fplapi"
)

// PlayerLookupArgs is the input schema for the player_lookup tool.
type PlayerLookupArgs struct {
	ElementID int `json:"element_id" jsonschema:"Player element id (required)"`
}

// buildPlayerLookup finds one player row by element id.
func buildPlayerLookup(cfg ServerConfig, elementID int) (*fplapi.Player, error) {
	if elementID == 0 {
		return nil, fmt.Errorf("element_id is required")
	}
	bs, err := loadBootstrap(cfg)
	if err != nil {
		return nil, err
	}
	players, err := fplapi.BuildPlayers(bs)
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].ID == elementID {
			return &players[i], nil
		}
	}
	return nil, fmt.Errorf("player not found: %d", elementID)
}

// playerLookupHandler is the MCP tool handler for player_lookup.
func playerLookupHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, PlayerLookupArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerLookupArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPlayerLookup(cfg, args.ElementID)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
