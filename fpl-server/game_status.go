package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fpl-fdr/internal/fplapi"
)

// GameStatusArgs is the input schema for game_status (no parameters).
type GameStatusArgs struct{}

// FixtureProgress tracks how many fixtures have started/finished in a GW.
type FixtureProgress struct {
	Total    int `json:"total"`
	Started  int `json:"started"`
	Finished int `json:"finished"`
}

// GameStatusResult is the output of the game_status tool.
type GameStatusResult struct {
	CurrentGW         int             `json:"current_gw"`
	CurrentGWFinished bool            `json:"current_gw_finished"`
	NextGW            int             `json:"next_gw"`
	NextDeadline      string          `json:"next_deadline,omitempty"`
	CurrentGWFixtures FixtureProgress `json:"current_gw_fixtures"`
}

// buildGameStatus summarizes where the season stands from the cached
// bootstrap events and fixtures.
func buildGameStatus(cfg ServerConfig) (*GameStatusResult, error) {
	bs, err := loadBootstrap(cfg)
	if err != nil {
		return nil, err
	}
	current, err := fplapi.CurrentGameweek(bs.Events)
	if err != nil {
		return nil, err
	}

	out := &GameStatusResult{CurrentGW: current}
	for _, ev := range bs.Events {
		if ev.ID == current {
			out.CurrentGWFinished = ev.Finished
		}
		if ev.IsNext {
			out.NextGW = ev.ID
			out.NextDeadline = ev.DeadlineTime
		}
	}
	if out.NextGW == 0 {
		out.NextGW = current + 1
	}

	fixtures, err := loadFixtures(cfg)
	if err != nil {
		return nil, err
	}
	for _, f := range fixtures {
		if f.Event == nil || *f.Event != current {
			continue
		}
		out.CurrentGWFixtures.Total++
		if f.Started {
			out.CurrentGWFixtures.Started++
		}
		if f.Finished {
			out.CurrentGWFixtures.Finished++
		}
	}
	return out, nil
}

// gameStatusHandler is the MCP tool handler for game_status.
func gameStatusHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, GameStatusArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args GameStatusArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildGameStatus(cfg)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
