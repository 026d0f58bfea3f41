package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fpl-fdr/internal/fdr"
	"fpl-fdr/internal/fplapi"
)

// FDRRankingsArgs is the input schema for the fdr_rankings tool.
type FDRRankingsArgs struct {
	StartGW     int  `json:"start_gw" jsonschema:"Starting gameweek (0 = current)"`
	Window      int  `json:"window" jsonschema:"Gameweeks ahead to analyze (default 5)"`
	IncludeIdle bool `json:"include_idle" jsonschema:"Include teams with no fixture in the window"`
	Limit       int  `json:"limit" jsonschema:"Limit rows (0 = all)"`
}

// FDRRankingsResult is the output of the fdr_rankings tool.
type FDRRankingsResult struct {
	StartGameweek int           `json:"start_gameweek"`
	EndGameweek   int           `json:"end_gameweek"`
	WindowSize    int           `json:"window_size"`
	Rows          []fdr.TeamRow `json:"rows"`
	Easiest       []string      `json:"easiest"`
}

// buildFDRRankings flattens the cached fixtures and ranks every club
// by mean difficulty over the requested window.
func buildFDRRankings(cfg ServerConfig, args FDRRankingsArgs) (*FDRRankingsResult, error) {
	gw, err := resolveGW(cfg, args.StartGW)
	if err != nil {
		return nil, err
	}
	bs, err := loadBootstrap(cfg)
	if err != nil {
		return nil, err
	}
	fixtures, err := loadFixtures(cfg)
	if err != nil {
		return nil, err
	}

	entries, err := fplapi.BuildEntries(fixtures, fplapi.TeamIndex(bs.Teams))
	if err != nil {
		return nil, err
	}

	rep, err := fdr.Analyze(entries, fdr.Params{
		StartGameweek:    gw,
		WindowSize:       args.Window,
		IncludeIdleTeams: args.IncludeIdle,
	})
	if err != nil {
		return nil, err
	}

	rows := rep.Rows
	if args.Limit > 0 && args.Limit < len(rows) {
		rows = rows[:args.Limit]
	}

	return &FDRRankingsResult{
		StartGameweek: rep.StartGameweek,
		EndGameweek:   rep.EndGameweek,
		WindowSize:    rep.WindowSize,
		Rows:          rows,
		Easiest:       rep.TopTeams(5),
	}, nil
}

// fdrRankingsHandler is the MCP tool handler for fdr_rankings.
func fdrRankingsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, FDRRankingsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args FDRRankingsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildFDRRankings(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
