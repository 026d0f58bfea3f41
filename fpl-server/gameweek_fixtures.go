package main

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fpl-fdr/internal/fplapi"
)

// GameweekFixturesArgs is the input schema for the gameweek_fixtures tool.
type GameweekFixturesArgs struct {
	GW int `json:"gw" jsonschema:"Gameweek number (0 = current)"`
}

// GameweekFixture is a single fixture in a gameweek.
type GameweekFixture struct {
	Home        string `json:"home"`
	HomeShort   string `json:"home_short"`
	Away        string `json:"away"`
	AwayShort   string `json:"away_short"`
	KickoffTime string `json:"kickoff_time,omitempty"`
	HomeScore   *int   `json:"home_score"`
	AwayScore   *int   `json:"away_score"`
	Finished    bool   `json:"finished"`
	Started     bool   `json:"started"`
}

// GameweekFixturesResult is the output of the gameweek_fixtures tool.
type GameweekFixturesResult struct {
	Gameweek int               `json:"gameweek"`
	Fixtures []GameweekFixture `json:"fixtures"`
}

// buildGameweekFixtures filters the cached all-fixtures payload down to
// one gameweek and resolves team names.
func buildGameweekFixtures(cfg ServerConfig, gw int) (*GameweekFixturesResult, error) {
	resolvedGW, err := resolveGW(cfg, gw)
	if err != nil {
		return nil, err
	}
	bs, err := loadBootstrap(cfg)
	if err != nil {
		return nil, err
	}
	all, err := loadFixtures(cfg)
	if err != nil {
		return nil, err
	}
	teams := fplapi.TeamIndex(bs.Teams)

	fixtures := make([]GameweekFixture, 0, 10)
	for _, f := range all {
		if f.Event == nil || *f.Event != resolvedGW {
			continue
		}
		home, ok := teams[f.TeamH]
		if !ok {
			return nil, &fplapi.UnknownTeamError{TeamID: f.TeamH, FixtureID: f.ID}
		}
		away, ok := teams[f.TeamA]
		if !ok {
			return nil, &fplapi.UnknownTeamError{TeamID: f.TeamA, FixtureID: f.ID}
		}
		gf := GameweekFixture{
			Home:      home.Name,
			HomeShort: home.ShortName,
			Away:      away.Name,
			AwayShort: away.ShortName,
			HomeScore: f.TeamHScore,
			AwayScore: f.TeamAScore,
			Finished:  f.Finished,
			Started:   f.Started,
		}
		if !f.KickoffTime.IsZero() {
			gf.KickoffTime = f.KickoffTime.Format(time.RFC3339)
		}
		fixtures = append(fixtures, gf)
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("no fixtures for gw %d", resolvedGW)
	}
	return &GameweekFixturesResult{Gameweek: resolvedGW, Fixtures: fixtures}, nil
}

// gameweekFixturesHandler is the MCP tool handler for gameweek_fixtures.
func gameweekFixturesHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, GameweekFixturesArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args GameweekFixturesArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildGameweekFixtures(cfg, args.GW)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
