package fplapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpl-fdr/internal/fdr"
)

func intPtr(v int) *int { return &v }

func testTeams() map[int]Team {
	return TeamIndex([]Team{
		{ID: 1, Name: "Arsenal", ShortName: "ARS"},
		{ID: 2, Name: "Chelsea", ShortName: "CHE"},
	})
}

func TestBuildEntriesTwoPerspectives(t *testing.T) {
	fixtures := []Fixture{{
		ID:              10,
		Event:           intPtr(3),
		TeamH:           1,
		TeamA:           2,
		TeamHDifficulty: 2,
		TeamADifficulty: 4,
		Finished:        true,
	}}

	entries, err := BuildEntries(fixtures, testTeams())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	home, away := entries[0], entries[1]
	assert.Equal(t, "Arsenal", home.Team)
	assert.Equal(t, "Chelsea", home.Opponent)
	assert.Equal(t, fdr.VenueHome, home.Venue)
	assert.Equal(t, 2, home.Difficulty)

	// sibling entry: swapped names, opposite venue, its own difficulty
	assert.Equal(t, home.Opponent, away.Team)
	assert.Equal(t, home.Team, away.Opponent)
	assert.Equal(t, home.Venue.Opposite(), away.Venue)
	assert.Equal(t, 4, away.Difficulty)

	for _, e := range entries {
		assert.NotEqual(t, e.Team, e.Opponent)
		assert.Equal(t, 10, e.FixtureID)
		assert.Equal(t, 3, e.Gameweek)
		assert.True(t, e.Finished)
	}
}

func TestBuildEntriesSkipsUnscheduled(t *testing.T) {
	fixtures := []Fixture{
		{ID: 1, Event: nil, TeamH: 1, TeamA: 2},
		{ID: 2, Event: intPtr(1), TeamH: 2, TeamA: 1},
	}

	entries, err := BuildEntries(fixtures, testTeams())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].FixtureID)
}

func TestBuildEntriesUnknownTeam(t *testing.T) {
	fixtures := []Fixture{{ID: 7, Event: intPtr(1), TeamH: 1, TeamA: 99}}

	entries, err := BuildEntries(fixtures, testTeams())
	assert.Nil(t, entries)

	var ute *UnknownTeamError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, 99, ute.TeamID)
	assert.Equal(t, 7, ute.FixtureID)
}

func TestBuildFixtureReports(t *testing.T) {
	fixtures := []Fixture{{
		ID:         5,
		Event:      intPtr(2),
		TeamH:      1,
		TeamA:      2,
		TeamHScore: intPtr(3),
		TeamAScore: intPtr(1),
		Finished:   true,
		Minutes:    90,
	}}

	reports, err := BuildFixtureReports(fixtures, testTeams())
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, "Arsenal", r.HomeTeam)
	assert.Equal(t, "Chelsea", r.AwayTeam)
	require.NotNil(t, r.Gameweek)
	assert.Equal(t, 2, *r.Gameweek)
	assert.Equal(t, 3, *r.HomeScore)
	assert.Equal(t, 1, *r.AwayScore)
	assert.Equal(t, 90, r.Minutes)
}

func TestCurrentGameweek(t *testing.T) {
	tests := []struct {
		name    string
		events  []Event
		want    int
		wantErr bool
	}{
		{
			name:   "current event flagged",
			events: []Event{{ID: 1, Finished: true}, {ID: 2, IsCurrent: true}, {ID: 3, IsNext: true}},
			want:   2,
		},
		{
			name:   "season start falls back to next",
			events: []Event{{ID: 1, IsNext: true}, {ID: 2}},
			want:   1,
		},
		{
			name:    "no current or next",
			events:  []Event{{ID: 1, Finished: true}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrentGameweek(tt.events)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
