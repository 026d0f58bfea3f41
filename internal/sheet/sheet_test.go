package sheet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpl-fdr/internal/fdr"
)

func testEntries() []fdr.Entry {
	kickoff := time.Date(2025, 8, 16, 14, 0, 0, 0, time.UTC)
	return []fdr.Entry{
		{
			FixtureID: 1, Gameweek: 1, Team: "Arsenal", Opponent: "Chelsea",
			Venue: fdr.VenueHome, Difficulty: 3, KickoffTime: kickoff, Finished: false,
		},
		{
			FixtureID: 1, Gameweek: 1, Team: "Chelsea", Opponent: "Arsenal",
			Venue: fdr.VenueAway, Difficulty: 4, KickoffTime: kickoff, Finished: false,
		},
		// postponed rearrangement with no confirmed kickoff yet
		{
			FixtureID: 2, Gameweek: 2, Team: "Arsenal", Opponent: "Everton",
			Venue: fdr.VenueAway, Difficulty: 2,
		},
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	for _, codec := range []Codec{CSV{}, XLSX{}} {
		t.Run(codec.Ext(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), EntriesFile(codec))
			entries := testEntries()

			require.NoError(t, WriteEntries(codec, path, entries))

			got, err := ReadEntries(codec, path)
			require.NoError(t, err)
			assert.Equal(t, entries, got)
		})
	}
}

func TestReadEntriesMissingFile(t *testing.T) {
	codec := CSV{}
	_, err := ReadEntries(codec, filepath.Join(t.TempDir(), EntriesFile(codec)))
	require.ErrorIs(t, err, ErrNoData)
}

func TestReadEntriesHeaderOnly(t *testing.T) {
	codec := CSV{}
	path := filepath.Join(t.TempDir(), EntriesFile(codec))
	require.NoError(t, WriteEntries(codec, path, nil))

	_, err := ReadEntries(codec, path)
	require.ErrorIs(t, err, ErrNoData)
}

func TestReadEntriesMalformedRow(t *testing.T) {
	codec := CSV{}
	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, codec.Write(path, [][]string{
		{"fixture_id", "gameweek", "team", "opponent", "home_away", "difficulty_rating", "kickoff_time", "finished"},
		{"1", "not-a-gameweek", "Arsenal", "Chelsea", "Home", "3", "", "false"},
	}))

	_, err := ReadEntries(codec, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestWriteReportLayout(t *testing.T) {
	codec := CSV{}
	path := filepath.Join(t.TempDir(), ReportFile(codec, 5, 1))

	entries := []fdr.Entry{
		{FixtureID: 1, Gameweek: 1, Team: "Team A", Opponent: "Team B", Venue: fdr.VenueHome, Difficulty: 2},
		{FixtureID: 1, Gameweek: 1, Team: "Team B", Opponent: "Team A", Venue: fdr.VenueAway, Difficulty: 4},
		{FixtureID: 2, Gameweek: 2, Team: "Team A", Opponent: "Team C", Venue: fdr.VenueAway, Difficulty: 5},
		{FixtureID: 2, Gameweek: 2, Team: "Team C", Opponent: "Team A", Venue: fdr.VenueHome, Difficulty: 1},
	}
	rep, err := fdr.Analyze(entries, fdr.Params{StartGameweek: 1})
	require.NoError(t, err)
	require.NoError(t, WriteReport(codec, path, rep))

	rows, err := codec.Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	wantHeader := []string{
		"fdr_rank", "team", "average_fdr", "total_fdr", "fixtures_analyzed",
		"gw1_opponent", "gw1_fdr", "gw1_home_away",
		"gw2_opponent", "gw2_fdr", "gw2_home_away",
		"gw3_opponent", "gw3_fdr", "gw3_home_away",
		"gw4_opponent", "gw4_fdr", "gw4_home_away",
		"gw5_opponent", "gw5_fdr", "gw5_home_away",
	}
	assert.Equal(t, wantHeader, rows[0])

	// Team C ranks first with a single easy fixture
	teamC := rows[1]
	assert.Equal(t, "1", teamC[0])
	assert.Equal(t, "Team C", teamC[1])
	assert.Equal(t, "1", teamC[2])
	assert.Equal(t, []string{"Team A", "1", "Home"}, teamC[5:8])
	// unused slots stay blank, not omitted
	assert.Equal(t, []string{"", "", ""}, teamC[8:11])

	teamA := rows[2]
	assert.Equal(t, "2", teamA[0])
	assert.Equal(t, "3.5", teamA[2])
	assert.Equal(t, []string{"Team B", "2", "Home"}, teamA[5:8])
	assert.Equal(t, []string{"Team C", "5", "Away"}, teamA[8:11])
}

func TestWriteReplacesPreviousFile(t *testing.T) {
	codec := CSV{}
	path := filepath.Join(t.TempDir(), "table.csv")

	require.NoError(t, codec.Write(path, [][]string{{"a"}, {"1"}, {"2"}}))
	require.NoError(t, codec.Write(path, [][]string{{"a"}, {"3"}}))

	rows, err := codec.Read(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"3"}}, rows)
}

func TestByFormat(t *testing.T) {
	c, err := ByFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, "xlsx", c.Ext())

	c, err = ByFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, "csv", c.Ext())

	_, err = ByFormat("parquet")
	require.Error(t, err)
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "fpl_fdr_all.xlsx", EntriesFile(XLSX{}))
	assert.Equal(t, "fpl_players.csv", PlayersFile(CSV{}))
	assert.Equal(t, "fpl_fixtures_all.xlsx", FixturesFile(XLSX{}))
	assert.Equal(t, "fpl_next5_fdr_analysis_gw12.xlsx", ReportFile(XLSX{}, 5, 12))
	assert.Equal(t, "fpl_fixtures_gw7.csv", FixturesGWFile(CSV{}, 7))
	assert.Equal(t, "fpl_fdr_gw7.xlsx", EntriesGWFile(XLSX{}, 7))
}
