package sheet

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"fpl-fdr/internal/fdr"
	"fpl-fdr/internal/fplapi"
)

// ErrNoData is returned when an entry sheet is missing or holds no
// records; the analysis stage needs a prior fetch-and-store run.
var ErrNoData = errors.New("no stored fdr entries")

// Export filenames. Names match prior runs so consumers can keep
// pointing at the same files.
func PlayersFile(c Codec) string  { return "fpl_players." + c.Ext() }
func FixturesFile(c Codec) string { return "fpl_fixtures_all." + c.Ext() }
func EntriesFile(c Codec) string  { return "fpl_fdr_all." + c.Ext() }

func ReportFile(c Codec, window, startGW int) string {
	return fmt.Sprintf("fpl_next%d_fdr_analysis_gw%d.%s", window, startGW, c.Ext())
}

// Per-gameweek variants of the fixtures and entries exports.
func FixturesGWFile(c Codec, gw int) string {
	return fmt.Sprintf("fpl_fixtures_gw%d.%s", gw, c.Ext())
}

func EntriesGWFile(c Codec, gw int) string {
	return fmt.Sprintf("fpl_fdr_gw%d.%s", gw, c.Ext())
}

var entryHeader = []string{
	"fixture_id", "gameweek", "team", "opponent",
	"home_away", "difficulty_rating", "kickoff_time", "finished",
}

// WriteEntries saves the flattened difficulty entries, one row each,
// column order fixed by entryHeader.
func WriteEntries(c Codec, path string, entries []fdr.Entry) error {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, entryHeader)
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.FixtureID),
			strconv.Itoa(e.Gameweek),
			e.Team,
			e.Opponent,
			string(e.Venue),
			strconv.Itoa(e.Difficulty),
			formatKickoff(e.KickoffTime),
			strconv.FormatBool(e.Finished),
		})
	}
	return c.Write(path, rows)
}

// ReadEntries loads an entry sheet written by WriteEntries. A missing
// file or a sheet with nothing but the header maps to ErrNoData.
func ReadEntries(c Codec, path string) ([]fdr.Entry, error) {
	rows, err := c.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoData)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoData)
	}

	entries := make([]fdr.Entry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		e, err := parseEntryRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseEntryRow(row []string) (fdr.Entry, error) {
	if len(row) < len(entryHeader) {
		return fdr.Entry{}, fmt.Errorf("want %d columns, got %d", len(entryHeader), len(row))
	}
	fixtureID, err := strconv.Atoi(row[0])
	if err != nil {
		return fdr.Entry{}, fmt.Errorf("fixture_id %q: %w", row[0], err)
	}
	gameweek, err := strconv.Atoi(row[1])
	if err != nil {
		return fdr.Entry{}, fmt.Errorf("gameweek %q: %w", row[1], err)
	}
	difficulty, err := strconv.Atoi(row[5])
	if err != nil {
		return fdr.Entry{}, fmt.Errorf("difficulty_rating %q: %w", row[5], err)
	}
	var kickoff time.Time
	if row[6] != "" {
		kickoff, err = time.Parse(time.RFC3339, row[6])
		if err != nil {
			return fdr.Entry{}, fmt.Errorf("kickoff_time %q: %w", row[6], err)
		}
	}
	finished, err := strconv.ParseBool(row[7])
	if err != nil {
		return fdr.Entry{}, fmt.Errorf("finished %q: %w", row[7], err)
	}
	return fdr.Entry{
		FixtureID:   fixtureID,
		Gameweek:    gameweek,
		Team:        row[2],
		Opponent:    row[3],
		Venue:       fdr.Venue(row[4]),
		Difficulty:  difficulty,
		KickoffTime: kickoff,
		Finished:    finished,
	}, nil
}

// WriteReport lays the ranking out one wide row per team: rank and
// aggregates first, then an opponent/fdr/home_away triplet per window
// slot. Blank slots stay blank so every row has the same width.
func WriteReport(c Codec, path string, rep *fdr.Report) error {
	header := []string{"fdr_rank", "team", "average_fdr", "total_fdr", "fixtures_analyzed"}
	for i := 1; i <= rep.WindowSize; i++ {
		header = append(header,
			fmt.Sprintf("gw%d_opponent", i),
			fmt.Sprintf("gw%d_fdr", i),
			fmt.Sprintf("gw%d_home_away", i),
		)
	}

	rows := make([][]string, 0, len(rep.Rows)+1)
	rows = append(rows, header)
	for _, r := range rep.Rows {
		row := []string{
			strconv.Itoa(r.Rank),
			r.Team,
			strconv.FormatFloat(r.AverageDifficulty, 'f', -1, 64),
			strconv.Itoa(r.TotalDifficulty),
			strconv.Itoa(r.FixturesAnalyzed),
		}
		for _, s := range r.Slots {
			if s.Empty() {
				row = append(row, "", "", "")
				continue
			}
			row = append(row, s.Opponent, strconv.Itoa(*s.Difficulty), string(s.Venue))
		}
		rows = append(rows, row)
	}
	return c.Write(path, rows)
}

// WritePlayers saves the flattened player table.
func WritePlayers(c Codec, path string, players []fplapi.Player) error {
	rows := make([][]string, 0, len(players)+1)
	rows = append(rows, []string{
		"id", "name", "web_name", "club", "position",
		"current_price", "total_points", "form", "points_per_game",
	})
	for _, p := range players {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.WebName,
			p.Club,
			p.Position,
			strconv.FormatFloat(p.CurrentPrice, 'f', 1, 64),
			strconv.Itoa(p.TotalPoints),
			p.Form,
			p.PointsPerGame,
		})
	}
	return c.Write(path, rows)
}

// WriteFixtures saves the plain fixtures table (no difficulty ratings).
func WriteFixtures(c Codec, path string, fixtures []fplapi.FixtureReport) error {
	rows := make([][]string, 0, len(fixtures)+1)
	rows = append(rows, []string{
		"fixture_id", "gameweek", "kickoff_time", "home_team", "away_team",
		"finished", "home_score", "away_score", "minutes", "provisional_start_time",
	})
	for _, f := range fixtures {
		rows = append(rows, []string{
			strconv.Itoa(f.FixtureID),
			formatIntPtr(f.Gameweek),
			formatKickoff(f.KickoffTime.Time),
			f.HomeTeam,
			f.AwayTeam,
			strconv.FormatBool(f.Finished),
			formatIntPtr(f.HomeScore),
			formatIntPtr(f.AwayScore),
			strconv.Itoa(f.Minutes),
			strconv.FormatBool(f.ProvisionalStartTime),
		})
	}
	return c.Write(path, rows)
}

func formatKickoff(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
