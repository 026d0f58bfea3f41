package fplapi

import (
	"fmt"

	"fpl-fdr/internal/fdr"
)

// UnknownTeamError reports a payload referencing a team id that is
// absent from the bootstrap team lookup. FixtureID is zero when the
// reference came from somewhere other than a fixture.
type UnknownTeamError struct {
	TeamID    int
	FixtureID int
}

func (e *UnknownTeamError) Error() string {
	if e.FixtureID != 0 {
		return fmt.Sprintf("fixture %d references unknown team id %d", e.FixtureID, e.TeamID)
	}
	return fmt.Sprintf("unknown team id %d", e.TeamID)
}

// BuildEntries flattens raw fixtures into two difficulty entries each:
// one from the home side's perspective, one from the away side's, with
// team/opponent swapped and each side's own difficulty rating taken
// verbatim from the payload. Fixtures without a gameweek (event null)
// are skipped; an unknown team id fails the whole run rather than
// emitting an entry with a blank club name.
func BuildEntries(fixtures []Fixture, teams map[int]Team) ([]fdr.Entry, error) {
	out := make([]fdr.Entry, 0, len(fixtures)*2)
	for _, f := range fixtures {
		if f.Event == nil {
			continue
		}
		home, ok := teams[f.TeamH]
		if !ok {
			return nil, &UnknownTeamError{TeamID: f.TeamH, FixtureID: f.ID}
		}
		away, ok := teams[f.TeamA]
		if !ok {
			return nil, &UnknownTeamError{TeamID: f.TeamA, FixtureID: f.ID}
		}
		venue := fdr.VenueHome
		out = append(out,
			fdr.Entry{
				FixtureID:   f.ID,
				Gameweek:    *f.Event,
				Team:        home.Name,
				Opponent:    away.Name,
				Venue:       venue,
				Difficulty:  f.TeamHDifficulty,
				KickoffTime: f.KickoffTime.Time,
				Finished:    f.Finished,
			},
			fdr.Entry{
				FixtureID:   f.ID,
				Gameweek:    *f.Event,
				Team:        away.Name,
				Opponent:    home.Name,
				Venue:       venue.Opposite(),
				Difficulty:  f.TeamADifficulty,
				KickoffTime: f.KickoffTime.Time,
				Finished:    f.Finished,
			},
		)
	}
	return out, nil
}

// FixtureReport is one plain fixture row for the fixtures export, no
// difficulty ratings. Gameweek is nil for unscheduled fixtures.
type FixtureReport struct {
	FixtureID            int         `json:"fixture_id"`
	Gameweek             *int        `json:"gameweek"`
	KickoffTime          KickoffTime `json:"kickoff_time"`
	HomeTeam             string      `json:"home_team"`
	AwayTeam             string      `json:"away_team"`
	Finished             bool        `json:"finished"`
	HomeScore            *int        `json:"home_score"`
	AwayScore            *int        `json:"away_score"`
	Minutes              int         `json:"minutes"`
	ProvisionalStartTime bool        `json:"provisional_start_time"`
}

// BuildFixtureReports resolves team names for every raw fixture.
func BuildFixtureReports(fixtures []Fixture, teams map[int]Team) ([]FixtureReport, error) {
	out := make([]FixtureReport, 0, len(fixtures))
	for _, f := range fixtures {
		home, ok := teams[f.TeamH]
		if !ok {
			return nil, &UnknownTeamError{TeamID: f.TeamH, FixtureID: f.ID}
		}
		away, ok := teams[f.TeamA]
		if !ok {
			return nil, &UnknownTeamError{TeamID: f.TeamA, FixtureID: f.ID}
		}
		out = append(out, FixtureReport{
			FixtureID:            f.ID,
			Gameweek:             f.Event,
			KickoffTime:          f.KickoffTime,
			HomeTeam:             home.Name,
			AwayTeam:             away.Name,
			Finished:             f.Finished,
			HomeScore:            f.TeamHScore,
			AwayScore:            f.TeamAScore,
			Minutes:              f.Minutes,
			ProvisionalStartTime: f.ProvisionalStartTime,
		})
	}
	return out, nil
}

// CurrentGameweek resolves the running gameweek from bootstrap events:
// the event flagged is_current, falling back to is_next at season start.
func CurrentGameweek(events []Event) (int, error) {
	for _, ev := range events {
		if ev.IsCurrent {
			return ev.ID, nil
		}
	}
	for _, ev := range events {
		if ev.IsNext {
			return ev.ID, nil
		}
	}
	return 0, fmt.Errorf("no current gameweek in bootstrap events")
}
