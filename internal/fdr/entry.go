package fdr

import "time"

// Venue is the side a team plays a fixture from.
type Venue string

const (
	VenueHome Venue = "Home"
	VenueAway Venue = "Away"
)

// Opposite returns the other side of the same fixture.
func (v Venue) Opposite() Venue {
	if v == VenueHome {
		return VenueAway
	}
	return VenueHome
}

// Entry is one team's perspective on one fixture. Every raw fixture
// produces two entries with team/opponent swapped, opposite venues, and
// that side's own difficulty rating. Entries are built once per fetch
// cycle and never mutated; a new run replaces the whole set.
type Entry struct {
	FixtureID   int       `json:"fixture_id"`
	Gameweek    int       `json:"gameweek"`
	Team        string    `json:"team"`
	Opponent    string    `json:"opponent"`
	Venue       Venue     `json:"venue"`
	Difficulty  int       `json:"difficulty"`
	KickoffTime time.Time `json:"kickoff_time"`
	Finished    bool      `json:"finished"`
}
