// Package fplapi holds the wire types for the public Fantasy Premier
// League API and the flattening of its payloads into tabular records.
package fplapi

// Team is bootstrap team metadata.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// Element is one player entry from bootstrap-static.
type Element struct {
	ID            int    `json:"id"`
	FirstName     string `json:"first_name"`
	SecondName    string `json:"second_name"`
	WebName       string `json:"web_name"`
	Team          int    `json:"team"`
	ElementType   int    `json:"element_type"`
	NowCost       int    `json:"now_cost"`
	TotalPoints   int    `json:"total_points"`
	Form          string `json:"form"`
	PointsPerGame string `json:"points_per_game"`
	Status        string `json:"status"`
}

// Event is one gameweek entry from bootstrap-static.
type Event struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Finished     bool   `json:"finished"`
	IsCurrent    bool   `json:"is_current"`
	IsNext       bool   `json:"is_next"`
	DeadlineTime string `json:"deadline_time"`
}

// Bootstrap is the subset of /bootstrap-static/ this tool reads.
type Bootstrap struct {
	Teams    []Team    `json:"teams"`
	Elements []Element `json:"elements"`
	Events   []Event   `json:"events"`
}

// Fixture is one entry from /fixtures/. Event is nil for fixtures not
// yet scheduled into a gameweek; score pointers are nil before kickoff.
type Fixture struct {
	ID                   int         `json:"id"`
	Event                *int        `json:"event"`
	TeamH                int         `json:"team_h"`
	TeamA                int         `json:"team_a"`
	TeamHDifficulty      int         `json:"team_h_difficulty"`
	TeamADifficulty      int         `json:"team_a_difficulty"`
	TeamHScore           *int        `json:"team_h_score"`
	TeamAScore           *int        `json:"team_a_score"`
	KickoffTime          KickoffTime `json:"kickoff_time"`
	Finished             bool        `json:"finished"`
	Started              bool        `json:"started"`
	Minutes              int         `json:"minutes"`
	ProvisionalStartTime bool        `json:"provisional_start_time"`
}

// TeamIndex maps team ids to bootstrap metadata.
func TeamIndex(teams []Team) map[int]Team {
	out := make(map[int]Team, len(teams))
	for _, t := range teams {
		out[t.ID] = t
	}
	return out
}
