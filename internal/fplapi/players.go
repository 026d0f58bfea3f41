package fplapi

import "strings"

// Player is one row of the players export.
type Player struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	WebName       string  `json:"web_name"`
	Club          string  `json:"club"`
	Position      string  `json:"position"`
	CurrentPrice  float64 `json:"current_price"`
	TotalPoints   int     `json:"total_points"`
	Form          string  `json:"form"`
	PointsPerGame string  `json:"points_per_game"`
}

func positionLabel(elementType int) string {
	switch elementType {
	case 1:
		return "GK"
	case 2:
		return "DEF"
	case 3:
		return "MID"
	case 4:
		return "FWD"
	default:
		return "UNK"
	}
}

// BuildPlayers flattens bootstrap elements into player rows with club
// names resolved and prices converted from tenths of a million.
func BuildPlayers(bs *Bootstrap) ([]Player, error) {
	teams := TeamIndex(bs.Teams)
	out := make([]Player, 0, len(bs.Elements))
	for _, e := range bs.Elements {
		club, ok := teams[e.Team]
		if !ok {
			return nil, &UnknownTeamError{TeamID: e.Team}
		}
		name := strings.TrimSpace(e.FirstName + " " + e.SecondName)
		if name == "" {
			name = e.WebName
		}
		out = append(out, Player{
			ID:            e.ID,
			Name:          name,
			WebName:       e.WebName,
			Club:          club.Name,
			Position:      positionLabel(e.ElementType),
			CurrentPrice:  float64(e.NowCost) / 10,
			TotalPoints:   e.TotalPoints,
			Form:          e.Form,
			PointsPerGame: e.PointsPerGame,
		})
	}
	return out, nil
}
