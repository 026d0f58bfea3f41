package fdr

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultWindow is how many upcoming gameweeks an analysis covers.
const DefaultWindow = 5

var (
	// ErrNoEntries is returned when the entry set is missing or empty.
	ErrNoEntries = errors.New("no fixture difficulty entries")

	// ErrInvalidParams wraps degenerate analysis parameters.
	ErrInvalidParams = errors.New("invalid analysis parameters")
)

// Params controls a single ranking run.
type Params struct {
	// StartGameweek is the first gameweek of the window (required, >= 1).
	StartGameweek int

	// WindowSize is how many gameweeks forward to look (0 = DefaultWindow).
	WindowSize int

	// IncludeIdleTeams emits a blank row for teams that appear in the
	// entry set but have no fixture inside the window. The default
	// (false) omits them, matching the exports this tool has always
	// produced.
	IncludeIdleTeams bool
}

// Slot is one upcoming fixture inside a team's row. Unused slots keep
// their zero value so every row has the same shape.
type Slot struct {
	Opponent   string `json:"opponent,omitempty"`
	Difficulty *int   `json:"difficulty,omitempty"`
	Venue      Venue  `json:"venue,omitempty"`
}

// Empty reports whether the slot holds no fixture.
func (s Slot) Empty() bool { return s.Opponent == "" }

// TeamRow is one ranked output record: rank, aggregates, and one slot
// per gameweek of the window.
type TeamRow struct {
	Rank              int     `json:"rank"`
	Team              string  `json:"team"`
	AverageDifficulty float64 `json:"average_fdr"`
	TotalDifficulty   int     `json:"total_fdr"`
	FixturesAnalyzed  int     `json:"fixtures_analyzed"`
	Slots             []Slot  `json:"fixtures"`
}

// Report is the full ranking for one analysis run.
type Report struct {
	StartGameweek int       `json:"start_gameweek"`
	EndGameweek   int       `json:"end_gameweek"`
	WindowSize    int       `json:"window_size"`
	Rows          []TeamRow `json:"rows"`
}

// Analyze ranks every club by its mean difficulty over the next
// WindowSize gameweeks starting at StartGameweek. Teams sort ascending
// by average difficulty (lower = easier = better rank); ties keep the
// order teams were first encountered in the entry set. The entry set is
// read-only for the duration, so concurrent calls with different
// parameters are safe.
func Analyze(entries []Entry, p Params) (*Report, error) {
	window := p.WindowSize
	if window == 0 {
		window = DefaultWindow
	}
	if p.StartGameweek < 1 {
		return nil, fmt.Errorf("start gameweek %d: %w", p.StartGameweek, ErrInvalidParams)
	}
	if window < 1 {
		return nil, fmt.Errorf("window size %d: %w", p.WindowSize, ErrInvalidParams)
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	end := p.StartGameweek + window - 1

	// Group in-range entries per team, remembering the order teams are
	// first seen. That order is the tie-break after sorting.
	order := make([]string, 0, 20)
	byTeam := make(map[string][]Entry, 20)
	for _, e := range entries {
		if e.Gameweek < p.StartGameweek || e.Gameweek > end {
			continue
		}
		if _, ok := byTeam[e.Team]; !ok {
			order = append(order, e.Team)
		}
		byTeam[e.Team] = append(byTeam[e.Team], e)
	}

	rows := make([]TeamRow, 0, len(order))
	for _, team := range order {
		win := byTeam[team]
		sort.SliceStable(win, func(i, j int) bool {
			if win[i].Gameweek != win[j].Gameweek {
				return win[i].Gameweek < win[j].Gameweek
			}
			return win[i].KickoffTime.Before(win[j].KickoffTime)
		})
		if len(win) > window {
			win = win[:window]
		}
		rows = append(rows, buildRow(team, win, window))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AverageDifficulty < rows[j].AverageDifficulty
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	if p.IncludeIdleTeams {
		rows = append(rows, idleRows(entries, byTeam, window, len(rows))...)
	}

	return &Report{
		StartGameweek: p.StartGameweek,
		EndGameweek:   end,
		WindowSize:    window,
		Rows:          rows,
	}, nil
}

func buildRow(team string, win []Entry, window int) TeamRow {
	total := 0
	slots := make([]Slot, window)
	for i, e := range win {
		total += e.Difficulty
		d := e.Difficulty
		slots[i] = Slot{Opponent: e.Opponent, Difficulty: &d, Venue: e.Venue}
	}
	row := TeamRow{
		Team:             team,
		TotalDifficulty:  total,
		FixturesAnalyzed: len(win),
		Slots:            slots,
	}
	if len(win) > 0 {
		row.AverageDifficulty = float64(total) / float64(len(win))
	}
	return row
}

// idleRows builds blank rows for teams known to the entry set but with
// no fixture inside the window. They rank after every active team, in
// entry-set order.
func idleRows(entries []Entry, active map[string][]Entry, window int, nextRank int) []TeamRow {
	seen := make(map[string]bool)
	var rows []TeamRow
	for _, e := range entries {
		if _, ok := active[e.Team]; ok {
			continue
		}
		if seen[e.Team] {
			continue
		}
		seen[e.Team] = true
		row := buildRow(e.Team, nil, window)
		nextRank++
		row.Rank = nextRank
		rows = append(rows, row)
	}
	return rows
}

// TopTeams formats the first k ranked rows as console summary lines,
// average difficulty to two decimals. Presentation only.
func (r *Report) TopTeams(k int) []string {
	if k <= 0 || k > len(r.Rows) {
		k = len(r.Rows)
	}
	out := make([]string, 0, k)
	for _, row := range r.Rows[:k] {
		out = append(out, fmt.Sprintf("%d. %s (Avg FDR: %.2f)", row.Rank, row.Team, row.AverageDifficulty))
	}
	return out
}
