package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// writeJSON writes v as JSON to path, creating parent directories.
func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// tmpCfg creates a temp directory and a ServerConfig pointing at it.
func tmpCfg(t *testing.T) (string, ServerConfig) {
	t.Helper()
	dir := t.TempDir()
	return dir, ServerConfig{RawRoot: dir}
}

// writeBootstrap writes a bootstrap-static.json with four clubs, two
// players, and gameweek 1 current / 2 next.
func writeBootstrap(t *testing.T, dir string) {
	t.Helper()
	writeJSON(t, filepath.Join(dir, "bootstrap", "bootstrap-static.json"), map[string]any{
		"teams": []any{
			map[string]any{"id": 1, "name": "Arsenal", "short_name": "ARS"},
			map[string]any{"id": 2, "name": "Chelsea", "short_name": "CHE"},
			map[string]any{"id": 3, "name": "Liverpool", "short_name": "LIV"},
			map[string]any{"id": 4, "name": "Man City", "short_name": "MCI"},
		},
		"elements": []any{
			map[string]any{
				"id": 1, "first_name": "Mohamed", "second_name": "Salah", "web_name": "M.Salah",
				"team": 3, "element_type": 3, "now_cost": 130, "total_points": 211,
				"form": "7.2", "points_per_game": "5.6",
			},
			map[string]any{
				"id": 2, "first_name": "Erling", "second_name": "Haaland", "web_name": "Haaland",
				"team": 4, "element_type": 4, "now_cost": 150, "total_points": 230,
				"form": "8.1", "points_per_game": "6.2",
			},
		},
		"events": []any{
			map[string]any{"id": 1, "is_current": true, "finished": false},
			map[string]any{"id": 2, "is_next": true, "deadline_time": "2025-08-22T17:30:00Z"},
		},
	})
}

// writeFixtures writes fixtures/all.json with the given fixtures.
func writeFixtures(t *testing.T, dir string, fixtures []any) {
	t.Helper()
	writeJSON(t, filepath.Join(dir, "fixtures", "all.json"), fixtures)
}

// fixtureJSON builds one raw fixture object.
func fixtureJSON(id, event, teamH, teamA, diffH, diffA int) map[string]any {
	return map[string]any{
		"id": id, "event": event, "team_h": teamH, "team_a": teamA,
		"team_h_difficulty": diffH, "team_a_difficulty": diffA,
	}
}
