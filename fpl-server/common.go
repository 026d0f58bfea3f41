package main

import (
	"fmt"

	"fpl-fdr/internal/fetch"
	"fpl-fdr/internal/fplapi"
	"fpl-fdr/internal/store"
)

// loadBootstrap reads the cached bootstrap-static payload.
func loadBootstrap(cfg ServerConfig) (*fplapi.Bootstrap, error) {
	st := store.NewJSONStore(cfg.RawRoot)
	var bs fplapi.Bootstrap
	if err := st.ReadJSON(fetch.BootstrapPath, &bs); err != nil {
		return nil, fmt.Errorf("bootstrap-static: %w", err)
	}
	return &bs, nil
}

// loadFixtures reads the cached all-fixtures payload.
func loadFixtures(cfg ServerConfig) ([]fplapi.Fixture, error) {
	st := store.NewJSONStore(cfg.RawRoot)
	var fixtures []fplapi.Fixture
	if err := st.ReadJSON(fetch.AllFixturesPath, &fixtures); err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	return fixtures, nil
}

// resolveGW maps 0 to the running gameweek from bootstrap events. Any
// other value passes through untouched so degenerate inputs surface as
// errors downstream instead of silently meaning "current".
func resolveGW(cfg ServerConfig, gw int) (int, error) {
	if gw != 0 {
		return gw, nil
	}
	bs, err := loadBootstrap(cfg)
	if err != nil {
		return 0, err
	}
	return fplapi.CurrentGameweek(bs.Events)
}
