package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"fpl-fdr/internal/fdr"
	"fpl-fdr/internal/fetch"
	"fpl-fdr/internal/fplapi"
	"fpl-fdr/internal/sheet"
	"fpl-fdr/internal/store"
)

func main() {
	var (
		startGW     = flag.Int("start-gw", 0, "starting gameweek for the ranking (0 = current)")
		window      = flag.Int("window", fdr.DefaultWindow, "gameweeks ahead to analyze")
		includeIdle = flag.Bool("include-idle", false, "emit blank rows for teams with no fixture in the window")
		top         = flag.Int("top", 5, "teams to print in the console summary")
		rawRoot     = flag.String("raw-root", "data/raw", "root directory for raw JSON")
		outDir      = flag.String("out-dir", ".", "directory for spreadsheet exports")
		format      = flag.String("format", "xlsx", "spreadsheet format: xlsx|csv")
		fetchOnly   = flag.Bool("fetch-only", false, "fetch and store, skip the analysis stage")
		analyzeOnly = flag.Bool("analyze-only", false, "analyze the stored entry sheet, skip fetching")
		gwExport    = flag.Int("gw", 0, "also export fixtures and FDR sheets for this single gameweek (0 = off)")
		refresh     = flag.Bool("refresh", false, "force refresh of raw JSON even when cached")
		live        = flag.Bool("live", false, "always refetch and never write raw JSON to disk")
		sleepMS     = flag.Int("sleep-ms", 250, "sleep between requests in ms")
		pretty      = flag.Bool("pretty", true, "pretty-print raw JSON to disk")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file, relying on environment variables")
	}

	codec, err := sheet.ByFormat(*format)
	if err != nil {
		logger.Error("bad -format", "err", err)
		os.Exit(1)
	}
	if *fetchOnly && *analyzeOnly {
		logger.Error("-fetch-only and -analyze-only are mutually exclusive")
		os.Exit(1)
	}

	client := buildClient(*rawRoot, *sleepMS, *pretty, *live)
	st := client.Store

	if !*analyzeOnly {
		if err := fetchAndStore(logger, client, codec, *outDir, *refresh); err != nil {
			logger.Error("fetch stage failed", "err", err)
			os.Exit(1)
		}
		if *gwExport != 0 {
			if err := fetchGameweek(logger, client, codec, *outDir, *gwExport, *refresh); err != nil {
				logger.Error("gameweek export failed", "gw", *gwExport, "err", err)
				os.Exit(1)
			}
		}
	}

	if *fetchOnly {
		return
	}

	gw := *startGW
	if gw == 0 {
		gw, err = resolveStartGW(st)
		if err != nil {
			logger.Error("cannot resolve current gameweek, pass -start-gw", "err", err)
			os.Exit(1)
		}
	}

	params := fdr.Params{
		StartGameweek:    gw,
		WindowSize:       *window,
		IncludeIdleTeams: *includeIdle,
	}
	if err := loadAndAnalyze(logger, codec, *outDir, params, *top); err != nil {
		logger.Error("analysis stage failed", "err", err)
		os.Exit(1)
	}
}

// buildClient wires the fetch client from flags and environment. Live
// mode bypasses the raw cache entirely: every call refetches and
// nothing is written back to disk.
func buildClient(rawRoot string, sleepMS int, pretty, live bool) *fetch.Client {
	client := fetch.NewClient(store.NewJSONStore(rawRoot))
	client.Sleep = time.Duration(sleepMS) * time.Millisecond
	client.PrettyWrite = pretty
	client.UseCache = !live
	client.DisableWrite = live
	if base := os.Getenv("FPL_API_BASE"); base != "" {
		client.BaseURL = base
	}
	if ua := os.Getenv("FPL_USER_AGENT"); ua != "" {
		client.UserAgent = ua
	}
	return client
}

// fetchAndStore pulls bootstrap and fixtures from the API, flattens
// them, and writes the three export sheets: players, fixtures, and the
// per-perspective difficulty entries.
func fetchAndStore(logger *slog.Logger, client *fetch.Client, codec sheet.Codec, outDir string, force bool) error {
	bootBody, err := client.BootstrapStatic(force)
	if err != nil {
		return err
	}
	var bs fplapi.Bootstrap
	if err := json.Unmarshal(bootBody, &bs); err != nil {
		return fmt.Errorf("parse bootstrap-static: %w", err)
	}

	fixBody, err := client.Fixtures(force)
	if err != nil {
		return err
	}
	var fixtures []fplapi.Fixture
	if err := json.Unmarshal(fixBody, &fixtures); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}

	teams := fplapi.TeamIndex(bs.Teams)

	players, err := fplapi.BuildPlayers(&bs)
	if err != nil {
		return err
	}
	path := filepath.Join(outDir, sheet.PlayersFile(codec))
	if err := sheet.WritePlayers(codec, path, players); err != nil {
		return err
	}
	logger.Info("player data saved", "path", path, "players", len(players))

	reports, err := fplapi.BuildFixtureReports(fixtures, teams)
	if err != nil {
		return err
	}
	path = filepath.Join(outDir, sheet.FixturesFile(codec))
	if err := sheet.WriteFixtures(codec, path, reports); err != nil {
		return err
	}
	logger.Info("fixtures data saved", "path", path, "fixtures", len(reports))

	entries, err := fplapi.BuildEntries(fixtures, teams)
	if err != nil {
		return err
	}
	path = filepath.Join(outDir, sheet.EntriesFile(codec))
	if err := sheet.WriteEntries(codec, path, entries); err != nil {
		return err
	}
	logger.Info("FDR data saved", "path", path, "entries", len(entries))

	return nil
}

// fetchGameweek pulls a single gameweek's fixtures and writes the
// per-gameweek fixture and difficulty-entry sheets next to the full
// exports. Bootstrap comes from the cache when a full fetch already
// ran this invocation.
func fetchGameweek(logger *slog.Logger, client *fetch.Client, codec sheet.Codec, outDir string, gw int, force bool) error {
	bootBody, err := client.BootstrapStatic(false)
	if err != nil {
		return err
	}
	var bs fplapi.Bootstrap
	if err := json.Unmarshal(bootBody, &bs); err != nil {
		return fmt.Errorf("parse bootstrap-static: %w", err)
	}

	fixBody, err := client.FixturesForEvent(gw, force)
	if err != nil {
		return err
	}
	var fixtures []fplapi.Fixture
	if err := json.Unmarshal(fixBody, &fixtures); err != nil {
		return fmt.Errorf("parse fixtures gw %d: %w", gw, err)
	}

	teams := fplapi.TeamIndex(bs.Teams)

	reports, err := fplapi.BuildFixtureReports(fixtures, teams)
	if err != nil {
		return err
	}
	path := filepath.Join(outDir, sheet.FixturesGWFile(codec, gw))
	if err := sheet.WriteFixtures(codec, path, reports); err != nil {
		return err
	}
	logger.Info("gameweek fixtures saved", "gw", gw, "path", path, "fixtures", len(reports))

	entries, err := fplapi.BuildEntries(fixtures, teams)
	if err != nil {
		return err
	}
	path = filepath.Join(outDir, sheet.EntriesGWFile(codec, gw))
	if err := sheet.WriteEntries(codec, path, entries); err != nil {
		return err
	}
	logger.Info("gameweek FDR data saved", "gw", gw, "path", path, "entries", len(entries))

	return nil
}

// loadAndAnalyze reads the stored entry sheet back, ranks the clubs,
// writes the analysis sheet, and prints the console summary.
func loadAndAnalyze(logger *slog.Logger, codec sheet.Codec, outDir string, params fdr.Params, top int) error {
	entries, err := sheet.ReadEntries(codec, filepath.Join(outDir, sheet.EntriesFile(codec)))
	if err != nil {
		return err
	}

	rep, err := fdr.Analyze(entries, params)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, sheet.ReportFile(codec, rep.WindowSize, rep.StartGameweek))
	if err := sheet.WriteReport(codec, path, rep); err != nil {
		return err
	}
	logger.Info("FDR analysis saved", "path", path, "teams", len(rep.Rows))

	fmt.Printf("Starting from gameweek %d to %d\n", rep.StartGameweek, rep.EndGameweek)
	fmt.Printf("Teams analyzed: %d\n", len(rep.Rows))
	fmt.Printf("\nEasiest teams (lowest FDR):\n")
	for _, line := range rep.TopTeams(top) {
		fmt.Println(line)
	}
	return nil
}

// resolveStartGW reads the cached bootstrap to find the running
// gameweek. Only possible after at least one fetch stage.
func resolveStartGW(st *store.JSONStore) (int, error) {
	var bs fplapi.Bootstrap
	if err := st.ReadJSON(fetch.BootstrapPath, &bs); err != nil {
		return 0, err
	}
	return fplapi.CurrentGameweek(bs.Events)
}
