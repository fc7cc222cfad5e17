package experiments

import (
	"fmt"
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// PliesConfig describes a sweep of search depths for one engine against a baseline.
type PliesConfig struct {
	Choice    game.Choice
	Engine    agent.Kind
	MaxPlies  int
	Baseline  metrics.AgentConfig
	NumGames  int // Per match up
	Seed      uint64
	OutputDir string
}

// RunPliesExperiment pairs the baseline against the engine searching 1 to MaxPlies plies,
// once with each side moving first. It returns the stats per match up.
func RunPliesExperiment(cfg PliesConfig) ([]Stats, error) {
	if cfg.NumGames <= 0 {
		cfg.NumGames = DefaultNumGames
	}
	if cfg.Baseline.Engine == "" {
		cfg.Baseline = metrics.AgentConfig{ID: 0, Engine: agent.Dummy.String()}
	}

	configs := []metrics.AgentConfig{cfg.Baseline}
	var matchUps [][2]metrics.AgentConfig
	for plies := 1; plies <= cfg.MaxPlies; plies++ {
		config := metrics.AgentConfig{ID: plies, Engine: cfg.Engine.String(), Plies: plies}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{cfg.Baseline, config}, [2]metrics.AgentConfig{config, cfg.Baseline})
	}

	name := fmt.Sprintf("plies_%s_%s", cfg.Engine, cfg.Choice)
	log.Info().Msgf("starting %s experiment...", name)

	setup := metrics.Setup{
		Game:      cfg.Choice.String(),
		Matchups:  matchUps,
		NumGames:  cfg.NumGames,
		Seed:      cfg.Seed,
		StartTime: time.Now(),
	}
	r := newRand(cfg.Seed)
	var all matchupRun
	all.stats = NewStats()
	stats := make([]Stats, 0, len(matchUps))
	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		run, err := playMatchup(cfg.Choice, matchup, game.X, cfg.NumGames, r, nil)
		if err != nil {
			return stats, fmt.Errorf("matchup %d: %w", mi+1, err)
		}
		stats = append(stats, run.stats)
		all.add(run)

		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	setup.EndTime = time.Now()
	log.Info().Msgf("completed %s experiment", name)

	if cfg.OutputDir != "" {
		if err := store(cfg.OutputDir, name, setup, configs, all); err != nil {
			return stats, err
		}
	}
	return stats, nil
}
