package experiments

import (
	"fmt"
	"io"
	"mnk/engine"
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/gamemaster"
	"mnk/searcher/agent"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const DefaultNumGames = 1 // Per match up

// Config describes a battle between two engines over a number of games.
type Config struct {
	Choice       game.Choice
	NumGames     int
	Agents       [2]metrics.AgentConfig // Player 1 first
	Player1Piece game.Piece
	Seed         uint64 // Seeds the random engines; zero picks one from the clock
	Quiet        bool   // Only print the stats at the end
	Out          io.Writer
	OutputDir    string // Where to store the experiment results; empty stores nothing
}

// RunBattle has the configured engines play each other and tallies the results.
func RunBattle(cfg Config) (Stats, error) {
	if cfg.NumGames <= 0 {
		cfg.NumGames = DefaultNumGames
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Player1Piece == game.Blank {
		cfg.Player1Piece = game.X
	}

	log.Info().Msgf("starting battle between agent1=%+v and agent2=%+v...", cfg.Agents[0], cfg.Agents[1])
	setup := metrics.Setup{
		Game:      cfg.Choice.String(),
		Matchups:  [][2]metrics.AgentConfig{cfg.Agents},
		NumGames:  cfg.NumGames,
		Seed:      cfg.Seed,
		StartTime: time.Now(),
	}

	var out *termenv.Output
	if !cfg.Quiet {
		out = termenv.NewOutput(cfg.Out)
	}
	run, err := playMatchup(cfg.Choice, cfg.Agents, cfg.Player1Piece, cfg.NumGames, newRand(cfg.Seed), out)
	if err != nil {
		return Stats{}, err
	}

	setup.EndTime = time.Now()
	log.Info().Msg("completed battle")

	fmt.Fprintln(cfg.Out, "=== Stats ===")
	for _, line := range run.stats.Summary() {
		fmt.Fprintln(cfg.Out, line)
	}

	if cfg.OutputDir != "" {
		configs := cfg.Agents[:]
		if cfg.Agents[0].ID == cfg.Agents[1].ID {
			configs = configs[:1]
		}
		if err := store(cfg.OutputDir, "battle", setup, configs, run); err != nil {
			return run.stats, err
		}
	}
	return run.stats, nil
}

// matchupRun collects what a series of games produced.
type matchupRun struct {
	stats       Stats
	gameRecords []metrics.GameRecord
	moveRecords []metrics.MoveRecord
}

func (r *matchupRun) add(other matchupRun) {
	r.stats.merge(other.stats)
	offset := len(r.gameRecords)
	for _, gr := range other.gameRecords {
		gr.ID += offset
		r.gameRecords = append(r.gameRecords, gr)
	}
	for _, mr := range other.moveRecords {
		mr.Game += offset
		r.moveRecords = append(r.moveRecords, mr)
	}
}

// playMatchup plays numGames games of choice between the two configs. Boards are printed
// to out unless it is nil.
func playMatchup(choice game.Choice, configs [2]metrics.AgentConfig, piece game.Piece, numGames int, r *rand.Rand, out *termenv.Output) (matchupRun, error) {
	params, ok := choice.Parameters()
	if !ok {
		return matchupRun{}, fmt.Errorf("no parameters for game choice %s", choice)
	}
	master, err := gamemaster.NewMaster(params, piece)
	if err != nil {
		return matchupRun{}, err
	}

	agents := make(map[game.Player]agent.Agent, 2)
	for i, p := range []game.Player{game.P1, game.P2} {
		a, err := createAgent(configs[i], master.Game(), p, r)
		if err != nil {
			return matchupRun{}, fmt.Errorf("agent %d: %w", configs[i].ID, err)
		}
		agents[p] = a
	}
	e := engine.LocalEngine(master, agents)

	run := matchupRun{stats: NewStats()}
	for i := 0; i < numGames; i++ {
		if i > 0 {
			if err := master.Reset(piece); err != nil {
				return run, err
			}
		}
		log.Debug().Msgf("starting game %d of %d...", i+1, numGames)

		result, gameMetric, moveMetrics, err := e.Run()
		if err != nil {
			return run, fmt.Errorf("game %d: %w", i+1, err)
		}
		run.stats.Add(result)
		id := len(run.gameRecords) + 1
		run.gameRecords = append(run.gameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     configs[0].ID,
			Agent2:     configs[1].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			run.moveRecords = append(run.moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		if out != nil {
			fmt.Fprintln(out, game.Render(master.Game().Board(), out))
			fmt.Fprintf(out, "Game %d/%d result: %s\n\n", i+1, numGames, result)
		}
		log.Debug().Msgf("completed game %d with result: %s", i+1, result)
	}
	return run, nil
}

func createAgent(config metrics.AgentConfig, g *game.Game, p game.Player, r *rand.Rand) (agent.Agent, error) {
	kind, err := agent.ParseKind(config.Engine)
	if err != nil {
		return nil, err
	}
	options := []agent.Option{agent.WithRand(r)}
	if config.Plies > 0 {
		options = append(options, agent.WithPlies(config.Plies))
	}
	return agent.New(kind, g, p, options...)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func store(root, name string, setup metrics.Setup, configs []metrics.AgentConfig, run matchupRun) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteSetup(setup); err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(run.gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(run.moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
