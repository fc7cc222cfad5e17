package engine

import (
	"fmt"
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/gamemaster"
	"mnk/meta"
	"mnk/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	master *gamemaster.Master
	agents map[game.Player]agent.Agent
}

// LocalEngine drives master's game with one agent per player. Agents must be bound to
// master's live game.
func LocalEngine(master *gamemaster.Master, agents map[game.Player]agent.Agent) Engine {
	for _, p := range []game.Player{game.P1, game.P2} {
		a, ok := agents[p]
		if !ok {
			panic(fmt.Sprintf("no agent for %s", p))
		}
		if a.Player() != p {
			panic(fmt.Sprintf("agent for %s is bound to %s", p, a.Player()))
		}
	}
	return &localEngine{master: master, agents: agents}
}

// Run executes the entire game loop until the game is finished.
func (e *localEngine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	g := e.master.Game()
	gameMetric := metrics.GameMetric{
		StartingPiece: g.PieceFor(game.P1).String(),
		StartTime:     time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting with %s", g.CurrentPlayer(), g.CurrentPiece())

	turnCount := 1
	for g.State() != game.Finished && turnCount <= meta.MAX_TURNS {
		player := g.CurrentPlayer()
		a := e.agents[player]

		move, err := a.ProposeMove()
		if err != nil {
			return game.Unfinished, gameMetric, moveMetrics, fmt.Errorf("turn %d: %s: %w", turnCount, a.Kind(), err)
		}
		if err := e.master.Play(move); err != nil {
			return game.Unfinished, gameMetric, moveMetrics, fmt.Errorf("turn %d: %s proposed %v: %w", turnCount, a.Kind(), move, err)
		}

		search := a.LastSearch()
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       int(player),
			Move:         move.String(),
			SearchMetric: search,
		})
		log.Debug().
			Int("turn", turnCount).
			Str("engine", a.Kind().String()).
			Stringer("move", move).
			Int("nodes", search.Nodes).
			Dur("duration", search.Duration).
			Msg("played move")
		turnCount++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Result = g.Result().String()

	if g.State() == game.Finished {
		log.Info().Msgf("game ended with %s after %d moves", g.Result(), gameMetric.TotalMoves)
	} else {
		log.Warn().Msgf("stopped after %d turns (game unfinished)", meta.MAX_TURNS)
	}
	return g.Result(), gameMetric, moveMetrics, nil
}
