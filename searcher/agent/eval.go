package agent

import (
	"fmt"
	"mnk/game"
	"mnk/searcher"

	"github.com/rs/zerolog/log"
)

// searchAgent plays the best move of a game tree searched to a fixed depth.
type searchAgent struct {
	base
	evaluate searcher.EvaluationFn
	search   searcher.SearchFn
}

func newSearchAgent(b base, evaluate searcher.EvaluationFn, search searcher.SearchFn) Agent {
	b.plies = max(b.plies, 1)
	return &searchAgent{base: b, evaluate: evaluate, search: search}
}

func (a *searchAgent) ProposeMove() (game.Move, error) {
	if err := a.begin(); err != nil {
		return game.Move{}, err
	}
	defer a.end()

	tree := searcher.Generate(a.game, a.plies, nil, searcher.WithMetrics(a.metrics))
	tree.Evaluate(a.plies, a.evaluate, a.search)
	move, score, err := tree.BestMove()
	if err != nil {
		return game.Move{}, fmt.Errorf("%s found no move: %w", a.kind, err)
	}
	log.Debug().
		Str("engine", a.kind.String()).
		Stringer("move", move).
		Float64("score", score).
		Msg("proposed move")
	return move, nil
}
