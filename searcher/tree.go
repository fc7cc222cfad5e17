package searcher

import (
	"fmt"
	"mnk/experiments/metrics"
	"mnk/game"

	"github.com/rs/zerolog/log"
)

// GameTree is the bounded expansion of a game position. Scores are filled in by Evaluate.
type GameTree struct {
	root      *Node
	plies     int
	generate  MoveGenerator
	evaluated bool
	metrics   metrics.Collector
}

// Generate expands g up to maxPlies moves deep. The live game is never touched: the root
// holds a copy and every child applies its candidate to a copy of its parent's game.
// A nil generate means game.GenerateMoves.
func Generate(g *game.Game, maxPlies int, generate MoveGenerator, opts ...Option) *GameTree {
	if generate == nil {
		generate = game.GenerateMoves
	}
	t := &GameTree{
		plies:    clampPlies(maxPlies),
		generate: generate,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.root = newNode(nil, g.Copy(), game.Move{})
	t.metrics.AddNode()
	t.expand(t.root, t.plies)
	log.Debug().Int("plies", t.plies).Int("nodes", t.root.Size()).Msg("generated game tree")
	return t
}

func (t *GameTree) expand(n *Node, plies int) {
	if plies <= 0 || n.game.State() == game.Finished {
		return
	}
	for move := range t.generate(n.game) {
		next := n.game.Copy()
		if err := next.ApplyMove(move); err != nil {
			panic(fmt.Sprintf("move generator produced an illegal move %v: %v", move, err))
		}
		child := newNode(n, next, move)
		n.children = append(n.children, child)
		t.metrics.AddNode()
		t.expand(child, plies-1)
	}
}

func (t *GameTree) Root() *Node { return t.root }
func (t *GameTree) Plies() int  { return t.plies }

// Evaluate forgets any previous scores and searches plies deep from the root with the
// root's role. It returns the root's score.
func (t *GameTree) Evaluate(plies int, evaluate EvaluationFn, search SearchFn) float64 {
	t.root.clearScores()
	counted := func(n *Node, depth int, maximizer bool) float64 {
		t.metrics.AddLeaf()
		return evaluate(n, depth, maximizer)
	}
	score := search(t.root, clampPlies(plies), t.root.Maximizer(), counted)
	t.evaluated = true
	t.metrics.SetScored(t.root.scoredCount())
	return score
}

// BestMove returns the first root child with the best score for the player to move at the
// root, along with that score.
func (t *GameTree) BestMove() (game.Move, float64, error) {
	if len(t.root.children) == 0 {
		return game.Move{}, 0, ErrNoMoves
	}
	if !t.evaluated {
		return game.Move{}, 0, ErrNotEvaluated
	}

	maximizer := t.root.Maximizer()
	var best *Node
	for _, child := range t.root.children {
		if !child.scored {
			continue
		}
		if best == nil ||
			(maximizer && child.score > best.score) ||
			(!maximizer && child.score < best.score) {
			best = child
		}
	}
	if best == nil {
		return game.Move{}, 0, ErrNotEvaluated
	}
	return best.move, best.score, nil
}
