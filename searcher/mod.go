package searcher

import (
	"errors"
	"iter"
	"mnk/game"
)

// Scores are on Player 1's scale: positive favors Player 1, negative favors
// Player 2 and values near zero are draw-ish.

// EvaluationFn scores a leaf. depth is the node's distance in plies from the root and
// maximizer is the role the search assigned to the node.
type EvaluationFn func(n *Node, depth int, maximizer bool) float64

// SearchFn scores n by searching depth plies below it, assigns the score to n and
// returns it.
type SearchFn func(n *Node, depth int, maximizer bool, evaluate EvaluationFn) float64

// MoveGenerator yields the candidate moves for the player to move. Every candidate must
// be legal.
type MoveGenerator func(g *game.Game) iter.Seq[game.Move]

var (
	ErrNoMoves      = errors.New("no moves to choose from")
	ErrNotEvaluated = errors.New("game tree has not been evaluated")
)
