package searcher

import (
	"mnk/game"

	"golang.org/x/exp/rand"
)

// EvaluateOutcome scores finished positions only. A win found deeper in the tree is
// worth a little less than an earlier one.
func EvaluateOutcome(n *Node, depth int, _ bool) float64 {
	g := n.game
	if g.State() != game.Finished {
		return DrawUnit
	}
	switch g.Result() {
	case game.Player1Victory:
		return victoryScore(depth)
	case game.Player2Victory:
		return -victoryScore(depth)
	default:
		return DrawUnit
	}
}

func victoryScore(depth int) float64 {
	return VictoryUnit - DepthPenalty*float64(depth-1)
}

// RandomEvaluation returns an evaluation drawing uniformly from [-1, 1) with r.
func RandomEvaluation(r *rand.Rand) EvaluationFn {
	return func(*Node, int, bool) float64 {
		return 2*r.Float64() - 1
	}
}

// EvaluateRandom draws from the package level source.
func EvaluateRandom(_ *Node, _ int, _ bool) float64 {
	return 2*rand.Float64() - 1
}
