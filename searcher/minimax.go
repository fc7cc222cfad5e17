package searcher

import "math"

// Minimax scores every node of the subtree down to depth plies. Player 1 maximizes.
func Minimax(n *Node, depth int, maximizer bool, evaluate EvaluationFn) float64 {
	if depth == 0 || n.IsLeaf() {
		score := evaluate(n, n.depth, maximizer)
		n.setScore(score)
		return score
	}

	best := math.Inf(1)
	if maximizer {
		best = math.Inf(-1)
	}
	for _, child := range n.children {
		value := Minimax(child, depth-1, !maximizer, evaluate)
		if maximizer {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	n.setScore(best)
	return best
}

// AlphaBeta computes the same root value and best move as Minimax but skips the children
// that cannot change the result. Skipped subtrees stay unscored.
func AlphaBeta(n *Node, depth int, maximizer bool, evaluate EvaluationFn) float64 {
	return alphaBeta(n, depth, math.Inf(-1), math.Inf(1), maximizer, evaluate)
}

// Cutoffs are strict so that a child tying the best score found so far is still searched
// and the first best child is kept.
func alphaBeta(n *Node, depth int, alpha, beta float64, maximizer bool, evaluate EvaluationFn) float64 {
	if depth == 0 || n.IsLeaf() {
		score := evaluate(n, n.depth, maximizer)
		n.setScore(score)
		return score
	}

	var best float64
	if maximizer {
		best = math.Inf(-1)
		for _, child := range n.children {
			best = max(best, alphaBeta(child, depth-1, alpha, beta, false, evaluate))
			if best > beta {
				break
			}
			alpha = max(alpha, best)
		}
	} else {
		best = math.Inf(1)
		for _, child := range n.children {
			best = min(best, alphaBeta(child, depth-1, alpha, beta, true, evaluate))
			if best < alpha {
				break
			}
			beta = min(beta, best)
		}
	}
	n.setScore(best)
	return best
}
