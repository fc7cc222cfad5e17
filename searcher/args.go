package searcher

import (
	"mnk/experiments/metrics"
	"mnk/meta"
)

// Scoring constants for the outcome evaluation

const VictoryUnit = 1.0   // Score of a victory on the next move
const DrawUnit = 0.0      // Score of a draw or an undecided position
const DepthPenalty = 0.01 // Deducted per extra ply, so the sooner the win the better

type Option func(t *GameTree)

// WithMetrics reports generated nodes and leaf evaluations to collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(t *GameTree) {
		if collector != nil {
			t.metrics = collector
		}
	}
}

func clampPlies(plies int) int {
	return min(max(plies, 0), meta.MAX_PLIES)
}
