package engine

import (
	"mnk/experiments/metrics"
	"mnk/game"
)

type Engine interface {
	// Run plays the game until it finishes or the turn limit is reached
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
