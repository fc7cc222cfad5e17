package experiments

import (
	"fmt"
	"mnk/game"
)

// Stats tallies the results of a series of games.
type Stats struct {
	Games  int
	Counts map[game.Result]int
}

func NewStats() Stats {
	return Stats{Counts: make(map[game.Result]int)}
}

func (s *Stats) Add(r game.Result) {
	if s.Counts == nil {
		s.Counts = make(map[game.Result]int)
	}
	s.Games++
	s.Counts[r]++
}

func (s *Stats) merge(other Stats) {
	if s.Counts == nil {
		s.Counts = make(map[game.Result]int)
	}
	s.Games += other.Games
	for r, n := range other.Counts {
		s.Counts[r] += n
	}
}

// Rate returns the share of games that ended with r.
func (s Stats) Rate(r game.Result) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Counts[r]) / float64(s.Games)
}

// Summary returns a "<result>: count (pct %)" line for each decisive result and draws.
func (s Stats) Summary() []string {
	results := []game.Result{game.Player1Victory, game.Player2Victory, game.Draw}
	if s.Counts[game.Unfinished] > 0 {
		results = append(results, game.Unfinished)
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%-10s: %d (%.1f %%)", r, s.Counts[r], s.Rate(r)*100))
	}
	return lines
}
