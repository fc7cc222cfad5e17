package agent

import (
	"mnk/game"

	"golang.org/x/exp/rand"
)

// dummyAgent picks uniformly among the legal moves: any blank cell when pieces go
// anywhere, the top of a non-full column when they stack.
type dummyAgent struct {
	base
	rand *rand.Rand
}

func (a *dummyAgent) ProposeMove() (game.Move, error) {
	if err := a.begin(); err != nil {
		return game.Move{}, err
	}
	defer a.end()

	var moves []game.Move
	for m := range game.GenerateMoves(a.game) {
		moves = append(moves, m)
	}
	return moves[a.rand.Intn(len(moves))], nil
}
