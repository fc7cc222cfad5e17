package searcher

import (
	"mnk/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var searches = map[string]SearchFn{
	"minimax":    Minimax,
	"alpha-beta": AlphaBeta,
}

func TestSearchFindsTactics(t *testing.T) {
	for name, search := range searches {
		t.Run(name+" takes an immediate win", func(t *testing.T) {
			g := newTicTacToe(t,
				game.Cell{Row: 0, Col: 0}, game.Cell{Row: 1, Col: 0},
				game.Cell{Row: 0, Col: 1}, game.Cell{Row: 1, Col: 1})
			tree := Generate(g, 3, nil)
			score := tree.Evaluate(3, EvaluateOutcome, search)
			move, best, err := tree.BestMove()
			require.NoError(t, err)
			require.Equal(t, game.Cell{Row: 0, Col: 2}, move.Cell)
			require.InDelta(t, VictoryUnit, best, 1e-9)
			require.InDelta(t, VictoryUnit, score, 1e-9)
		})

		t.Run(name+" blocks the opponent", func(t *testing.T) {
			g := newTicTacToe(t,
				game.Cell{Row: 0, Col: 0}, game.Cell{Row: 1, Col: 1},
				game.Cell{Row: 0, Col: 1})
			tree := Generate(g, 2, nil)
			tree.Evaluate(2, EvaluateOutcome, search)
			move, best, err := tree.BestMove()
			require.NoError(t, err)
			require.Equal(t, game.Cell{Row: 0, Col: 2}, move.Cell)
			require.Equal(t, DrawUnit, best)
		})

		t.Run(name+" prefers the quicker win", func(t *testing.T) {
			// X wins on the spot at the bottom right, or forks with the middle row first.
			g := newTicTacToe(t,
				game.Cell{Row: 0, Col: 0}, game.Cell{Row: 0, Col: 1},
				game.Cell{Row: 1, Col: 1}, game.Cell{Row: 2, Col: 0})
			tree := Generate(g, 3, nil)
			tree.Evaluate(3, EvaluateOutcome, search)
			move, best, err := tree.BestMove()
			require.NoError(t, err)
			require.Equal(t, game.Cell{Row: 2, Col: 2}, move.Cell)
			require.InDelta(t, VictoryUnit, best, 1e-9)
		})
	}
}

func TestMinimaxScoresEveryNode(t *testing.T) {
	tree := Generate(newTicTacToe(t, game.Cell{Row: 0, Col: 0}), 3, nil)
	tree.Evaluate(3, EvaluateOutcome, Minimax)
	require.Equal(t, tree.Root().Size(), tree.Root().scoredCount())
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	variants := []struct {
		name   string
		params game.Parameters
		plies  int
	}{
		{"tic-tac-toe", game.Parameters{Size: game.BoardSize{Rows: 3, Cols: 3}, WinCount: 3, Rule: game.Anywhere}, 4},
		{"small connect", game.Parameters{Size: game.BoardSize{Rows: 4, Cols: 4}, WinCount: 3, Rule: game.ColumnStack}, 4},
		{"wide board", game.Parameters{Size: game.BoardSize{Rows: 3, Cols: 5}, WinCount: 3, Rule: game.Anywhere}, 3},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			for trial := 0; trial < 60; trial++ {
				g := randomPosition(t, r, v.params)
				if g.State() == game.Finished {
					continue
				}
				tree := Generate(g, v.plies, nil)

				minimaxScore := tree.Evaluate(v.plies, EvaluateOutcome, Minimax)
				minimaxMove, minimaxBest, err := tree.BestMove()
				require.NoError(t, err)
				minimaxScored := tree.Root().scoredCount()

				alphaBetaScore := tree.Evaluate(v.plies, EvaluateOutcome, AlphaBeta)
				alphaBetaMove, alphaBetaBest, err := tree.BestMove()
				require.NoError(t, err)

				require.Equal(t, minimaxScore, alphaBetaScore, "trial %d history %v", trial, g.MoveHistory())
				require.Equal(t, minimaxMove, alphaBetaMove, "trial %d history %v", trial, g.MoveHistory())
				require.Equal(t, minimaxBest, alphaBetaBest)
				require.LessOrEqual(t, tree.Root().scoredCount(), minimaxScored)
			}
		})
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	tree := Generate(newTicTacToe(t, game.Cell{Row: 1, Col: 1}), 4, nil)
	tree.Evaluate(4, EvaluateOutcome, Minimax)
	full := tree.Root().scoredCount()
	tree.Evaluate(4, EvaluateOutcome, AlphaBeta)
	require.Less(t, tree.Root().scoredCount(), full)
}

// randomPosition plays a random number of random legal moves on a fresh board.
func randomPosition(t *testing.T, r *rand.Rand, params game.Parameters) *game.Game {
	t.Helper()
	board, err := game.NewBoardFromParameters(params)
	require.NoError(t, err)
	g := game.NewGame(board)
	require.NoError(t, g.ChoosePlayer1Piece(game.Selectable()[r.Intn(2)]))

	plies := r.Intn(board.Capacity() / 2)
	for i := 0; i < plies && g.State() != game.Finished; i++ {
		var moves []game.Move
		for m := range game.GenerateMoves(g) {
			moves = append(moves, m)
		}
		require.NoError(t, g.ApplyMove(moves[r.Intn(len(moves))]))
	}
	return g
}
