package gamemaster

import (
	"mnk/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func ticTacToeRecord(moves ...game.Cell) Record {
	r := Record{Rows: 3, Cols: 3, WinCount: 3, Rule: game.Anywhere, Player1Choice: game.X}
	piece := game.X
	for _, c := range moves {
		r.Moves = append(r.Moves, game.Move{Cell: c, Piece: piece})
		piece = piece.Next()
	}
	return r
}

func TestReplay(t *testing.T) {
	diagonal := []game.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 2, Col: 2}}

	t.Run("rebuilds the recorded game", func(t *testing.T) {
		m, err := Replay(ticTacToeRecord(diagonal...))
		require.NoError(t, err)
		require.Equal(t, game.Finished, m.Game().State())
		require.Equal(t, game.Player1Victory, m.Game().Result())
		require.Len(t, m.Updates(), len(diagonal))
	})

	t.Run("accepts a matching result", func(t *testing.T) {
		r := ticTacToeRecord(diagonal...)
		r.Result = game.Player1Victory
		_, err := Replay(r)
		require.NoError(t, err)
	})

	t.Run("rejects a mismatching result", func(t *testing.T) {
		r := ticTacToeRecord(diagonal...)
		r.Result = game.Draw
		_, err := Replay(r)
		require.ErrorIs(t, err, ErrResultMismatch)
	})

	t.Run("accepts unfinished records", func(t *testing.T) {
		r := ticTacToeRecord(diagonal[:2]...)
		r.Result = game.Unfinished
		m, err := Replay(r)
		require.NoError(t, err)
		require.Equal(t, game.Playing, m.Game().State())
		require.Equal(t, game.P1, m.Game().CurrentPlayer())
	})

	t.Run("reports the offending move", func(t *testing.T) {
		r := ticTacToeRecord(game.Cell{Row: 0, Col: 0}, game.Cell{Row: 0, Col: 0})
		_, err := Replay(r)
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.ErrorContains(t, err, "move 2")
	})

	t.Run("rejects moves after the game ended", func(t *testing.T) {
		r := ticTacToeRecord(append(diagonal, game.Cell{Row: 2, Col: 0})...)
		_, err := Replay(r)
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.ErrorContains(t, err, "move 6")
	})

	t.Run("rejects a bad piece choice", func(t *testing.T) {
		r := ticTacToeRecord()
		r.Player1Choice = game.Blank
		_, err := Replay(r)
		require.ErrorIs(t, err, game.ErrInvalidPieceSelection)
	})

	t.Run("rejects a bad board", func(t *testing.T) {
		r := ticTacToeRecord()
		r.Rows = 0
		_, err := Replay(r)
		require.Error(t, err)
	})

	t.Run("round trips through Record", func(t *testing.T) {
		m, err := Replay(ticTacToeRecord(diagonal...))
		require.NoError(t, err)
		again, err := Replay(m.Record())
		require.NoError(t, err)
		require.Equal(t, m.Game().MoveHistory(), again.Game().MoveHistory())
		require.Equal(t, game.Player1Victory, again.Record().Result)
	})
}

func TestMasterPlay(t *testing.T) {
	params, _ := game.ConnectFour.Parameters()

	t.Run("drops pieces into columns", func(t *testing.T) {
		m, err := NewMaster(params, game.O)
		require.NoError(t, err)
		require.NoError(t, m.PlayColumn(3))
		require.NoError(t, m.PlayColumn(3))
		history := m.Game().MoveHistory()
		require.Equal(t, game.Move{Cell: game.Cell{Row: 5, Col: 3}, Piece: game.O}, history[0])
		require.Equal(t, game.Move{Cell: game.Cell{Row: 4, Col: 3}, Piece: game.X}, history[1])
	})

	t.Run("refuses a full column without changes", func(t *testing.T) {
		m, err := NewMaster(params, game.X)
		require.NoError(t, err)
		for i := 0; i < params.Size.Rows; i++ {
			require.NoError(t, m.PlayColumn(0))
		}
		err = m.PlayColumn(0)
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Len(t, m.Game().MoveHistory(), params.Size.Rows)
		require.Len(t, m.Updates(), params.Size.Rows)
	})

	t.Run("refuses unknown columns", func(t *testing.T) {
		m, err := NewMaster(params, game.X)
		require.NoError(t, err)
		require.ErrorIs(t, m.PlayColumn(7), game.ErrOutOfBounds)
	})

	t.Run("snapshots are independent", func(t *testing.T) {
		m, err := NewMaster(params, game.X)
		require.NoError(t, err)
		require.NoError(t, m.PlayColumn(1))
		require.NoError(t, m.PlayColumn(2))
		updates := m.Updates()
		require.Len(t, updates[0].Game.MoveHistory(), 1)
		require.Len(t, updates[1].Game.MoveHistory(), 2)
		require.Equal(t, game.Cell{Row: 5, Col: 2}, updates[1].Move.Cell)
	})

	t.Run("places pieces on cells", func(t *testing.T) {
		tic, _ := game.TicTacToe.Parameters()
		m, err := NewMaster(tic, game.X)
		require.NoError(t, err)
		require.NoError(t, m.PlayCell(game.Cell{Row: 1, Col: 1}))
		require.ErrorIs(t, m.PlayCell(game.Cell{Row: 1, Col: 1}), game.ErrIllegalMove)
		require.ErrorIs(t, m.PlayCell(game.Cell{Row: 3, Col: 1}), game.ErrOutOfBounds)
		require.Equal(t, game.O, m.Game().CurrentPiece())
	})

	t.Run("resets", func(t *testing.T) {
		m, err := NewMaster(params, game.X)
		require.NoError(t, err)
		require.NoError(t, m.PlayColumn(1))
		require.NoError(t, m.Reset(game.O))
		require.Empty(t, m.Updates())
		require.Empty(t, m.Game().MoveHistory())
		require.Equal(t, game.O, m.Game().CurrentPiece())
	})
}

func TestNotation(t *testing.T) {
	t.Run("parses cells", func(t *testing.T) {
		c, err := ParseCell("a1")
		require.NoError(t, err)
		require.Equal(t, game.Cell{Row: 0, Col: 0}, c)
		c, err = ParseCell(" C12 ")
		require.NoError(t, err)
		require.Equal(t, game.Cell{Row: 11, Col: 2}, c)
		require.Equal(t, "c12", FormatCell(c))
	})

	t.Run("rejects malformed cells", func(t *testing.T) {
		for _, s := range []string{"", "a", "1", "a0", "ab1", "?1", "a1x"} {
			_, err := ParseCell(s)
			require.Error(t, err, s)
		}
	})

	t.Run("parses columns", func(t *testing.T) {
		col, err := ParseColumn("d")
		require.NoError(t, err)
		require.Equal(t, 3, col)
		_, err = ParseColumn("d4")
		require.Error(t, err)
	})

	t.Run("plays by placement rule", func(t *testing.T) {
		params, _ := game.ConnectFour.Parameters()
		c4, err := NewMaster(params, game.X)
		require.NoError(t, err)
		require.NoError(t, c4.PlayNotation("g"))
		require.Equal(t, game.Cell{Row: 5, Col: 6}, c4.Game().MoveHistory()[0].Cell)
		require.Error(t, c4.PlayNotation("g1"))

		tic, _ := game.TicTacToe.Parameters()
		t3, err := NewMaster(tic, game.X)
		require.NoError(t, err)
		require.NoError(t, t3.PlayNotation("b3"))
		require.Equal(t, game.Cell{Row: 2, Col: 1}, t3.Game().MoveHistory()[0].Cell)
	})
}
