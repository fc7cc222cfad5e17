package gamemaster

import (
	"fmt"
	"mnk/game"
	"strconv"
	"strings"
	"unicode"
)

// Update is a snapshot taken after a successful move.
type Update struct {
	Move game.Move
	Game *game.Game
}

// Master owns a live game at the boundary with drivers: it turns their input into moves
// and keeps a snapshot of the game after each one.
type Master struct {
	game    *game.Game
	updates []Update
}

func NewMaster(params game.Parameters, player1Piece game.Piece) (*Master, error) {
	board, err := game.NewBoardFromParameters(params)
	if err != nil {
		return nil, err
	}
	m := &Master{game: game.NewGame(board)}
	if err := m.game.ChoosePlayer1Piece(player1Piece); err != nil {
		return nil, err
	}
	return m, nil
}

// Game returns the live game. Agents may read it; moves go through Play.
func (m *Master) Game() *game.Game { return m.game }

// Updates returns the snapshots taken so far, oldest first.
func (m *Master) Updates() []Update {
	return append([]Update(nil), m.updates...)
}

// Reset starts a new game on the same board with Player 1 playing player1Piece.
func (m *Master) Reset(player1Piece game.Piece) error {
	m.game.Reset()
	m.updates = nil
	return m.game.ChoosePlayer1Piece(player1Piece)
}

// Play applies move to the live game. A rejected move leaves the game untouched.
func (m *Master) Play(move game.Move) error {
	if err := m.game.ApplyMove(move); err != nil {
		return err
	}
	m.updates = append(m.updates, Update{Move: move, Game: m.game.Copy()})
	return nil
}

// PlayCell plays the current player's piece at cell.
func (m *Master) PlayCell(cell game.Cell) error {
	return m.Play(game.Move{Cell: cell, Piece: m.game.CurrentPiece()})
}

// PlayColumn drops the current player's piece into col.
func (m *Master) PlayColumn(col int) error {
	cell, err := m.game.Board().DropCell(col)
	if err != nil {
		return err
	}
	return m.PlayCell(cell)
}

// PlayNotation plays a column letter ("c") on stacking boards and a cell ("c2") on others.
func (m *Master) PlayNotation(s string) error {
	if m.game.Board().PlacementRule() == game.ColumnStack {
		col, err := ParseColumn(s)
		if err != nil {
			return err
		}
		return m.PlayColumn(col)
	}
	cell, err := ParseCell(s)
	if err != nil {
		return err
	}
	return m.PlayCell(cell)
}

// ParseColumn reads a column letter, "a" being the leftmost column.
func ParseColumn(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
		return 0, fmt.Errorf("invalid column %q", s)
	}
	return int(s[0] - 'a'), nil
}

// ParseCell reads a column letter followed by a 1-based row number, "a1" being the top left.
func ParseCell(s string) (game.Cell, error) {
	s = strings.TrimSpace(s)
	split := strings.IndexFunc(s, unicode.IsDigit)
	if split != 1 {
		return game.Cell{}, fmt.Errorf("invalid cell %q", s)
	}
	col, err := ParseColumn(s[:split])
	if err != nil {
		return game.Cell{}, err
	}
	row, err := strconv.Atoi(s[split:])
	if err != nil || row < 1 {
		return game.Cell{}, fmt.Errorf("invalid row in cell %q", s)
	}
	return game.Cell{Row: row - 1, Col: col}, nil
}

// FormatCell is the inverse of ParseCell.
func FormatCell(c game.Cell) string {
	return fmt.Sprintf("%c%d", 'a'+rune(c.Col), c.Row+1)
}
