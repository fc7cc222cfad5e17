package game

import (
	"fmt"
	"strings"
)

// Parameters fully describe a board variant.
type Parameters struct {
	Size     BoardSize
	WinCount int
	Rule     PlacementRule
}

// Choice is a fixed menu of standard variants so callers don't have to spell out
// the size, win count and placement rule.
type Choice int

const (
	UndefinedChoice Choice = iota
	TicTacToe
	ConnectFour
)

func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(s) {
	case "undefined":
		return UndefinedChoice, nil
	case "tictactoe":
		return TicTacToe, nil
	case "connectfour":
		return ConnectFour, nil
	}
	return UndefinedChoice, fmt.Errorf("unknown game choice: %q", s)
}

func ParseChoiceAbbrev(s string) (Choice, error) {
	switch strings.ToLower(s) {
	case "undefined":
		return UndefinedChoice, nil
	case "t3":
		return TicTacToe, nil
	case "c4":
		return ConnectFour, nil
	}
	return UndefinedChoice, fmt.Errorf("unknown game choice abbreviation: %q", s)
}

func (c Choice) String() string {
	switch c {
	case TicTacToe:
		return "tictactoe"
	case ConnectFour:
		return "connectfour"
	}
	return "undefined"
}

// Parameters returns the variant's parameters; ok is false for UndefinedChoice.
func (c Choice) Parameters() (params Parameters, ok bool) {
	switch c {
	case TicTacToe:
		return Parameters{Size: BoardSize{Rows: 3, Cols: 3}, WinCount: 3, Rule: Anywhere}, true
	case ConnectFour:
		return Parameters{Size: BoardSize{Rows: 6, Cols: 7}, WinCount: 4, Rule: ColumnStack}, true
	}
	return Parameters{}, false
}

// NewStandardGame returns a fresh game of the given variant with Player 1 playing piece.
func NewStandardGame(c Choice, piece Piece) (*Game, error) {
	params, ok := c.Parameters()
	if !ok {
		return nil, fmt.Errorf("no parameters for game choice %s", c)
	}
	board, err := NewBoardFromParameters(params)
	if err != nil {
		return nil, err
	}
	g := NewGame(board)
	if err := g.ChoosePlayer1Piece(piece); err != nil {
		return nil, err
	}
	return g, nil
}
