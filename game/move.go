package game

import "fmt"

// Cell is a zero-indexed (row, col) coordinate. Row 0 is the top of the board.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// BoardSize is the (rows, cols) extent of a board.
type BoardSize struct {
	Rows int
	Cols int
}

// Move places Piece on Cell.
type Move struct {
	Cell  Cell
	Piece Piece
}

// NewMove returns a move, rejecting blank pieces and negative coordinates.
// Upper bounds are checked by the board the move is applied to.
func NewMove(cell Cell, piece Piece) (Move, error) {
	if piece == Blank {
		return Move{}, illegal("piece cannot be blank")
	}
	if cell.Row < 0 {
		return Move{}, illegal("row cannot be negative (%d)", cell.Row)
	}
	if cell.Col < 0 {
		return Move{}, illegal("col cannot be negative (%d)", cell.Col)
	}
	return Move{Cell: cell, Piece: piece}, nil
}

func (m Move) Row() int { return m.Cell.Row }
func (m Move) Col() int { return m.Cell.Col }

func (m Move) String() string {
	return fmt.Sprintf("Move(%d, %d, %s)", m.Cell.Row, m.Cell.Col, m.Piece)
}
