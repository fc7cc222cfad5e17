package game

import (
	"fmt"
	"iter"
	"mnk/utils"
)

// NoRow is returned by TopEmptyRowForColumn for a full column.
const NoRow = -1

// Board implements an abstract m,n,k-game board: a rows x cols grid, the run length
// needed to win and the rule constraining where pieces may be placed.
//
// Gravity is not simulated. Under ColumnStack a move must already name the lowest
// empty cell of its column; DropCell computes that cell from a bare column.
type Board struct {
	size     BoardSize
	winCount int
	rule     PlacementRule
	cells    []Piece // Row-major, len = rows*cols
	detector *winDetector
}

func NewBoard(size BoardSize, winCount int, rule PlacementRule) (*Board, error) {
	if size.Rows < 1 || size.Cols < 1 {
		return nil, fmt.Errorf("board size must be at least 1x1, got %dx%d", size.Rows, size.Cols)
	}
	if winCount < 1 {
		return nil, fmt.Errorf("win count must be at least 1, got %d", winCount)
	}
	if rule != Anywhere && rule != ColumnStack {
		return nil, fmt.Errorf("unknown placement rule %d", rule)
	}
	b := &Board{
		size:     size,
		winCount: winCount,
		rule:     rule,
		cells:    make([]Piece, size.Rows*size.Cols),
	}
	b.detector = newWinDetector(b)
	return b, nil
}

func NewBoardFromParameters(params Parameters) (*Board, error) {
	return NewBoard(params.Size, params.WinCount, params.Rule)
}

func (b *Board) Size() BoardSize              { return b.size }
func (b *Board) Rows() int                    { return b.size.Rows }
func (b *Board) Cols() int                    { return b.size.Cols }
func (b *Board) WinCount() int                { return b.winCount }
func (b *Board) PlacementRule() PlacementRule { return b.rule }
func (b *Board) Capacity() int                { return len(b.cells) }

// Reset clears every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Blank
	}
}

// InBounds reports whether cell lies inside the board.
func (b *Board) InBounds(cell Cell) bool {
	return utils.WithinBounds(
		[]int{cell.Row, cell.Col},
		[]int{0, 0},
		[]int{b.size.Rows, b.size.Cols},
	)
}

func (b *Board) index(cell Cell) int {
	return cell.Row*b.size.Cols + cell.Col
}

// at returns the piece at an in-bounds cell.
func (b *Board) at(row, col int) Piece {
	return b.cells[row*b.size.Cols+col]
}

func (b *Board) CellValue(cell Cell) (Piece, error) {
	if !b.InBounds(cell) {
		return Blank, fmt.Errorf("%w: cell %v on %dx%d board", ErrOutOfBounds, cell, b.size.Rows, b.size.Cols)
	}
	return b.cells[b.index(cell)], nil
}

// ApplyMove places the move's piece. It is the only mutator of cell contents and
// leaves the board untouched when it returns an error.
func (b *Board) ApplyMove(m Move) error {
	if m.Piece == Blank {
		return illegal("piece cannot be blank (%v)", m)
	}
	if !b.InBounds(m.Cell) {
		return fmt.Errorf("%w: %w: cell %v on %dx%d board (%v)",
			ErrIllegalMove, ErrOutOfBounds, m.Cell, b.size.Rows, b.size.Cols, m)
	}
	idx := b.index(m.Cell)
	if b.cells[idx] != Blank {
		return illegal("cell already occupied by piece (%v)", m)
	}
	if b.rule == ColumnStack {
		if row := b.topEmptyRow(m.Col()); m.Row() != row {
			return illegal("move must stack (%v)", m)
		}
	}
	b.cells[idx] = m.Piece
	return nil
}

// Full reports whether no blank cell remains.
func (b *Board) Full() bool {
	return b.EmptyCells() == 0
}

func (b *Board) EmptyCells() int {
	n := 0
	for _, p := range b.cells {
		if p == Blank {
			n++
		}
	}
	return n
}

// Win reports whether a run of WinCount identical pieces exists.
func (b *Board) Win() bool {
	return b.detector.win()
}

// TopEmptyRowForColumn returns the lowest empty cell's row in col. Pieces stack from
// the bottom row (Rows-1) upward. Returns NoRow if the column is full.
func (b *Board) TopEmptyRowForColumn(col int) (int, error) {
	if col < 0 || col >= b.size.Cols {
		return NoRow, fmt.Errorf("%w: column %d on %d column board", ErrOutOfBounds, col, b.size.Cols)
	}
	return b.topEmptyRow(col), nil
}

func (b *Board) topEmptyRow(col int) int {
	for row := b.size.Rows - 1; row >= 0; row-- {
		if b.at(row, col) == Blank {
			return row
		}
	}
	return NoRow
}

// DropCell returns the cell a piece dropped into col would land on.
func (b *Board) DropCell(col int) (Cell, error) {
	row, err := b.TopEmptyRowForColumn(col)
	if err != nil {
		return Cell{}, err
	}
	if row == NoRow {
		return Cell{}, illegal("column %d is full", col)
	}
	return Cell{Row: row, Col: col}, nil
}

// PlayableCells yields the legal placement targets under the board's placement rule:
// every blank cell for Anywhere, or each non-full column's drop target for ColumnStack.
// Each call returns a fresh iterator.
func (b *Board) PlayableCells() iter.Seq[Cell] {
	if b.rule == ColumnStack {
		return b.dropCells
	}
	return b.blankCells
}

func (b *Board) blankCells(yield func(Cell) bool) {
	for row := 0; row < b.size.Rows; row++ {
		for col := 0; col < b.size.Cols; col++ {
			if b.at(row, col) != Blank {
				continue
			}
			if !yield(Cell{Row: row, Col: col}) {
				return
			}
		}
	}
}

func (b *Board) dropCells(yield func(Cell) bool) {
	for col := 0; col < b.size.Cols; col++ {
		row := b.topEmptyRow(col)
		if row == NoRow {
			continue
		}
		if !yield(Cell{Row: row, Col: col}) {
			return
		}
	}
}

// Copy returns a board sharing no mutable state with b.
func (b *Board) Copy() *Board {
	cells := make([]Piece, len(b.cells))
	copy(cells, b.cells)

	c := &Board{
		size:     b.size,
		winCount: b.winCount,
		rule:     b.rule,
		cells:    cells,
	}
	c.detector = newWinDetector(c)
	return c
}
