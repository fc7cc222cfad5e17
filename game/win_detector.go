package game

// direction is a (row, col) step along a scan line.
type direction struct {
	dRow int
	dCol int
}

var (
	horizontal = direction{0, 1}
	vertical   = direction{1, 0}
	slash      = direction{-1, 1} // Up and to the right
	backslash  = direction{1, 1}  // Down and to the right
)

// winDetector scans the rows, columns and both diagonals of a board for a run of
// winCount identical pieces.
type winDetector struct {
	board *Board
}

func newWinDetector(b *Board) *winDetector {
	return &winDetector{board: b}
}

func (w *winDetector) win() bool {
	rows, cols := w.board.size.Rows, w.board.size.Cols

	// - from the left column, | from the top row
	for row := 0; row < rows; row++ {
		if w.scan(Cell{row, 0}, horizontal) {
			return true
		}
	}
	for col := 0; col < cols; col++ {
		if w.scan(Cell{0, col}, vertical) {
			return true
		}
	}

	// / from the left column then along the bottom row
	for row := 0; row < rows; row++ {
		if w.scan(Cell{row, 0}, slash) {
			return true
		}
	}
	for col := 1; col < cols; col++ {
		if w.scan(Cell{rows - 1, col}, slash) {
			return true
		}
	}

	// \ from the left column then along the top row
	for row := 0; row < rows; row++ {
		if w.scan(Cell{row, 0}, backslash) {
			return true
		}
	}
	for col := 1; col < cols; col++ {
		if w.scan(Cell{0, col}, backslash) {
			return true
		}
	}

	return false
}

// scan walks from start in dir until the board edge, returning true as soon as a
// winning run is seen.
func (w *winDetector) scan(start Cell, dir direction) bool {
	rows, cols := w.board.size.Rows, w.board.size.Cols
	counter := runCounter{winCount: w.board.winCount}
	for row, col := start.Row, start.Col; row >= 0 && row < rows && col >= 0 && col < cols; row, col = row+dir.dRow, col+dir.dCol {
		if counter.put(w.board.at(row, col)) {
			return true
		}
	}
	return false
}

// runCounter tracks the length of the current run of identical non-blank pieces.
type runCounter struct {
	winCount int
	prev     Piece
	run      int
}

// put feeds the next piece of a scan line and reports whether it completes a win.
func (r *runCounter) put(p Piece) bool {
	switch {
	case p == Blank:
		r.run = 0
	case r.run == 0 || p != r.prev:
		r.run = 1
	default:
		r.run++
	}
	r.prev = p
	return r.run >= r.winCount
}
