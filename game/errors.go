package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrIllegalMove = errors.New("illegal move")

	ErrPieceSelection             = errors.New("piece selection")
	ErrInvalidPieceSelection      = fmt.Errorf("%w: invalid piece", ErrPieceSelection)
	ErrPieceSelectionsAlreadyMade = fmt.Errorf("%w: selections already made", ErrPieceSelection)
)

func illegal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, fmt.Sprintf(format, args...))
}
