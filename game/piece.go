package game

import "fmt"

type Piece int

const (
	Blank Piece = iota
	X
	O
)

// PieceFormat selects how pieces are drawn by Board.Pretty.
type PieceFormat int

const (
	ASCIIXO PieceFormat = iota
	RedYellowCircles
	EmojiXO
)

// Selectable returns the pieces a player may choose.
func Selectable() []Piece {
	return []Piece{X, O}
}

// Next returns the opposing piece, i.e. X -> O. Only X and O have a successor.
func (p Piece) Next() Piece {
	switch p {
	case X:
		return O
	case O:
		return X
	}
	panic("only X and O pieces are sequencable")
}

func (p Piece) String() string {
	return p.Pretty(ASCIIXO)
}

func (p Piece) Pretty(format PieceFormat) string {
	var glyphs [3]string
	switch format {
	case ASCIIXO:
		glyphs = [3]string{"_", "X", "O"}
	case RedYellowCircles:
		glyphs = [3]string{"_", "🔴", "🟡"}
	case EmojiXO:
		glyphs = [3]string{"⬛", "❌", "⭕"}
	default:
		return "?"
	}
	if p < Blank || p > O {
		return "?"
	}
	return glyphs[p]
}

func ParsePiece(s string) (Piece, error) {
	switch s {
	case "_":
		return Blank, nil
	case "X":
		return X, nil
	case "O":
		return O, nil
	}
	return Blank, fmt.Errorf("unknown piece: %q", s)
}
