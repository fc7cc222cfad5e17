package game

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"
)

const cellWidth = 3

// Pretty draws the board as text. With coords, columns are headed by letters and
// rows numbered from 1.
func (b *Board) Pretty(coords bool, format PieceFormat) string {
	return b.render(coords, func(p Piece) string { return p.Pretty(format) })
}

// Render draws the board with coordinates, coloring X red and O yellow in the
// output's color profile.
func Render(b *Board, out *termenv.Output) string {
	red := out.Color("#E88388")
	yellow := out.Color("#DBAB79")
	return b.render(true, func(p Piece) string {
		glyph := p.Pretty(ASCIIXO)
		switch p {
		case X:
			return out.String(glyph).Foreground(red).Bold().String()
		case O:
			return out.String(glyph).Foreground(yellow).Bold().String()
		}
		return glyph
	})
}

func (b *Board) render(coords bool, glyph func(Piece) string) string {
	shift := 0
	if coords {
		shift = 2
	}
	margin := strings.Repeat(" ", shift)
	lineWidth := cellWidth*b.size.Cols + (b.size.Cols - 1)
	hline := margin + strings.Repeat("-", lineWidth)

	var lines []string
	if coords {
		heading := make([]string, b.size.Cols)
		for col := range heading {
			heading[col] = center(string(rune('a'+col)), 1)
		}
		lines = append(lines, margin+strings.Join(heading, " "))
	}

	for row := 0; row < b.size.Rows; row++ {
		cells := make([]string, b.size.Cols)
		for col := range cells {
			p := b.at(row, col)
			cells[col] = center(glyph(p), utf8.RuneCountInString(p.Pretty(ASCIIXO)))
		}
		line := strings.Join(cells, "|")
		if coords {
			num := strconv.Itoa(row + 1)
			line = num + strings.Repeat(" ", max(shift-len(num), 0)) + line
		}
		lines = append(lines, line)
		if row < b.size.Rows-1 {
			lines = append(lines, hline)
		}
	}
	return strings.Join(lines, "\n")
}

// center pads s, whose visible width is width, to cellWidth.
func center(s string, width int) string {
	pad := cellWidth - width
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
