package gamemaster

import (
	"errors"
	"fmt"
	"mnk/game"

	"github.com/rs/zerolog/log"
)

var ErrResultMismatch = errors.New("recorded result does not match the replayed game")

// Record holds the fields of a parsed game record. Moves have been checked for syntax
// only; Replay validates them against the rules.
type Record struct {
	Rows          int
	Cols          int
	WinCount      int
	Rule          game.PlacementRule
	Player1Choice game.Piece
	Moves         []game.Move
	Result        game.Result // Undefined when the record states none
}

// Parameters returns the board parameters of the record.
func (r Record) Parameters() game.Parameters {
	return game.Parameters{
		Size:     game.BoardSize{Rows: r.Rows, Cols: r.Cols},
		WinCount: r.WinCount,
		Rule:     r.Rule,
	}
}

// Replay sets up the recorded game and plays every recorded move through the rules.
func Replay(r Record) (*Master, error) {
	m, err := NewMaster(r.Parameters(), r.Player1Choice)
	if err != nil {
		return nil, err
	}
	for i, move := range r.Moves {
		if err := m.Play(move); err != nil {
			return nil, fmt.Errorf("replaying move %d: %w", i+1, err)
		}
	}

	result := m.game.Result()
	if r.Result != game.Undefined && r.Result != result {
		return nil, fmt.Errorf("%w: recorded %s, replayed %s", ErrResultMismatch, r.Result, result)
	}
	log.Debug().Int("moves", len(r.Moves)).Stringer("result", result).Msg("replayed record")
	return m, nil
}

// Record captures the live game as a record that Replay accepts.
func (m *Master) Record() Record {
	b := m.game.Board()
	return Record{
		Rows:          b.Rows(),
		Cols:          b.Cols(),
		WinCount:      b.WinCount(),
		Rule:          b.PlacementRule(),
		Player1Choice: m.game.PieceFor(game.P1),
		Moves:         m.game.MoveHistory(),
		Result:        m.game.Result(),
	}
}
