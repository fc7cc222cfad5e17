package game

import (
	"fmt"
	"strings"
)

// Player identifies who is moving. Player 1 always moves first.
type Player int

const (
	P1 Player = iota + 1
	P2
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	switch p {
	case P1:
		return P2
	case P2:
		return P1
	}
	panic(fmt.Sprintf("unknown player %d", int(p)))
}

func (p Player) String() string {
	switch p {
	case P1:
		return "Player1"
	case P2:
		return "Player2"
	}
	return "?"
}

// PlacementRule constrains where a piece may be placed.
type PlacementRule int

const (
	// Anywhere permits any unoccupied cell (tic-tac-toe like).
	Anywhere PlacementRule = iota
	// ColumnStack requires pieces to stack from the bottom of a column (Connect Four like).
	ColumnStack
)

func (r PlacementRule) String() string {
	switch r {
	case Anywhere:
		return "anywhere"
	case ColumnStack:
		return "columnstack"
	}
	return "?"
}

func ParsePlacementRule(s string) (PlacementRule, error) {
	switch strings.ToLower(s) {
	case "anywhere":
		return Anywhere, nil
	case "columnstack":
		return ColumnStack, nil
	}
	return Anywhere, fmt.Errorf("unknown piece placement rule: %q", s)
}

// State is the lifecycle of a game. It only ever moves forward until Reset.
type State int

const (
	Init State = iota
	PiecesChosen
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case Init:
		return "init"
	case PiecesChosen:
		return "pieces chosen"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	}
	return "?"
}

type Result int

const (
	Undefined Result = iota
	Unfinished
	Player1Victory
	Player2Victory
	Draw
)

func (r Result) String() string {
	switch r {
	case Undefined:
		return "Undefined"
	case Unfinished:
		return "Unfinished"
	case Player1Victory:
		return "1-0"
	case Player2Victory:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "?"
}

func ParseResult(s string) (Result, error) {
	switch strings.ToLower(s) {
	case "undefined":
		return Undefined, nil
	case "unfinished":
		return Unfinished, nil
	case "1-0":
		return Player1Victory, nil
	case "0-1":
		return Player2Victory, nil
	case "1/2-1/2":
		return Draw, nil
	}
	return Undefined, fmt.Errorf("unknown result: %q", s)
}

// victoryFor maps the player who completed a winning run to its Result.
func victoryFor(p Player) Result {
	if p == P1 {
		return Player1Victory
	}
	return Player2Victory
}
