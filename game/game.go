package game

import (
	"fmt"
	"iter"
)

// Game is the turn-taking state machine around a Board. It binds one piece to each
// player, enforces whose turn it is and derives the result after every move.
type Game struct {
	board   *Board
	state   State
	result  Result
	current Player
	pieces  map[Player]Piece
	players map[Piece]Player
	history []Move
}

func NewGame(board *Board) *Game {
	g := &Game{board: board}
	g.Reset()
	return g
}

// Reset clears the board and starts a new lifecycle in the Init state.
func (g *Game) Reset() {
	g.board.Reset()
	g.state = Init
	g.result = Unfinished
	g.current = P1
	g.pieces = make(map[Player]Piece, 2)
	g.players = make(map[Piece]Player, 2)
	g.history = nil
}

// Board exposes the game's board for queries. Mutate the game only through ApplyMove.
func (g *Game) Board() *Board         { return g.board }
func (g *Game) State() State          { return g.state }
func (g *Game) Result() Result        { return g.result }
func (g *Game) CurrentPlayer() Player { return g.current }

// CurrentPiece returns the piece bound to the player to move, or Blank before the
// pieces are chosen.
func (g *Game) CurrentPiece() Piece {
	return g.pieces[g.current]
}

func (g *Game) PieceFor(p Player) Piece {
	return g.pieces[p]
}

// PlayerFor returns the player bound to piece; ok is false before pieces are chosen.
func (g *Game) PlayerFor(piece Piece) (Player, bool) {
	p, ok := g.players[piece]
	return p, ok
}

// MoveHistory returns a copy of the moves applied so far, in order.
func (g *Game) MoveHistory() []Move {
	history := make([]Move, len(g.history))
	copy(history, g.history)
	return history
}

// ChoosePlayer1Piece binds piece to Player 1 and the other piece to Player 2. It may
// only be called once per lifecycle.
func (g *Game) ChoosePlayer1Piece(piece Piece) error {
	if g.state != Init {
		return fmt.Errorf("%w (player 1 has %s)", ErrPieceSelectionsAlreadyMade, g.pieces[P1])
	}
	if piece != X && piece != O {
		return fmt.Errorf("%w: %s", ErrInvalidPieceSelection, piece)
	}

	g.pieces[P1] = piece
	g.pieces[P2] = piece.Next()
	g.players[piece] = P1
	g.players[piece.Next()] = P2
	g.state = PiecesChosen
	return nil
}

// ApplyMove plays m for the current player. Board errors are returned unchanged.
func (g *Game) ApplyMove(m Move) error {
	switch g.state {
	case Init:
		return illegal("pieces must be chosen before moving (%v)", m)
	case Finished:
		return illegal("cannot move after a game has finished (%v)", m)
	}
	if m.Piece != g.CurrentPiece() {
		return illegal("%s must play %s (%v)", g.current, g.CurrentPiece(), m)
	}

	if err := g.board.ApplyMove(m); err != nil {
		return err
	}
	g.history = append(g.history, m)

	g.state = Playing
	switch {
	case g.board.Win():
		g.finish(victoryFor(g.current))
	case g.board.Full():
		g.finish(Draw)
	default:
		g.current = g.current.Other()
	}
	return nil
}

func (g *Game) finish(r Result) {
	g.result = r
	g.state = Finished
}

// Copy returns a game sharing no mutable state with g.
func (g *Game) Copy() *Game {
	pieces := make(map[Player]Piece, len(g.pieces))
	for player, piece := range g.pieces {
		pieces[player] = piece
	}
	players := make(map[Piece]Player, len(g.players))
	for piece, player := range g.players {
		players[piece] = player
	}
	history := make([]Move, len(g.history))
	copy(history, g.history)

	return &Game{
		board:   g.board.Copy(),
		state:   g.state,
		result:  g.result,
		current: g.current,
		pieces:  pieces,
		players: players,
		history: history,
	}
}

// GenerateMoves yields every legal move for the player to move: the board's playable
// cells paired with that player's piece. It yields nothing unless the game is in play.
func GenerateMoves(g *Game) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		if g.state != PiecesChosen && g.state != Playing {
			return
		}
		piece := g.CurrentPiece()
		for cell := range g.board.PlayableCells() {
			if !yield(Move{Cell: cell, Piece: piece}) {
				return
			}
		}
	}
}
