package agent

import (
	"errors"
	"fmt"
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/meta"
	"mnk/searcher"
	"mnk/utils"
	"time"

	"golang.org/x/exp/rand"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not the engine's turn")
)

// Kind selects an engine policy
type Kind int

const (
	Dummy         Kind = iota // Uniformly random legal move
	Randimaxer                // Minimax over random scores
	Winimaxer                 // Minimax looking for wins and draws
	Winibetamaxer             // Winimaxer with alpha-beta pruning
)

var kindNames = []string{"dummy", "randimaxer", "winimaxer", "winibetamaxer"}

func ParseKind(s string) (Kind, error) {
	i := utils.FindIndex(kindNames, s)
	if i < 0 {
		return 0, fmt.Errorf("unknown engine %q", s)
	}
	return Kind(i), nil
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// DefaultPlies is the search depth used when WithPlies is not given.
func (k Kind) DefaultPlies() int {
	switch k {
	case Dummy:
		return 0
	case Winimaxer, Winibetamaxer:
		return 7
	default:
		return meta.DEFAULT_PLIES
	}
}

// Kinds lists every engine policy.
func Kinds() []Kind {
	return []Kind{Dummy, Randimaxer, Winimaxer, Winibetamaxer}
}

// Agent proposes moves for one player of a live game. It reads the game but never changes it.
type Agent interface {
	// ProposeMove returns a legal move for the bound player
	ProposeMove() (game.Move, error)
	// LastSearch returns the metrics of the latest ProposeMove call
	LastSearch() metrics.SearchMetric
	Kind() Kind
	Player() game.Player
	Plies() int
}

type config struct {
	plies   int
	rand    *rand.Rand
	metrics metrics.Collector
}

type Option func(c *config)

func WithPlies(plies int) Option {
	return func(c *config) {
		c.plies = plies
	}
}

// WithRand sets the random source of the dummy and randimaxer engines.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rand = r
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		c.metrics = collector
	}
}

// New binds an engine of the given kind to player in g.
func New(kind Kind, g *game.Game, player game.Player, opts ...Option) (Agent, error) {
	c := config{plies: kind.DefaultPlies()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if c.metrics == nil {
		c.metrics = metrics.NewCollector()
	}

	b := base{kind: kind, game: g, player: player, plies: c.plies, metrics: c.metrics}
	switch kind {
	case Dummy:
		b.plies = 0
		return &dummyAgent{base: b, rand: c.rand}, nil
	case Randimaxer:
		return newSearchAgent(b, searcher.RandomEvaluation(c.rand), searcher.Minimax), nil
	case Winimaxer:
		return newSearchAgent(b, searcher.EvaluateOutcome, searcher.Minimax), nil
	case Winibetamaxer:
		return newSearchAgent(b, searcher.EvaluateOutcome, searcher.AlphaBeta), nil
	}
	return nil, fmt.Errorf("unknown engine kind %d", int(kind))
}

type base struct {
	kind    Kind
	game    *game.Game
	player  game.Player
	plies   int
	metrics metrics.Collector
	last    metrics.SearchMetric
}

func (b *base) Kind() Kind                       { return b.kind }
func (b *base) Player() game.Player              { return b.player }
func (b *base) Plies() int                       { return b.plies }
func (b *base) LastSearch() metrics.SearchMetric { return b.last }

// begin checks that the bound player may move and starts collecting metrics.
func (b *base) begin() error {
	if b.game.State() == game.Finished {
		return ErrGameOver
	}
	if b.game.State() == game.Init {
		return fmt.Errorf("%w: pieces not chosen", game.ErrIllegalMove)
	}
	if b.game.CurrentPlayer() != b.player {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, b.game.CurrentPlayer())
	}
	b.metrics.Start(b.kind.String(), b.plies)
	return nil
}

func (b *base) end() {
	b.last = b.metrics.Complete()
}
