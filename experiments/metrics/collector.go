package metrics

import (
	"time"
)

// SearchMetric describes the work done to propose one move.
type SearchMetric struct {
	Engine   string
	Plies    int
	Duration time.Duration
	Nodes    int // Nodes generated in the game tree, root included
	Scored   int // Nodes assigned a score by the search
	Leaves   int // Leaf evaluations
}

type MoveMetric struct {
	Step   int
	Player int // 1 or 2
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPiece string
	Result        string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

// AgentConfig identifies an engine configuration taking part in an experiment.
type AgentConfig struct {
	ID     int
	Engine string
	Plies  int
}

type Collector interface {
	Start(engine string, plies int)
	AddNode()
	AddLeaf()
	SetScored(n int)
	Complete() SearchMetric
}

type collector struct {
	engine    string
	plies     int
	startTime time.Time
	nodes     int
	leaves    int
	scored    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(engine string, plies int) {
	*m = collector{
		engine:    engine,
		plies:     plies,
		startTime: time.Now(),
	}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) SetScored(n int) {
	m.scored = n
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Engine:   m.engine,
		Plies:    m.plies,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Scored:   m.scored,
		Leaves:   m.leaves,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(engine string, plies int) {}
func (m *dummyCollector) AddNode()                       {}
func (m *dummyCollector) AddLeaf()                       {}
func (m *dummyCollector) SetScored(n int)                {}
func (m *dummyCollector) Complete() SearchMetric         { return SearchMetric{} }
