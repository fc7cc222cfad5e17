package searcher

import (
	"fmt"
	"mnk/game"
)

// Node is a position in a GameTree. It exclusively owns its Game.
type Node struct {
	game     *game.Game
	move     game.Move
	root     bool
	parent   *Node
	depth    int
	score    float64
	scored   bool
	children []*Node
}

func newNode(parent *Node, g *game.Game, move game.Move) *Node {
	if parent == nil {
		return &Node{game: g, root: true}
	}
	return &Node{
		game:   g,
		move:   move,
		parent: parent,
		depth:  parent.depth + 1,
	}
}

func (n *Node) Game() *game.Game  { return n.game }
func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Depth() int        { return n.depth }
func (n *Node) Children() []*Node { return n.children }
func (n *Node) IsRoot() bool      { return n.root }
func (n *Node) IsLeaf() bool      { return len(n.children) == 0 }

// Move returns the move that produced the node; ok is false for the root.
func (n *Node) Move() (move game.Move, ok bool) {
	return n.move, !n.root
}

// Score returns the node's score; ok is false until a search has scored it.
func (n *Node) Score() (score float64, ok bool) {
	return n.score, n.scored
}

// Maximizer reports whether the player to move is Player 1, who always maximizes.
func (n *Node) Maximizer() bool {
	return n.game.CurrentPlayer() == game.P1
}

func (n *Node) setScore(score float64) {
	n.score = score
	n.scored = true
}

// clearScores forgets the scores of the subtree rooted at n.
func (n *Node) clearScores() {
	n.score, n.scored = 0, false
	for _, child := range n.children {
		child.clearScores()
	}
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.children {
		size += child.Size()
	}
	return size
}

func (n *Node) scoredCount() int {
	if !n.scored {
		return 0
	}
	count := 1
	for _, child := range n.children {
		count += child.scoredCount()
	}
	return count
}

func (n *Node) String() string {
	m := "ROOT"
	if !n.root {
		m = n.move.String()
	}
	if !n.scored {
		return m + " (-)"
	}
	return fmt.Sprintf("%s (%.3f)", m, n.score)
}
