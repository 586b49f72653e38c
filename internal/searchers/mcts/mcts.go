// Package mcts is a Monte Carlo Tree Search implementation of searchers.Searcher.
//
// Each iteration descends the tree guided by UCB1, expands one untried column, plays a uniformly
// random rollout to the end of the match, and backpropagates the result to the root.
// The search is bounded either by wall-clock time or by the number of iterations (traverses).
//
// References:
//
//   - https://en.wikipedia.org/wiki/Monte_Carlo_tree_search
//   - Auer, Cesa-Bianchi, Fischer, "Finite-time Analysis of the Multiarmed Bandit Problem" (UCB1).
//
// The tree is built for one Search call and discarded afterwards: a Searcher can be shared by
// concurrent matches.
package mcts

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/chewxy/math32"
	"github.com/janpfeifer/connectGo/internal/generics"
	"github.com/janpfeifer/connectGo/internal/searchers"
	. "github.com/janpfeifer/connectGo/internal/state"
	"k8s.io/klog/v2"
)

const (
	// ExplorationC is the constant C multiplying the exploration term of UCB1.
	ExplorationC = float32(2)

	// DefaultMaxTime is the default time budget: by default the search is time-bounded.
	DefaultMaxTime = time.Second
)

// Searcher implements searchers.Searcher using MCTS.
type Searcher struct {
	player Piece

	// maxTime defines the maximum time to spend thinking. If zero there is no time limit.
	maxTime time.Duration

	// maxTraverses defines the number of iterations to run. If zero there is no limit on the count.
	//
	// If both maxTime and maxTraverses are zero, no iterations are run and the search falls back to a
	// random column.
	maxTraverses int

	rng *rand.Rand
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// New returns a time-bounded (DefaultMaxTime) MCTS searcher playing for PlayerTwo.
// There are other optional configurations, see methods Searcher.With...
func New() *Searcher {
	return &Searcher{
		player:  PlayerTwo,
		maxTime: DefaultMaxTime,
		rng:     searchers.NewRand(),
	}
}

// Clone returns a shallow copy of the Searcher, sharing the random number generator.
func (s *Searcher) Clone() *Searcher {
	r := &Searcher{}
	*r = *s
	return r
}

// WithPlayer sets the piece the searcher plays for: the player to move at the root of the search.
func (s *Searcher) WithPlayer(player Piece) *Searcher {
	s.player = player
	return s
}

// WithMaxTime makes the search time-bounded: it iterates until maxTime has elapsed.
// It clears any limit on the number of traverses.
func (s *Searcher) WithMaxTime(maxTime time.Duration) *Searcher {
	s.maxTime = maxTime
	s.maxTraverses = 0
	return s
}

// WithMaxTraverses makes the search count-bounded: it runs exactly maxTraverses iterations.
// It clears any time limit.
func (s *Searcher) WithMaxTraverses(maxTraverses int) *Searcher {
	s.maxTraverses = maxTraverses
	s.maxTime = 0
	return s
}

// WithRand sets the random number generator used for expansion and rollouts.
func (s *Searcher) WithRand(rng *rand.Rand) *Searcher {
	s.rng = rng
	return s
}

// String implements searchers.Searcher.
func (s *Searcher) String() string {
	switch {
	case s.maxTime > 0 && s.maxTraverses > 0:
		return fmt.Sprintf("mcts(%s, max_time=%s, max_traverses=%d)", s.player, s.maxTime, s.maxTraverses)
	case s.maxTraverses > 0:
		return fmt.Sprintf("mcts(%s, max_traverses=%d)", s.player, s.maxTraverses)
	default:
		return fmt.Sprintf("mcts(%s, max_time=%s)", s.player, s.maxTime)
	}
}

// Stats of one search.
type Stats struct {
	// Traverses is the number of completed iterations.
	Traverses int

	// Nodes created during the search, including the root.
	Nodes int

	// Visits per root child.
	Visits map[Column]int

	Elapsed time.Duration
}

// Search implements searchers.Searcher.
func (s *Searcher) Search(board Board) Column {
	col, _ := s.SearchWithStats(board)
	return col
}

// SearchWithStats searches and returns the selected column along with the statistics of the search.
//
// The selected column is the most visited child of the root; ties go to the column closest
// to the center, and then to the lower column. If no child was visited (the budget allowed no
// iteration, or the match is already decided) it falls back to a random legal column, or
// NoMove if the board is full.
func (s *Searcher) SearchWithStats(board Board) (Column, Stats) {
	stats := Stats{Visits: make(map[Column]int)}
	root := newNode(board, NoMove, nil, s.player)
	stats.Nodes = 1
	if !board.IsFinished() {
		start := time.Now()
		for {
			if s.maxTraverses > 0 && stats.Traverses >= s.maxTraverses {
				break
			}
			if s.maxTime > 0 && time.Since(start) >= s.maxTime {
				break
			}
			if s.maxTraverses <= 0 && s.maxTime <= 0 {
				break
			}
			stats.Nodes += s.runIteration(root)
			stats.Traverses++
		}
		stats.Elapsed = time.Since(start)
	}
	for col, child := range root.children {
		stats.Visits[col] = child.visits
	}

	col := selectColumn(root)
	if col == NoMove {
		col = searchers.RandomColumn(s.rng, board)
	}
	if klog.V(1).Enabled() {
		klog.Infof("%s: %s after %d traverses, %d nodes", s, col, stats.Traverses, stats.Nodes)
	}
	if klog.V(2).Enabled() && stats.Elapsed > 0 {
		klog.Infof("  visits=%v, nodes/s=%.1f", stats.Visits, float64(stats.Nodes)/stats.Elapsed.Seconds())
	}
	return col, stats
}

// node of the search tree. A node exclusively owns its children, while parent is only used to walk
// back up during backpropagation.
type node struct {
	board    Board
	move     Column
	parent   *node
	children map[Column]*node

	// untried columns not yet expanded into children. Empty for finished boards, so a node
	// reached by a winning move is a leaf: rollouts from it return the winner right away.
	untried []Column

	visits int

	// wins accumulates +1 for each rollout won by player, the player to move at this node, and -1
	// for each rollout won by the other player. Draws leave it unchanged.
	wins int

	// player to move at this node.
	player Piece
}

func newNode(board Board, move Column, parent *node, player Piece) *node {
	n := &node{
		board:    board,
		move:     move,
		parent:   parent,
		children: make(map[Column]*node),
		player:   player,
	}
	if !board.IsFinished() {
		n.untried = board.ValidColumns()
	}
	return n
}

// ucb1 of the node, given the visits of its parent. Unvisited nodes have +Inf.
func (n *node) ucb1(parentVisits int) float32 {
	if n.visits == 0 {
		return math32.Inf(1)
	}
	visits := float32(n.visits)
	winRate := float32(n.wins) / visits
	return winRate + ExplorationC*math32.Sqrt(math32.Log(float32(parentVisits))/visits)
}

// selectChild returns the child with the highest UCB1. Children are scanned in column order, and
// ties go to the first one.
func (n *node) selectChild() *node {
	var best *node
	bestUCB := math32.Inf(-1)
	for col := range generics.SortedKeys(n.children) {
		child := n.children[col]
		if ucb := child.ucb1(n.visits); best == nil || ucb > bestUCB {
			best, bestUCB = child, ucb
		}
	}
	return best
}

// expand a random untried column into a new child, and returns it.
func (n *node) expand(rng *rand.Rand) *node {
	idx := rng.IntN(len(n.untried))
	col := n.untried[idx]
	n.untried = slices.Delete(n.untried, idx, idx+1)
	child := newNode(n.board.Act(col, n.player), col, n, n.player.Opponent())
	n.children[col] = child
	return child
}

// update the node statistics with the result of a rollout: the winner, or Empty for a draw.
func (n *node) update(winner Piece) {
	n.visits++
	if winner == Empty {
		return
	}
	if winner == n.player {
		n.wins++
	} else {
		n.wins--
	}
}

// runIteration runs one selection, expansion, simulation and backpropagation cycle from root.
// It returns the number of nodes created.
func (s *Searcher) runIteration(root *node) (numNewNodes int) {
	n := root
	for len(n.untried) == 0 && len(n.children) > 0 {
		n = n.selectChild()
	}
	if len(n.untried) > 0 {
		n = n.expand(s.rng)
		numNewNodes = 1
	}
	winner := simulate(s.rng, n.board, n.player)
	for ; n != nil; n = n.parent {
		n.update(winner)
	}
	return
}

// simulate a uniformly random rollout from board, with player to move, until the match is finished.
// It returns the winner, or Empty for a draw.
func simulate(rng *rand.Rand, board Board, player Piece) Piece {
	if outcome, winner := board.Outcome(); outcome != InProgress {
		return winner
	}
	for {
		col := searchers.RandomColumn(rng, board)
		if col == NoMove {
			return Empty
		}
		board.Place(board.NextEmptyRow(col), col, player)
		if board.Wins(player) {
			return player
		}
		player = player.Opponent()
	}
}

// selectColumn returns the most visited child of the root, with ties going to the column closest to
// the center and then to the lower column. It returns NoMove if no child was visited.
func selectColumn(root *node) Column {
	bestCol, bestVisits := NoMove, 0
	for col := range generics.SortedKeys(root.children) {
		visits := root.children[col].visits
		if visits == 0 {
			continue
		}
		if visits > bestVisits ||
			(visits == bestVisits && centerDistance(col) < centerDistance(bestCol)) {
			bestCol, bestVisits = col, visits
		}
	}
	return bestCol
}

func centerDistance(col Column) int {
	d := int(col) - CenterColumn
	if d < 0 {
		return -d
	}
	return d
}
