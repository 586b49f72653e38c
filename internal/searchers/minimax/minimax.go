// Package minimax implements a depth-limited minimax searcher with alpha-beta pruning.
//
// Leaves are scored with ai.ScoreBoard, always from the searcher's own perspective, and finished
// boards with the fixed ai.WinScore, ai.LossScore and ai.DrawScore.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
package minimax

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/janpfeifer/connectGo/internal/ai"
	"github.com/janpfeifer/connectGo/internal/searchers"
	. "github.com/janpfeifer/connectGo/internal/state"
	"k8s.io/klog/v2"
)

// DefaultMaxDepth for search, in plies.
const DefaultMaxDepth = 4

// Searcher implements the searchers.Searcher interface.
type Searcher struct {
	maxDepth int
	player   Piece
	rng      *rand.Rand
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// Stats collected during one search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes visited: every board evaluated or expanded.
	Nodes int

	// Leaves scored with the heuristic, at the max depth.
	Leaves int

	// Terminals are finished boards (win, loss or draw).
	Terminals int

	// Prunes counts the alpha-beta cuts.
	Prunes int
}

// New returns a minimax searcher playing for PlayerTwo, with DefaultMaxDepth and a random
// number generator seeded from system entropy.
// There are other optional configurations, see methods Searcher.With...
func New() *Searcher {
	return &Searcher{
		maxDepth: DefaultMaxDepth,
		player:   PlayerTwo,
		rng:      searchers.NewRand(),
	}
}

// WithMaxDepth sets the max depth of search: the unit here are plies (ply singular). Each player
// playing counts as one ply. See https://en.wikipedia.org/wiki/Ply_(game_theory).
//
// A depth <= 0 makes the search return a random legal column.
func (s *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	s.maxDepth = maxDepth
	return s
}

// WithPlayer sets the piece the searcher plays for, the maximizing side. The other piece is the
// minimizing side.
func (s *Searcher) WithPlayer(player Piece) *Searcher {
	s.player = player
	return s
}

// WithRand sets the random number generator used to pick the initial candidate column at each node.
func (s *Searcher) WithRand(rng *rand.Rand) *Searcher {
	s.rng = rng
	return s
}

// String implements searchers.Searcher.
func (s *Searcher) String() string {
	return fmt.Sprintf("minimax(%s, max_depth=%d)", s.player, s.maxDepth)
}

// Search implements searchers.Searcher.
//
// If the search yields no column (max depth <= 0, or the match is already decided) it falls back
// to a random legal column, or NoMove if the board is full.
func (s *Searcher) Search(board Board) Column {
	start := time.Now()
	var stats Stats
	col, score := s.recursion(board, s.maxDepth, math.MinInt64, math.MaxInt64, true, &stats)
	if col == NoMove {
		col = searchers.RandomColumn(s.rng, board)
	}
	if klog.V(2).Enabled() {
		elapsed := time.Since(start)
		klog.Infof("%s: %s, score=%d", s, col, score)
		klog.Infof("  stats: %+v, nodes/s=%.1f", stats, float64(stats.Nodes)/elapsed.Seconds())
	}
	return col
}

// Minimax runs the alpha-beta pruning search to the given depth, and returns the best column and its value.
//
// maximizing selects whether it's the searcher's ply (true) or the opponent's (false).
// For finished boards and depth <= 0 it returns NoMove, along with the board value.
//
// Candidate columns are scanned in ascending order, but the best column starts as a random legal
// column and is only replaced by a strictly better value: ties resolve to that random pick.
func (s *Searcher) Minimax(board Board, depth int, alpha, beta int64, maximizing bool) (Column, int64) {
	var stats Stats
	return s.recursion(board, depth, alpha, beta, maximizing, &stats)
}

func (s *Searcher) recursion(board Board, depth int, alpha, beta int64, maximizing bool, stats *Stats) (
	bestColumn Column, value int64) {
	stats.Nodes++
	opponent := s.player.Opponent()
	switch {
	case board.Wins(s.player):
		stats.Terminals++
		return NoMove, ai.WinScore
	case board.Wins(opponent):
		stats.Terminals++
		return NoMove, ai.LossScore
	case board.IsFull():
		stats.Terminals++
		return NoMove, ai.DrawScore
	case depth <= 0:
		stats.Leaves++
		return NoMove, int64(ai.ScoreBoard(board, s.player))
	}

	columns := board.ValidColumns()
	bestColumn = columns[s.rng.IntN(len(columns))]
	if maximizing {
		value = math.MinInt64
		for _, col := range columns {
			_, score := s.recursion(board.Act(col, s.player), depth-1, alpha, beta, false, stats)
			if score > value {
				value, bestColumn = score, col
			}
			alpha = max(alpha, value)
			if alpha >= beta {
				stats.Prunes++
				break
			}
		}
	} else {
		value = math.MaxInt64
		for _, col := range columns {
			_, score := s.recursion(board.Act(col, opponent), depth-1, alpha, beta, true, stats)
			if score < value {
				value, bestColumn = score, col
			}
			beta = min(beta, value)
			if alpha >= beta {
				stats.Prunes++
				break
			}
		}
	}
	return
}
