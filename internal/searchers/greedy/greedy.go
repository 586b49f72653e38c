// Package greedy implements a one-ply searcher: it plays the column whose resulting board
// has the best heuristic score (ai.ScoreBoard).
package greedy

import (
	"fmt"
	"math"

	"github.com/janpfeifer/connectGo/internal/ai"
	"github.com/janpfeifer/connectGo/internal/searchers"
	. "github.com/janpfeifer/connectGo/internal/state"
	"k8s.io/klog/v2"
)

// Searcher implements searchers.Searcher with a single ply lookahead.
type Searcher struct {
	player  Piece
	level   int
	leveled bool
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// New returns a greedy searcher playing for PlayerTwo. See WithPlayer and WithLevel.
func New() *Searcher {
	return &Searcher{player: PlayerTwo}
}

// WithPlayer sets the piece the searcher plays for.
func (s *Searcher) WithPlayer(player Piece) *Searcher {
	s.player = player
	return s
}

// WithLevel selects the leveled variant: level*10 is added to the score of every candidate.
//
// The same amount is added to every candidate, so the selected column doesn't change with the level.
func (s *Searcher) WithLevel(level int) *Searcher {
	s.level = level
	s.leveled = true
	return s
}

// Search implements searchers.Searcher.
//
// Columns are tried in ascending order, and only a strictly better score replaces the current best,
// so ties go to the leftmost column.
func (s *Searcher) Search(board Board) Column {
	bestColumn, bestScore := NoMove, math.MinInt
	for _, col := range board.ValidColumns() {
		score := ai.ScoreBoard(board.Act(col, s.player), s.player)
		if s.leveled {
			score += s.level * 10
		}
		if klog.V(3).Enabled() {
			klog.Infof("greedy: %s scores %d", col, score)
		}
		if score > bestScore {
			bestColumn, bestScore = col, score
		}
	}
	if klog.V(2).Enabled() {
		klog.Infof("%s: best %s, score=%d", s, bestColumn, bestScore)
	}
	return bestColumn
}

// String implements searchers.Searcher.
func (s *Searcher) String() string {
	if s.leveled {
		return fmt.Sprintf("greedy(%s, level=%d)", s.player, s.level)
	}
	return fmt.Sprintf("greedy(%s)", s.player)
}
