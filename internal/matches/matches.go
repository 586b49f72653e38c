// Package matches plays matches between AI players: single matches, or many matches in parallel,
// used for tournaments and to generate training datasets.
package matches

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/janpfeifer/connectGo/internal/dataset"
	"github.com/janpfeifer/connectGo/internal/players"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Match holds the moves of a match and its result.
type Match struct {
	// Number of the match: only for printing.
	Number int

	// Players[0] plays with PlayerOne, Players[1] with PlayerTwo.
	Players [2]players.Player

	// Swapped is set if the second configuration played first. See RunMany.
	Swapped bool

	// Moves played, alternating players.
	Moves []Column

	// Boards holds all board positions of the match: 1 more than the number of moves.
	Boards []Board

	Outcome Outcome

	// Winner piece, or Empty if the match was a draw or not finished.
	Winner Piece
}

// FinalBoard position of the match.
func (m *Match) FinalBoard() Board {
	return m.Boards[len(m.Boards)-1]
}

// Records returns the moves of the match as dataset records. If winnerOnly is set and the match has a winner,
// only the moves of the winner are included.
func (m *Match) Records(winnerOnly bool) []dataset.Record {
	records := make([]dataset.Record, 0, len(m.Moves))
	for ii, col := range m.Moves {
		board := m.Boards[ii]
		if winnerOnly && m.Winner != Empty && board.NextPlayer() != m.Winner {
			continue
		}
		records = append(records, dataset.NewRecord(board, col))
	}
	return records
}

// Play a match from an empty board until it is finished, or ctx is cancelled.
//
// It returns an error if a player returns a column that can't be played.
func Play(ctx context.Context, matchNum int, matchPlayers [2]players.Player) (*Match, error) {
	return PlayFrom(ctx, matchNum, matchPlayers, NewBoard())
}

// PlayFrom is like Play, but starts from the given board.
func PlayFrom(ctx context.Context, matchNum int, matchPlayers [2]players.Player, board Board) (*Match, error) {
	for ii, p := range matchPlayers {
		if p.Piece() != Players[ii] {
			return nil, errors.Errorf("match #%d: player #%d (%s) must play with %s, not %s",
				matchNum, ii, p, Players[ii], p.Piece())
		}
	}
	m := &Match{
		Number:  matchNum,
		Players: matchPlayers,
		Boards:  []Board{board},
	}
	if klog.V(1).Enabled() {
		klog.Infof("Starting match #%d: %s vs %s", matchNum, matchPlayers[0], matchPlayers[1])
	}
	for !board.IsFinished() {
		if err := ctx.Err(); err != nil {
			return m, errors.Wrapf(err, "match #%d interrupted", matchNum)
		}
		piece := board.NextPlayer()
		player := matchPlayers[piece-PlayerOne]
		col := player.Play(board)
		if !board.IsValid(col) {
			return m, errors.Errorf("match #%d: %s played invalid column %s on move #%d:\n%s",
				matchNum, player, col, len(m.Moves)+1, board)
		}
		board = board.Act(col, piece)
		m.Moves = append(m.Moves, col)
		m.Boards = append(m.Boards, board)
	}
	m.Outcome, m.Winner = board.Outcome()
	if klog.V(1).Enabled() {
		klog.Infof("Finished match #%d in %d moves: %s %s", matchNum, len(m.Moves), m.Outcome, m.Winner)
	}
	return m, nil
}

// Config for RunMany.
type Config struct {
	// NumMatches to play.
	NumMatches int

	// Parallelism is the number of matches played simultaneously. If <= 0, GOMAXPROCS is used.
	Parallelism int

	// PlayersConfigs of the two AIs, in the players.New format.
	PlayersConfigs [2]string

	// Swap makes the AIs alternate who plays first: in odd numbered matches the second configuration plays first.
	Swap bool

	// OnMatch, if set, is called after each match finishes. Calls are serialized.
	OnMatch func(m *Match, results *Results)
}

// Results of RunMany. Wins are counted per configuration, not per piece.
type Results struct {
	Wins    [2]int
	Draws   int
	Matches []*Match
	Elapsed time.Duration
}

// String summarizes the results.
func (r *Results) String() string {
	total := len(r.Matches)
	if total == 0 {
		return "no matches"
	}
	return fmt.Sprintf("%d matches: %d/%d/%d A-Wins/B-Wins/Draws (%.1f%% / %.1f%% / %.1f%%) in %s",
		total, r.Wins[0], r.Wins[1], r.Draws,
		100*float64(r.Wins[0])/float64(total), 100*float64(r.Wins[1])/float64(total),
		100*float64(r.Draws)/float64(total), r.Elapsed)
}

// Records of all matches, see Match.Records.
func (r *Results) Records(winnerOnly bool) []dataset.Record {
	var records []dataset.Record
	for _, m := range r.Matches {
		records = append(records, m.Records(winnerOnly)...)
	}
	return records
}

// RunMany plays config.NumMatches matches in parallel, and returns the results sorted by match number.
//
// The players are created anew for each match, with players.New.
// If ctx is cancelled, the matches finished so far are returned along with the error.
func RunMany(ctx context.Context, config Config) (*Results, error) {
	parallelism := config.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	results := &Results{}
	var mu sync.Mutex
	start := time.Now()

	var wg errgroup.Group
	wg.SetLimit(parallelism)
	for matchIdx := range config.NumMatches {
		wg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			swapped := config.Swap && matchIdx%2 == 1
			var matchPlayers [2]players.Player
			for ii, piece := range Players {
				configIdx := ii
				if swapped {
					configIdx = 1 - ii
				}
				p, err := players.New(config.PlayersConfigs[configIdx], piece)
				if err != nil {
					return err
				}
				matchPlayers[ii] = p
			}
			m, err := Play(ctx, matchIdx, matchPlayers)
			if err != nil {
				if ctx.Err() != nil {
					// Interrupted: not a failure of the match.
					return nil
				}
				return err
			}
			m.Swapped = swapped

			mu.Lock()
			defer mu.Unlock()
			switch {
			case m.Winner == Empty:
				results.Draws++
			case (m.Winner == PlayerOne) != swapped:
				results.Wins[0]++
			default:
				results.Wins[1]++
			}
			results.Matches = append(results.Matches, m)
			results.Elapsed = time.Since(start)
			if config.OnMatch != nil {
				config.OnMatch(m, results)
			}
			return nil
		})
	}
	err := wg.Wait()
	results.Elapsed = time.Since(start)
	slices.SortFunc(results.Matches, func(a, b *Match) int { return a.Number - b.Number })
	if err == nil {
		err = ctx.Err()
	}
	return results, err
}
