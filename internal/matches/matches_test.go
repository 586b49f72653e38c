package matches

import (
	"context"
	"testing"

	"github.com/janpfeifer/connectGo/internal/players"
	_ "github.com/janpfeifer/connectGo/internal/players/default"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

// fixedPlayer always plays the same column.
type fixedPlayer struct {
	col   Column
	piece Piece
}

func (p *fixedPlayer) Play(Board) Column { return p.col }
func (p *fixedPlayer) Piece() Piece      { return p.piece }
func (p *fixedPlayer) String() string    { return "fixed" }

func newPlayers(t *testing.T, configs ...string) (matchPlayers [2]players.Player) {
	for ii, piece := range Players {
		p, err := players.New(configs[ii], piece)
		require.NoError(t, err)
		matchPlayers[ii] = p
	}
	return
}

func TestPlay(t *testing.T) {
	m, err := Play(context.Background(), 0, newPlayers(t, "greedy", "random,seed=1"))
	require.NoError(t, err)
	require.Len(t, m.Boards, len(m.Moves)+1)
	final := m.FinalBoard()
	assert.True(t, final.IsFinished())
	outcome, winner := final.Outcome()
	assert.Equal(t, outcome, m.Outcome)
	assert.Equal(t, winner, m.Winner)
	for ii, col := range m.Moves {
		assert.Equal(t, m.Boards[ii+1], m.Boards[ii].Act(col, m.Boards[ii].NextPlayer()))
	}
}

func TestPlayErrors(t *testing.T) {
	ctx := context.Background()
	bad := [2]players.Player{&fixedPlayer{col: 9, piece: PlayerOne}, &fixedPlayer{col: 0, piece: PlayerTwo}}
	_, err := Play(ctx, 0, bad)
	assert.Error(t, err)

	swapped := [2]players.Player{&fixedPlayer{col: 0, piece: PlayerTwo}, &fixedPlayer{col: 1, piece: PlayerOne}}
	_, err = Play(ctx, 0, swapped)
	assert.Error(t, err)

	// Both play column 0 until it's full: the 7th move is invalid.
	full := [2]players.Player{&fixedPlayer{col: 0, piece: PlayerOne}, &fixedPlayer{col: 0, piece: PlayerTwo}}
	m, err := Play(ctx, 0, full)
	assert.Error(t, err)
	assert.Len(t, m.Moves, NumRows)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Play(cancelled, 0, newPlayers(t, "greedy", "greedy"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecords(t *testing.T) {
	// PlayerOne wins vertically on column 0, PlayerTwo always plays column 1.
	winning := [2]players.Player{&fixedPlayer{col: 0, piece: PlayerOne}, &fixedPlayer{col: 1, piece: PlayerTwo}}
	m, err := Play(context.Background(), 0, winning)
	require.NoError(t, err)
	require.Equal(t, PlayerOne, m.Winner)
	require.Len(t, m.Moves, 7)

	all := m.Records(false)
	assert.Len(t, all, 7)
	winnerOnly := m.Records(true)
	require.Len(t, winnerOnly, 4)
	for _, r := range winnerOnly {
		assert.Equal(t, "0", r.Move)
	}
	assert.Equal(t, NewBoard().Encode(), winnerOnly[0].State)
}

func TestRunMany(t *testing.T) {
	var calls int
	results, err := RunMany(context.Background(), Config{
		NumMatches:     6,
		Parallelism:    3,
		PlayersConfigs: [2]string{"minimax,max_depth=2", "random"},
		Swap:           true,
		OnMatch:        func(*Match, *Results) { calls++ },
	})
	require.NoError(t, err)
	require.Len(t, results.Matches, 6)
	assert.Equal(t, 6, calls)
	assert.Equal(t, 6, results.Wins[0]+results.Wins[1]+results.Draws)
	for ii, m := range results.Matches {
		assert.Equal(t, ii, m.Number)
		assert.Equal(t, ii%2 == 1, m.Swapped)
		if m.Swapped {
			assert.Equal(t, "random", m.Players[0].String())
		} else {
			assert.Equal(t, "random", m.Players[1].String())
		}
	}
	assert.NotEmpty(t, results.Records(true))
	assert.Contains(t, results.String(), "6 matches")
}

func TestRunManyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := RunMany(ctx, Config{NumMatches: 4, PlayersConfigs: [2]string{"greedy", "greedy"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results.Matches)
}

func TestRunManyBadConfig(t *testing.T) {
	_, err := RunMany(context.Background(), Config{NumMatches: 2, PlayersConfigs: [2]string{"greedy", "nonsense"}})
	assert.Error(t, err)
}
