package greedy

import (
	"testing"

	"github.com/janpfeifer/connectGo/internal/ai"
	"github.com/janpfeifer/connectGo/internal/parameters"
	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

func TestEmptyBoardPlaysCenter(t *testing.T) {
	for _, player := range Players {
		assert.Equal(t, Column(CenterColumn), New().WithPlayer(player).Search(NewBoard()))
	}
}

func TestLevelDoesNotChangeSelection(t *testing.T) {
	boards := []Board{
		NewBoard(),
		PlayMoves(3, 3, 2),
		PlayMoves(0, 6, 1, 5, 2),
		BuildBoard(
			"..1....",
			"..1....",
			"..1.2..",
		),
	}
	for _, b := range boards {
		want := New().Search(b)
		for level := range 5 {
			assert.Equalf(t, want, New().WithLevel(level).Search(b), "level=%d, board:\n%s", level, b)
		}
	}
}

func TestTakesWin(t *testing.T) {
	b := BuildBoard(
		"2......",
		"2......",
		"21.....",
		"11.1...",
	)
	// Column 2 completes the horizontal four for PlayerOne. Column 0 would remove the penalty
	// of PlayerTwo's vertical three, but the win scores more.
	assert.Equal(t, Column(2), New().WithPlayer(PlayerOne).Search(b))
}

func TestTiesKeepLeftmost(t *testing.T) {
	// With the center column full, the board is symmetric: columns 2 and 4 tie with the best
	// score, and the leftmost is chosen.
	b := BuildBoard(
		"...2...",
		"...2...",
		"...1...",
		"...2...",
		"...2...",
		"...1...",
	)
	left := ai.ScoreBoard(b.Act(2, PlayerOne), PlayerOne)
	right := ai.ScoreBoard(b.Act(4, PlayerOne), PlayerOne)
	require.Equal(t, left, right)
	for _, col := range []Column{0, 1, 5, 6} {
		require.Less(t, ai.ScoreBoard(b.Act(col, PlayerOne), PlayerOne), left, "column %d", col)
	}
	assert.Equal(t, Column(2), New().WithPlayer(PlayerOne).Search(b))
}

func TestNoMove(t *testing.T) {
	full := BuildBoard(
		"1122112",
		"2211221",
		"1122112",
		"2211221",
		"1122112",
		"2211221",
	)
	assert.Equal(t, NoMove, New().Search(full))
	assert.Equal(t, NoMove, New().WithLevel(3).Search(full))
}

func TestNewFromParams(t *testing.T) {
	s, err := NewFromParams(PlayerOne, parameters.NewFromConfigString("minimax"))
	require.NoError(t, err)
	assert.Nil(t, s)

	params := parameters.NewFromConfigString("greedy,level=2")
	s, err = NewFromParams(PlayerOne, params)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Empty(t, params)
	assert.Equal(t, "greedy(PlayerOne, level=2)", s.String())
}
