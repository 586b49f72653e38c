package state_test

import (
	"testing"

	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 0, b.CountPieces())
	assert.Equal(t, []Column{0, 1, 2, 3, 4, 5, 6}, b.ValidColumns())
	assert.False(t, b.IsFull())
	assert.False(t, b.IsDraw())
	assert.Equal(t, PlayerOne, b.NextPlayer())
	outcome, winner := b.Outcome()
	assert.Equal(t, InProgress, outcome)
	assert.Equal(t, Empty, winner)
}

func TestGravity(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 0, b.NextEmptyRow(2))
	for row := range NumRows {
		require.True(t, b.IsValid(2))
		assert.Equal(t, row, b.NextEmptyRow(2))
		b = b.Act(2, Players[row%2])
	}
	assert.True(t, b.IsColumnFull(2))
	assert.False(t, b.IsValid(2))
	assert.Equal(t, -1, b.NextEmptyRow(2))
	assert.Equal(t, []Column{0, 1, 3, 4, 5, 6}, b.ValidColumns())
	assert.Panics(t, func() { b.Act(2, PlayerOne) })

	// Out of range columns are not valid, and don't panic.
	assert.False(t, b.IsValid(-1))
	assert.False(t, b.IsValid(NumColumns))
}

func TestActDoesNotMutate(t *testing.T) {
	b := PlayMoves(3, 3, 4)
	before := b
	after := b.Act(5, PlayerTwo)
	assert.Equal(t, before, b)
	assert.Equal(t, PlayerTwo, after.At(0, 5))
	assert.Equal(t, Empty, b.At(0, 5))
	assert.Equal(t, PlayerTwo, b.NextPlayer())
}

func TestNumWindows(t *testing.T) {
	var counts [4]int
	total := 0
	for w := range Windows() {
		counts[w.Orientation]++
		total++
	}
	assert.Equal(t, NumWindows, total)
	assert.Equal(t, [4]int{24, 21, 12, 12}, counts)
}

func TestWins(t *testing.T) {
	for _, test := range []struct {
		name        string
		board       Board
		orientation Orientation
		winner      Piece
	}{
		{"horizontal", BuildBoard(
			"222....",
			"1111...",
		), Horizontal, PlayerOne},
		{"vertical", BuildBoard(
			"......2",
			"1.....2",
			"1.....2",
			"1.....2",
		), Vertical, PlayerTwo},
		{"diagonal-up", BuildBoard(
			"...1...",
			"..12...",
			".122...",
			"1212...",
		), DiagonalUp, PlayerOne},
		{"diagonal-down", BuildBoard(
			"..2....",
			"..12...",
			"..112..",
			"..1212.",
		), DiagonalDown, PlayerTwo},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, test.board.Wins(test.winner))
			assert.False(t, test.board.Wins(test.winner.Opponent()))
			assert.Equal(t, test.name, test.orientation.String())
			for _, o := range Orientations {
				assert.Equalf(t, o == test.orientation, test.board.WinsIn(test.winner, o), "orientation %s", o)
			}
			outcome, winner := test.board.Outcome()
			assert.Equal(t, Win, outcome)
			assert.Equal(t, test.winner, winner)
			assert.False(t, test.board.IsDraw())
		})
	}

	// Three-in-a-row, interrupted lines and lines of mixed pieces don't win.
	for _, b := range []Board{
		BuildBoard("111.111"),
		BuildBoard("1112111"),
		BuildBoard(
			"1......",
			"1......",
			"2......",
			"1......",
			"1......",
			"1......",
		),
		BuildBoard(
			"..12...",
			".122...",
			"1212...",
		),
	} {
		assert.False(t, b.Wins(PlayerOne), "board:\n%s", b)
		assert.False(t, b.Wins(PlayerTwo), "board:\n%s", b)
		assert.False(t, b.IsFinished())
	}
}

func TestDraw(t *testing.T) {
	// Columns pattern that fills the board without any four-in-a-row.
	b := BuildBoard(
		"1122112",
		"2211221",
		"1122112",
		"2211221",
		"1122112",
		"2211221",
	)
	require.False(t, b.Wins(PlayerOne), "board:\n%s", b)
	require.False(t, b.Wins(PlayerTwo), "board:\n%s", b)
	assert.True(t, b.IsFull())
	assert.True(t, b.IsDraw())
	assert.Empty(t, b.ValidColumns())
	outcome, _ := b.Outcome()
	assert.Equal(t, Draw, outcome)

	// A full board with a winner is not a draw.
	b.Place(0, 2, PlayerTwo)
	b.Place(0, 3, PlayerTwo)
	require.True(t, b.Wins(PlayerTwo))
	assert.False(t, b.IsDraw())
}

func TestEncoding(t *testing.T) {
	b := PlayMoves(3, 3, 0, 6)
	encoded := b.Encode()
	require.Len(t, encoded, NumCells)
	assert.Equal(t, "1001002", encoded[:NumColumns])
	assert.Equal(t, "0002000", encoded[NumColumns:2*NumColumns])

	decoded, err := ParseBoard(encoded)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)

	_, err = ParseBoard("0123")
	assert.Error(t, err)
	_, err = ParseBoard(encoded[:NumCells-1] + "3")
	assert.Error(t, err)
}

func TestBoardString(t *testing.T) {
	b := BuildBoard(
		"..2....",
		"..1....",
	)
	assert.Equal(t, ".......\n.......\n.......\n.......\n..2....\n..1....\n", b.String())
}
