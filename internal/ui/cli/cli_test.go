package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(input string) (*UI, *bytes.Buffer) {
	var out bytes.Buffer
	return NewWithIO(strings.NewReader(input), &out, false, false), &out
}

func TestCenterString(t *testing.T) {
	assert.Equal(t, " X  ", centerString("X", 4))
	assert.Equal(t, "12345", centerString("12345", 4))
	assert.Equal(t, 3, displayWidth("\x1b[30;41;1mabc\x1b[0m"))
}

func TestPrintBoard(t *testing.T) {
	ui, out := newTestUI("")
	ui.PrintBoard(PlayMoves(3, 3, 0))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, NumRows+2)
	assert.Equal(t, "| .   .   .   O   .   .   .  |", lines[NumRows-2])
	assert.Equal(t, "| X   .   .   X   .   .   .  |", lines[NumRows-1])
	assert.Equal(t, "+----------------------------+", lines[NumRows])
	assert.Equal(t, "  0   1   2   3   4   5   6  ", lines[NumRows+1])
}

func TestPrintWinner(t *testing.T) {
	ui, out := newTestUI("")
	won := BuildBoard(
		"111....",
		"2222...",
	)
	ui.PrintWinner(won)
	assert.Contains(t, out.String(), "PlayerTwo (O) WINS (horizontal)")

	out.Reset()
	ui.PrintWinner(NewBoard())
	assert.Contains(t, out.String(), "not finished")
}

func TestReadColumn(t *testing.T) {
	ui, out := newTestUI("4\n")
	col, err := ui.ReadColumn(NewBoard())
	require.NoError(t, err)
	assert.Equal(t, Column(4), col)
	assert.Contains(t, out.String(), "PlayerOne (X) column")

	// Bad inputs are retried.
	b := BuildBoard(
		"1......",
		"2......",
		"1......",
		"2......",
		"1......",
		"2......",
	)
	ui, out = newTestUI("abc\n0\n 2 \n")
	col, err = ui.ReadColumn(b)
	require.NoError(t, err)
	assert.Equal(t, Column(2), col)
	assert.Contains(t, out.String(), "Failed to parse")
	assert.Contains(t, out.String(), "choose one of 1, 2, 3, 4, 5, 6")

	ui, _ = newTestUI("9\n-1\nx\n3\n")
	_, err = ui.ReadColumn(NewBoard())
	assert.ErrorIs(t, err, ErrTooManyInputErrors)

	ui, _ = newTestUI("quit\n")
	_, err = ui.ReadColumn(NewBoard())
	assert.ErrorIs(t, err, ErrQuit)

	ui, _ = newTestUI("")
	_, err = ui.ReadColumn(NewBoard())
	assert.ErrorIs(t, err, io.EOF)

	// Last line without a newline is accepted.
	ui, _ = newTestUI("5")
	col, err = ui.ReadColumn(NewBoard())
	require.NoError(t, err)
	assert.Equal(t, Column(5), col)
}
