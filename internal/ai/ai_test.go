package ai

import (
	"testing"

	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
)

func TestScoreWindow(t *testing.T) {
	const (
		E  = Empty
		P1 = PlayerOne
		P2 = PlayerTwo
	)
	for ii, test := range []struct {
		window [WindowLength]Piece
		piece  Piece
		want   int
	}{
		{[4]Piece{E, E, E, E}, P1, 0},
		{[4]Piece{E, E, E, E}, P2, 0},
		{[4]Piece{P1, P1, P1, P1}, P1, 100},
		{[4]Piece{P1, P1, E, P1}, P1, 10},
		{[4]Piece{E, P2, E, P2}, P2, 5},
		{[4]Piece{P1, E, E, E}, P1, 0},
		{[4]Piece{P1, P1, P2, P1}, P1, 0},
		{[4]Piece{P1, P1, P1, P1}, P2, 0},
		{[4]Piece{P1, P1, E, P1}, P2, -80},
		{[4]Piece{P2, P2, P2, E}, P1, -80},
		{[4]Piece{P1, P1, P2, E}, P1, 0},
		{[4]Piece{P2, P2, E, E}, P1, 0},
	} {
		assert.Equalf(t, test.want, ScoreWindow(test.window, test.piece), "test #%d: window=%v, piece=%s", ii, test.window, test.piece)
	}
}

func TestScoreBoard(t *testing.T) {
	assert.Equal(t, 0, ScoreBoard(NewBoard(), PlayerOne))
	assert.Equal(t, 0, ScoreBoard(NewBoard(), PlayerTwo))

	// A single piece in the center: only the center bonus.
	b := PlayMoves(3)
	assert.Equal(t, CenterPieceScore, ScoreBoard(b, PlayerOne))
	assert.Equal(t, 0, ScoreBoard(b, PlayerTwo))

	// Two pieces side by side on the bottom row, at columns 0 and 1: the only window with
	// both and two empties is the horizontal [0,3].
	b = BuildBoard("11.....")
	assert.Equal(t, TwoScore, ScoreBoard(b, PlayerOne))

	// Three vertical pieces of PlayerOne in column 2 with the top open: +10 for PlayerOne and -80
	// for PlayerTwo, coming from the same vertical window rows [0,3].
	b = BuildBoard(
		"..1....",
		"..1....",
		"..1....",
	)
	wantOne := ThreeScore + TwoScore // Windows rows [0,3] (three) and rows [1,4] (two).
	assert.Equal(t, wantOne, ScoreBoard(b, PlayerOne))
	assert.Equal(t, OpponentThreeScore, ScoreBoard(b, PlayerTwo))
}
