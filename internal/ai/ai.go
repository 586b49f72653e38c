// Package ai defines the heuristic board evaluator shared by the searchers, and the scores
// used for finished matches.
package ai

import (
	. "github.com/janpfeifer/connectGo/internal/state"
)

// Scores of finished matches, from the perspective of the searching player.
//
// The loss is ten times smaller in magnitude than the win: searches are biased towards
// their own wins rather than blocking the opponent's.
const (
	WinScore  int64 = 100000000000000
	LossScore int64 = -10000000000000
	DrawScore int64 = 0
)

// Window scores.
const (
	FourScore          = 100
	ThreeScore         = 10
	TwoScore           = 5
	OpponentThreeScore = -80

	// CenterPieceScore is given for each piece in the CenterColumn.
	CenterPieceScore = 6
)

// ScoreWindow scores a line of 4 cells from the perspective of piece.
//
// Only the best matching own-piece pattern counts (four, three plus an empty, two plus two empties),
// and an opponent's three plus an empty is penalized in addition to it.
func ScoreWindow(window [WindowLength]Piece, piece Piece) (score int) {
	opponent := piece.Opponent()
	var own, empty, opp int
	for _, cell := range window {
		switch cell {
		case piece:
			own++
		case Empty:
			empty++
		case opponent:
			opp++
		}
	}
	switch {
	case own == 4:
		score += FourScore
	case own == 3 && empty == 1:
		score += ThreeScore
	case own == 2 && empty == 2:
		score += TwoScore
	}
	if opp == 3 && empty == 1 {
		score += OpponentThreeScore
	}
	return
}

// ScoreBoard sums ScoreWindow over every window of the board, plus CenterPieceScore for each
// of piece's pieces in the center column.
//
// It is one-sided: the opponent's own board score is not subtracted.
func ScoreBoard(board Board, piece Piece) (score int) {
	for row := range NumRows {
		if board[row][CenterColumn] == piece {
			score += CenterPieceScore
		}
	}
	for w := range Windows() {
		score += ScoreWindow(board.WindowPieces(w), piece)
	}
	return
}
