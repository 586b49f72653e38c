// Package statetest provides helper functions to create tests using Connect-4 boards.
package statetest

import (
	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/connectGo/internal/state"
)

// BuildBoard from a drawing of the rows, top row first, as printed by Board.String.
// Each row must have NumColumns characters: '.' for empty, '1' or 'X' for PlayerOne and
// '2' or 'O' for PlayerTwo. Fewer than NumRows rows can be given: they are the bottom ones.
func BuildBoard(rows ...string) (b Board) {
	if len(rows) > NumRows {
		exceptions.Panicf("BuildBoard: %d rows given, max is %d", len(rows), NumRows)
	}
	for ii, line := range rows {
		row := len(rows) - 1 - ii
		if len(line) != NumColumns {
			exceptions.Panicf("BuildBoard: row %q must have %d columns", line, NumColumns)
		}
		for col := range NumColumns {
			switch line[col] {
			case '.':
				// Empty.
			case '1', 'X':
				b.Place(row, Column(col), PlayerOne)
			case '2', 'O':
				b.Place(row, Column(col), PlayerTwo)
			default:
				exceptions.Panicf("BuildBoard: invalid cell %q in row %q", line[col], line)
			}
		}
	}
	return
}

// PlayMoves drops pieces in the given columns, alternating players starting with PlayerOne.
func PlayMoves(columns ...Column) Board {
	b := NewBoard()
	piece := PlayerOne
	for _, col := range columns {
		b = b.Act(col, piece)
		piece = piece.Opponent()
	}
	return b
}
