// Package state holds the Connect-4 board and its rules.
//
// The Board is a small fixed-size value (6 rows × 7 columns), so copying it with a plain assignment
// is the way to explore hypothetical moves: no search algorithm ever needs to "undo" a move.
package state

import (
	"fmt"
	"strings"
)

const (
	// NumRows of the board. Row 0 is the bottom row.
	NumRows = 6

	// NumColumns of the board.
	NumColumns = 7

	// NumCells is the total number of cells, and the max number of moves in a match.
	NumCells = NumRows * NumColumns

	// CenterColumn is the column favoured by the heuristics.
	CenterColumn = 3

	// WindowLength is the number of aligned pieces needed to win.
	WindowLength = 4
)

// Piece is the content of a cell: either Empty or the piece of one of the players.
//
// The numeric values match the digits used to encode boards ('0', '1', '2').
type Piece uint8

const (
	Empty Piece = iota
	PlayerOne
	PlayerTwo
)

// Players enumerates the two player pieces, in playing order.
var Players = [2]Piece{PlayerOne, PlayerTwo}

// Opponent returns the piece of the other player. The opponent of Empty is Empty.
func (p Piece) Opponent() Piece {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return Empty
}

// IsPlayer returns whether p is one of the player pieces.
func (p Piece) IsPlayer() bool {
	return p == PlayerOne || p == PlayerTwo
}

// String implements fmt.Stringer.
func (p Piece) String() string {
	switch p {
	case Empty:
		return "Empty"
	case PlayerOne:
		return "PlayerOne"
	case PlayerTwo:
		return "PlayerTwo"
	}
	return fmt.Sprintf("Piece(%d)", uint8(p))
}

// Column of the board where a piece can be dropped, from 0 to NumColumns-1.
type Column int8

// NoMove is returned by searchers when there are no legal columns to play.
const NoMove Column = -1

// String implements fmt.Stringer.
func (c Column) String() string {
	if c == NoMove {
		return "NoMove"
	}
	return fmt.Sprintf("column %d", int8(c))
}

// Board holds the contents of each cell, indexed by [row][column].
type Board [NumRows][NumColumns]Piece

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// At returns the piece at the given row and column.
func (b Board) At(row int, col Column) Piece {
	return b[row][col]
}

// CountPieces returns the number of non-empty cells.
func (b Board) CountPieces() (count int) {
	for row := range NumRows {
		for col := range NumColumns {
			if b[row][col] != Empty {
				count++
			}
		}
	}
	return
}

// NextPlayer returns the piece expected to play next, assuming PlayerOne started the match and
// players alternated.
func (b Board) NextPlayer() Piece {
	var counts [3]int
	for row := range NumRows {
		for col := range NumColumns {
			counts[b[row][col]]++
		}
	}
	if counts[PlayerOne] > counts[PlayerTwo] {
		return PlayerTwo
	}
	return PlayerOne
}

// String returns a multi-line representation of the board, top row first, using '.' for
// empty cells and the player digit otherwise.
func (b Board) String() string {
	var sb strings.Builder
	for row := NumRows - 1; row >= 0; row-- {
		for col := range NumColumns {
			if b[row][col] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(b[row][col]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
