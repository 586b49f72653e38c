package state

import (
	"github.com/gomlx/exceptions"
)

// Outcome of a board position.
type Outcome uint8

const (
	InProgress Outcome = iota
	Win
	Draw
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "InProgress"
	case Win:
		return "Win"
	case Draw:
		return "Draw"
	}
	return "InvalidOutcome"
}

// IsColumnFull returns whether the top cell of the column is occupied.
func (b Board) IsColumnFull(col Column) bool {
	return b[NumRows-1][col] != Empty
}

// IsValid returns whether a piece can be dropped in the column: it must be within range and
// not full. It never panics, so it can be used to check user input.
func (b Board) IsValid(col Column) bool {
	return col >= 0 && col < NumColumns && !b.IsColumnFull(col)
}

// NextEmptyRow returns the lowest empty row of the column, where a dropped piece would land.
// It returns -1 if the column is full.
func (b Board) NextEmptyRow(col Column) int {
	for row := range NumRows {
		if b[row][col] == Empty {
			return row
		}
	}
	return -1
}

// Place sets the piece at the given row and column. It doesn't check gravity.
func (b *Board) Place(row int, col Column, piece Piece) {
	b[row][col] = piece
}

// Act returns a copy of the board with the piece dropped in the given column.
// The column must have been checked with IsValid.
func (b Board) Act(col Column, piece Piece) Board {
	if !b.IsValid(col) {
		exceptions.Panicf("invalid move: %s is out of range or full", col)
	}
	b.Place(b.NextEmptyRow(col), col, piece)
	return b
}

// ValidColumns returns the columns that are not full, in ascending order.
func (b Board) ValidColumns() []Column {
	columns := make([]Column, 0, NumColumns)
	for col := range Column(NumColumns) {
		if !b.IsColumnFull(col) {
			columns = append(columns, col)
		}
	}
	return columns
}

// IsFull returns whether there are no empty cells left.
func (b Board) IsFull() bool {
	for col := range Column(NumColumns) {
		if !b.IsColumnFull(col) {
			return false
		}
	}
	return true
}

// Wins returns whether the piece has four-in-a-row in any of the four orientations.
func (b Board) Wins(piece Piece) bool {
	for _, w := range windows {
		if b.countInWindow(w, piece) == WindowLength {
			return true
		}
	}
	return false
}

// WinsIn is like Wins, but only checks windows of the given orientation.
func (b Board) WinsIn(piece Piece, orientation Orientation) bool {
	for _, w := range windows {
		if w.Orientation == orientation && b.countInWindow(w, piece) == WindowLength {
			return true
		}
	}
	return false
}

// IsDraw returns whether the board is full and no player has four-in-a-row.
func (b Board) IsDraw() bool {
	if b.Wins(PlayerOne) || b.Wins(PlayerTwo) {
		return false
	}
	return b.IsFull()
}

// Outcome of the board. If the outcome is Win, winner holds the winning piece, otherwise it is Empty.
//
// Boards where both players have four-in-a-row can't be reached in a match; for those PlayerOne is reported.
func (b Board) Outcome() (outcome Outcome, winner Piece) {
	for _, player := range Players {
		if b.Wins(player) {
			return Win, player
		}
	}
	if b.IsFull() {
		return Draw, Empty
	}
	return InProgress, Empty
}

// IsFinished returns whether a player won or the board is full.
func (b Board) IsFinished() bool {
	outcome, _ := b.Outcome()
	return outcome != InProgress
}
