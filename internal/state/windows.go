package state

import "iter"

// Orientation of a window of aligned cells.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
	DiagonalUp   // Rows increase with the columns.
	DiagonalDown // Rows decrease with the columns.
)

// Orientations enumerates all window orientations.
var Orientations = [4]Orientation{Horizontal, Vertical, DiagonalUp, DiagonalDown}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalUp:
		return "diagonal-up"
	case DiagonalDown:
		return "diagonal-down"
	}
	return "invalid-orientation"
}

// Cell position on the board.
type Cell struct {
	Row int
	Col Column
}

// Window is a line of WindowLength consecutive cells along one Orientation.
type Window struct {
	Orientation Orientation
	Cells       [WindowLength]Cell
}

// NumWindows on a 6x7 board: 24 horizontal, 21 vertical and 12 for each diagonal.
const NumWindows = 69

var windows = buildWindows()

func buildWindows() []Window {
	ws := make([]Window, 0, NumWindows)
	add := func(o Orientation, row int, col Column, dRow int, dCol Column) {
		w := Window{Orientation: o}
		for ii := range WindowLength {
			w.Cells[ii] = Cell{Row: row + ii*dRow, Col: col + Column(ii)*dCol}
		}
		ws = append(ws, w)
	}
	for row := range NumRows {
		for col := range Column(NumColumns - WindowLength + 1) {
			add(Horizontal, row, col, 0, 1)
		}
	}
	for col := range Column(NumColumns) {
		for row := range NumRows - WindowLength + 1 {
			add(Vertical, row, col, 1, 0)
		}
	}
	for row := range NumRows - WindowLength + 1 {
		for col := range Column(NumColumns - WindowLength + 1) {
			add(DiagonalUp, row, col, 1, 1)
		}
	}
	for row := WindowLength - 1; row < NumRows; row++ {
		for col := range Column(NumColumns - WindowLength + 1) {
			add(DiagonalDown, row, col, -1, 1)
		}
	}
	return ws
}

// Windows iterates over every window of the board: horizontals first, then verticals and
// the two diagonals.
func Windows() iter.Seq[Window] {
	return func(yield func(Window) bool) {
		for _, w := range windows {
			if !yield(w) {
				return
			}
		}
	}
}

// WindowPieces returns the contents of the cells of the window.
func (b Board) WindowPieces(w Window) (pieces [WindowLength]Piece) {
	for ii, cell := range w.Cells {
		pieces[ii] = b[cell.Row][cell.Col]
	}
	return
}

func (b Board) countInWindow(w Window, piece Piece) (count int) {
	for _, cell := range w.Cells {
		if b[cell.Row][cell.Col] == piece {
			count++
		}
	}
	return
}
