package state

import (
	"github.com/pkg/errors"
)

// Encode the board as a string of NumCells digits ('0', '1' or '2'), row-major starting from the
// bottom row. This is the format used by the training datasets.
func (b Board) Encode() string {
	buf := make([]byte, 0, NumCells)
	for row := range NumRows {
		for col := range NumColumns {
			buf = append(buf, '0'+byte(b[row][col]))
		}
	}
	return string(buf)
}

// ParseBoard decodes a board encoded with Board.Encode.
//
// It only checks the encoding: floating pieces (without support below) are accepted.
func ParseBoard(encoded string) (b Board, err error) {
	if len(encoded) != NumCells {
		err = errors.Errorf("encoded board must have %d cells, got %d in %q", NumCells, len(encoded), encoded)
		return
	}
	for idx := range NumCells {
		digit := encoded[idx]
		if digit < '0' || digit > '2' {
			err = errors.Errorf("invalid cell value %q at position %d of encoded board %q", digit, idx, encoded)
			return
		}
		b[idx/NumColumns][idx%NumColumns] = Piece(digit - '0')
	}
	return
}
