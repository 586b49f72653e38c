package id3

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/janpfeifer/connectGo/internal/searchers"
	. "github.com/janpfeifer/connectGo/internal/state"
	"k8s.io/klog/v2"
)

// BoardAttributes are the names of the cell attributes of a board, "pos_0" to "pos_41", in the
// order of Board.Encode.
func BoardAttributes() []string {
	attributes := make([]string, NumCells)
	for ii := range attributes {
		attributes[ii] = BoardAttribute(ii)
	}
	return attributes
}

// BoardAttribute returns the name of the attribute of the cell at position idx of Board.Encode.
func BoardAttribute(idx int) string {
	return fmt.Sprintf("pos_%d", idx)
}

// BoardExample converts the board into an example, one attribute per cell with values "0", "1" or "2".
func BoardExample(board Board) Row {
	return EncodedExample(board.Encode())
}

// EncodedExample converts a board in the Board.Encode format to an example.
func EncodedExample(encoded string) Row {
	row := make(Row, len(encoded)+1)
	for ii := range len(encoded) {
		row[BoardAttribute(ii)] = encoded[ii : ii+1]
	}
	return row
}

// Predictor is a searchers.Searcher that plays the column predicted by a trained model.
type Predictor struct {
	model *TrainedModel
	rng   *rand.Rand
}

// Assert that Predictor implements searchers.Searcher.
var _ searchers.Searcher = (*Predictor)(nil)

// NewPredictor creates a Predictor using model, which must have been trained with BoardAttributes.
// The model can be shared among predictors.
func NewPredictor(model *TrainedModel) *Predictor {
	return &Predictor{model: model, rng: searchers.NewRand()}
}

// WithRand sets the random number generator used when the prediction can't be used.
func (p *Predictor) WithRand(rng *rand.Rand) *Predictor {
	p.rng = rng
	return p
}

// Search implements searchers.Searcher.
//
// The predicted label is used if it is a legal column. Otherwise (an unknown branch, a label that is
// not a column, or a full column) it falls back to a random legal column, or NoMove if the board is full.
func (p *Predictor) Search(board Board) Column {
	label, ok := p.model.Classify(BoardExample(board))
	if ok {
		if value, err := strconv.Atoi(label); err == nil && value >= 0 && value < NumColumns &&
			board.IsValid(Column(value)) {
			if klog.V(2).Enabled() {
				klog.Infof("%s: predicted %s", p, Column(value))
			}
			return Column(value)
		}
	}
	col := searchers.RandomColumn(p.rng, board)
	if klog.V(2).Enabled() {
		klog.Infof("%s: prediction %q (ok=%v) not playable, random %s", p, label, ok, col)
	}
	return col
}

// String implements searchers.Searcher.
func (p *Predictor) String() string {
	return fmt.Sprintf("id3(%d rows, %d leaves)", p.model.NumRows(), p.model.NumLeaves())
}
