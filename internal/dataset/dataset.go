// Package dataset stores and loads move datasets used to train the id3 move predictor.
//
// Each Record is a board position, encoded with state.Board.Encode, and the column played on it.
// Records can be stored as CSV files, with the header "estado,jogada", or as Parquet files.
package dataset

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/janpfeifer/connectGo/internal/ai/id3"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	// StateColumn is the name of the column holding the encoded board.
	StateColumn = "estado"

	// MoveColumn is the name of the column holding the column played, and the target of the model.
	MoveColumn = "jogada"
)

// Record is one training example: the board before the move and the column played.
type Record struct {
	State string `parquet:"estado"`
	Move  string `parquet:"jogada,dict"`
}

// NewRecord creates the record of playing col on board.
func NewRecord(board Board, col Column) Record {
	return Record{State: board.Encode(), Move: strconv.Itoa(int(col))}
}

// normalizeState left-pads states shorter than NumCells with '0': some tools store the
// state as a number, dropping the leading empty cells.
func normalizeState(state string) string {
	state = strings.TrimSpace(state)
	if len(state) < NumCells {
		state = strings.Repeat("0", NumCells-len(state)) + state
	}
	return state
}

// Board decodes the state of the record.
func (r Record) Board() (Board, error) {
	return ParseBoard(normalizeState(r.State))
}

// ToRows converts records to id3 rows, one attribute per cell (see id3.BoardAttributes) plus
// the target MoveColumn.
func ToRows(records []Record) ([]id3.Row, error) {
	rows := make([]id3.Row, 0, len(records))
	for ii, record := range records {
		state := normalizeState(record.State)
		if _, err := ParseBoard(state); err != nil {
			return nil, errors.WithMessagef(err, "record #%d", ii)
		}
		row := id3.EncodedExample(state)
		row[MoveColumn] = strings.TrimSpace(record.Move)
		rows = append(rows, row)
	}
	return rows, nil
}

// Train an id3 model on the records.
func Train(records []Record) (*id3.TrainedModel, error) {
	rows, err := ToRows(records)
	if err != nil {
		return nil, err
	}
	return id3.Train(rows, id3.BoardAttributes(), MoveColumn)
}

// Load records from path, in CSV or Parquet format depending on the file extension.
func Load(path string) ([]Record, error) {
	var records []Record
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, err = LoadCSV(path)
	case ".parquet":
		records, err = LoadParquet(path)
	default:
		return nil, errors.Errorf("unknown dataset format %q for %q, use .csv or .parquet", ext, path)
	}
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("Loaded %d records from %q", len(records), path)
	return records, nil
}

// Save records to path, in CSV or Parquet format depending on the file extension.
func Save(path string, records []Record) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return SaveCSV(path, records)
	case ".parquet":
		return SaveParquet(path, records)
	default:
		return errors.Errorf("unknown dataset format %q for %q, use .csv or .parquet", ext, path)
	}
}

// Evaluation of a model on a set of records.
type Evaluation struct {
	Total, Correct, Unknown int
}

// Accuracy is the fraction of records correctly classified, or 0 if there are none.
func (e Evaluation) Accuracy() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Total)
}

// String implements fmt.Stringer.
func (e Evaluation) String() string {
	return fmt.Sprintf("accuracy %.1f%% (%d/%d), %d unknown", 100*e.Accuracy(), e.Correct, e.Total, e.Unknown)
}

// Evaluate classifies every record with model and counts how many are correct.
// Records the model can't classify are counted as Unknown (and not correct).
func Evaluate(model *id3.TrainedModel, records []Record) (Evaluation, error) {
	rows, err := ToRows(records)
	if err != nil {
		return Evaluation{}, err
	}
	var e Evaluation
	for _, row := range rows {
		e.Total++
		label, ok := model.Classify(row)
		switch {
		case !ok:
			e.Unknown++
		case label == row[MoveColumn]:
			e.Correct++
		}
	}
	return e, nil
}

// Split shuffles the records with rng and splits them in train and test sets, with
// testFraction of the records (rounded down) in the test set.
func Split(records []Record, testFraction float64, rng *rand.Rand) (train, test []Record) {
	shuffled := slices.Clone(records)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	numTest := int(float64(len(shuffled)) * testFraction)
	numTest = min(max(numTest, 0), len(shuffled))
	return shuffled[numTest:], shuffled[:numTest]
}
