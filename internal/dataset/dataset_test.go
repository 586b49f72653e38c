package dataset

import (
	"bytes"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

func sampleRecords() []Record {
	return []Record{
		NewRecord(NewBoard(), 3),
		NewRecord(PlayMoves(3), 3),
		NewRecord(PlayMoves(3, 3), 2),
		NewRecord(PlayMoves(3, 3, 2), 4),
	}
}

func TestNewRecord(t *testing.T) {
	r := NewRecord(PlayMoves(3, 4), 5)
	assert.Equal(t, "5", r.Move)
	assert.Equal(t, "0001200"+strings.Repeat("0", 35), r.State)
	b, err := r.Board()
	require.NoError(t, err)
	assert.Equal(t, PlayMoves(3, 4), b)
}

func TestReadCSV(t *testing.T) {
	state := PlayMoves(3).Encode()
	input := "id,jogada,estado\n7,3," + state + "\n8,4," + strings.TrimLeft(state, "0") + "\n"
	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Record{State: state, Move: "3"}, records[0])

	// Leading empty cells dropped by numeric storage are padded back.
	b, err := records[1].Board()
	require.NoError(t, err)
	assert.Equal(t, PlayMoves(3), b)

	_, err = ReadCSV(strings.NewReader("estado,move\n000,1\n"))
	assert.Error(t, err)
	_, err = ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	records := sampleRecords()
	require.NoError(t, WriteCSV(&buf, records))
	assert.True(t, strings.HasPrefix(buf.String(), "estado,jogada\n"))
	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	records := sampleRecords()
	for _, name := range []string{"moves.csv", "moves.parquet"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, records), name)
		got, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, records, got, name)
	}
	assert.Error(t, Save(filepath.Join(dir, "moves.json"), records))
	_, err := Load(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestToRows(t *testing.T) {
	rows, err := ToRows(sampleRecords())
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Len(t, rows[0], NumCells+1)
	assert.Equal(t, "3", rows[0][MoveColumn])
	assert.Equal(t, "1", rows[1]["pos_3"])
	assert.Equal(t, "2", rows[2]["pos_10"])

	_, err = ToRows([]Record{{State: strings.Repeat("3", NumCells), Move: "1"}})
	assert.Error(t, err)
}

func TestTrain(t *testing.T) {
	records := sampleRecords()
	m, err := Train(records)
	require.NoError(t, err)
	for _, record := range records {
		b, err := record.Board()
		require.NoError(t, err)
		rows, err := ToRows([]Record{record})
		require.NoError(t, err)
		label, ok := m.Classify(rows[0])
		require.True(t, ok, "board:\n%s", b)
		assert.Equal(t, record.Move, label)
	}
}

func TestEvaluate(t *testing.T) {
	records := sampleRecords()
	m, err := Train(records[:2])
	require.NoError(t, err)
	e, err := Evaluate(m, records)
	require.NoError(t, err)
	assert.Equal(t, 4, e.Total)
	// Both training moves are column 3: the model is a single leaf.
	assert.Equal(t, 2, e.Correct)
	assert.Equal(t, 0, e.Unknown)
	assert.InDelta(t, 0.5, e.Accuracy(), 1e-9)
	assert.Equal(t, 0.0, Evaluation{}.Accuracy())
}

func TestSplit(t *testing.T) {
	records := sampleRecords()
	train, test := Split(records, 0.25, rand.New(rand.NewPCG(1, 2)))
	assert.Len(t, train, 3)
	assert.Len(t, test, 1)
	assert.ElementsMatch(t, records, append(train, test...))

	train, test = Split(records, 0, rand.New(rand.NewPCG(1, 2)))
	assert.Len(t, train, 4)
	assert.Empty(t, test)
}
