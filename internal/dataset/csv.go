package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
)

// ReadCSV reads records from a CSV with a header row. The header must have the StateColumn and
// MoveColumn columns, in any order; other columns are ignored.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}
	stateIdx := slices.Index(header, StateColumn)
	moveIdx := slices.Index(header, MoveColumn)
	if stateIdx < 0 || moveIdx < 0 {
		return nil, errors.Errorf("CSV header %q must have the columns %q and %q", header, StateColumn, MoveColumn)
	}
	var records []Record
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read CSV record #%d", len(records))
		}
		if len(fields) <= max(stateIdx, moveIdx) {
			return nil, errors.Errorf("CSV record #%d has only %d fields", len(records), len(fields))
		}
		records = append(records, Record{State: fields[stateIdx], Move: fields[moveIdx]})
	}
	return records, nil
}

// WriteCSV writes the records with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{StateColumn, MoveColumn}); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}
	for _, record := range records {
		if err := writer.Write([]string{record.State, record.Move}); err != nil {
			return errors.Wrap(err, "failed to write CSV record")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV")
}

// LoadCSV reads the records from the CSV file in path.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open dataset %q", path)
	}
	defer func() { _ = f.Close() }()
	records, err := ReadCSV(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "dataset %q", path)
	}
	return records, nil
}

// SaveCSV writes the records to the CSV file in path.
func SaveCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create dataset %q", path)
	}
	if err = WriteCSV(f, records); err != nil {
		_ = f.Close()
		return errors.WithMessagef(err, "dataset %q", path)
	}
	return errors.Wrapf(f.Close(), "failed to close dataset %q", path)
}
