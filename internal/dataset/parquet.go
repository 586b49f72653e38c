package dataset

import (
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/pkg/errors"
)

// parquetSchema is stored in the file metadata.
const parquetSchema = "connect4_moves_v1"

// SaveParquet writes the records to a zstd compressed Parquet file.
// It writes to a temporary file first, and renames it to path when done.
func SaveParquet(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %q", path)
		}
	}
	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)
	if err := parquet.WriteFile(tmpPath, records,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", parquetSchema),
	); err != nil {
		return errors.Wrapf(err, "failed to write parquet dataset %q", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "failed to rename %q to %q", tmpPath, path)
	}
	return nil
}

// LoadParquet reads all records from the Parquet file in path.
func LoadParquet(path string) ([]Record, error) {
	records, err := parquet.ReadFile[Record](path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read parquet dataset %q", path)
	}
	return records, nil
}
