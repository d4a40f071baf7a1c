package graphio

import (
	"errors"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	pqerrors "github.com/23skdu/indexpq/internal/errors"
)

// WriteParquet writes edges to path as EdgeRecord rows.
func WriteParquet(path string, edges []EdgeRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return pqerrors.WrapStorageError(err, "WriteParquet", "create edge file").WithContext("path", path)
	}
	defer f.Close()

	pw := parquet.NewGenericWriter[EdgeRecord](f, parquet.Compression(&parquet.Zstd))
	if _, err := pw.Write(edges); err != nil {
		_ = pw.Close()
		return pqerrors.WrapStorageError(err, "WriteParquet", "write edge rows")
	}
	if err := pw.Close(); err != nil {
		return pqerrors.WrapStorageError(err, "WriteParquet", "close writer")
	}
	return f.Sync()
}

// ReadParquet reads EdgeRecord rows from path. The vertex count is one more
// than the largest endpoint.
func ReadParquet(path string) (*EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pqerrors.WrapStorageError(err, "ReadParquet", "open edge file").WithContext("path", path)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, pqerrors.WrapStorageError(err, "ReadParquet", "stat edge file")
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, pqerrors.WrapStorageError(err, "ReadParquet", "open parquet file").WithContext("path", path)
	}

	pr := parquet.NewGenericReader[EdgeRecord](pf)
	defer pr.Close()

	rows := make([]EdgeRecord, pr.NumRows())
	n, err := pr.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, pqerrors.WrapStorageError(err, "ReadParquet", "read edge rows")
	}
	rows = rows[:n]

	v, err := vertexCount("ReadParquet", rows)
	if err != nil {
		return nil, err
	}
	return &EdgeList{Vertices: v, Edges: rows}, nil
}
