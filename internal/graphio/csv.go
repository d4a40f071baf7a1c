package graphio

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/apache/arrow-go/v18/arrow/memory"

	pqerrors "github.com/23skdu/indexpq/internal/errors"
)

// edgeSchema is the column layout of CSV edge files
var edgeSchema = arrow.NewSchema([]arrow.Field{
	{Name: "from", Type: arrow.PrimitiveTypes.Int64},
	{Name: "to", Type: arrow.PrimitiveTypes.Int64},
	{Name: "weight", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// ReadCSV decodes a CSV edge file with a from,to,weight header. The vertex
// count is one more than the largest endpoint.
func ReadCSV(r io.Reader) (*EdgeList, error) {
	rdr := csv.NewReader(r, edgeSchema,
		csv.WithHeader(true),
		csv.WithChunk(4096),
		csv.WithAllocator(memory.NewGoAllocator()),
	)
	defer rdr.Release()

	var edges []EdgeRecord
	for rdr.Next() {
		rec := rdr.Record()
		from := rec.Column(0).(*array.Int64)
		to := rec.Column(1).(*array.Int64)
		weight := rec.Column(2).(*array.Float64)

		for i := 0; i < int(rec.NumRows()); i++ {
			if from.IsNull(i) || to.IsNull(i) || weight.IsNull(i) {
				return nil, pqerrors.NewStorageError("ReadCSV", "edge row has an empty field").
					WithContext("row", len(edges))
			}
			edges = append(edges, EdgeRecord{
				From:   from.Value(i),
				To:     to.Value(i),
				Weight: weight.Value(i),
			})
		}
	}
	if err := rdr.Err(); err != nil {
		return nil, pqerrors.WrapStorageError(err, "ReadCSV", "decode edge rows")
	}

	n, err := vertexCount("ReadCSV", edges)
	if err != nil {
		return nil, err
	}
	return &EdgeList{Vertices: n, Edges: edges}, nil
}
