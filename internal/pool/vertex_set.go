package pool

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/23skdu/indexpq/internal/metrics"
)

// VertexSetPool manages a pool of *roaring.Bitmap vertex sets to reduce GC
// pressure across repeated graph runs.
type VertexSetPool struct {
	pool sync.Pool
}

var globalVertexSetPool = NewVertexSetPool()

// NewVertexSetPool creates an empty pool.
func NewVertexSetPool() *VertexSetPool {
	return &VertexSetPool{
		pool: sync.Pool{
			New: func() any {
				return roaring.NewBitmap()
			},
		},
	}
}

// GetVertexSet retrieves an empty set from the global pool.
func GetVertexSet() *roaring.Bitmap {
	return globalVertexSetPool.Get()
}

// PutVertexSet returns a set to the global pool after clearing it.
func PutVertexSet(bm *roaring.Bitmap) {
	globalVertexSetPool.Put(bm)
}

// Get retrieves an empty set from the pool.
func (p *VertexSetPool) Get() *roaring.Bitmap {
	metrics.VertexSetPoolOperations.WithLabelValues("get").Inc()
	return p.pool.Get().(*roaring.Bitmap)
}

// Put clears bm and returns it to the pool. Nil is ignored.
func (p *VertexSetPool) Put(bm *roaring.Bitmap) {
	if bm == nil {
		return
	}
	metrics.VertexSetPoolOperations.WithLabelValues("put").Inc()
	bm.Clear()
	p.pool.Put(bm)
}
