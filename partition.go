package vertexid

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Partition splits a set of external ids by shard and translates them.
// The result maps each non-empty shard to the bitmap of its translated ids.
func (t Translator) Partition(ids *roaring64.Bitmap) map[uint64]*roaring64.Bitmap {
	parts := make(map[uint64]*roaring64.Bitmap)
	if ids == nil || ids.IsEmpty() {
		return parts
	}

	const flushAt = 4096
	pending := make(map[uint64][]uint64)

	it := ids.Iterator()
	for it.HasNext() {
		id := it.Next()
		shard := t.ShardOf(id)
		buf := append(pending[shard], t.Forward(id))
		if len(buf) == flushAt {
			partFor(parts, shard).AddMany(buf)
			buf = buf[:0]
		}
		pending[shard] = buf
	}

	for shard, buf := range pending {
		if len(buf) > 0 {
			partFor(parts, shard).AddMany(buf)
		}
	}
	return parts
}

// Merge is the inverse of Partition: it maps translated ids back to
// external ids and unions them.
func (t Translator) Merge(parts map[uint64]*roaring64.Bitmap) *roaring64.Bitmap {
	out := roaring64.New()
	for _, bm := range parts {
		if bm == nil {
			continue
		}
		it := bm.Iterator()
		for it.HasNext() {
			out.Add(t.Backward(it.Next()))
		}
	}
	return out
}

func partFor(parts map[uint64]*roaring64.Bitmap, shard uint64) *roaring64.Bitmap {
	bm, ok := parts[shard]
	if !ok {
		bm = roaring64.New()
		parts[shard] = bm
	}
	return bm
}
