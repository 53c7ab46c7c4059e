// Package vertexid provides the id arithmetic of a disk-sharded graph store.
//
// Two independent primitives live here:
//
//   - Translator remaps the external, sequential vertex id space into an
//     internal space where every shard's vertices form one contiguous block.
//   - Packet packs a vertex id and a 28-bit auxiliary value (an offset into an
//     edge-value region, for instance) into a single uint64.
//
// Both are pure: no I/O, no locks, no mutable state. A Translator can be
// shared by any number of goroutines.
//
// # Translating ids
//
// External ids are dealt round-robin across shards. With 4 shards of 1000
// slots, id 6 belongs to shard 2 at position 1 and is stored at 2*1000+1:
//
//	tr, _ := vertexid.New(1000, 4)
//	internal := tr.Forward(6)         // 2001
//	external := tr.Backward(internal) // 6
//
// Forward and Backward are exact inverses for every id below
// tr.Capacity() (IntervalLength * NumShards). Sizing the interval so that
// capacity covers all vertices is the caller's responsibility.
//
// # Persisting a configuration
//
// String returns a compact descriptor that Parse turns back into an equal
// Translator. It is meant to be stored as a shard-set header:
//
//	desc := tr.String() // "vertex_interval_length=1000\nnumShards=4\n"
//	tr2, err := vertexid.Parse(desc)
//
// Translator also implements encoding.TextMarshaler, so it can be embedded in
// JSON or other text formats directly. See package manifest for storing
// descriptors in a blob store.
//
// # Packets
//
//	p, err := vertexid.EncodePacket(vertexID, offset)
//	vertexID, offset = p.Decode()
//
// Values wider than their field (36 bits for the vertex id, 28 for aux) are
// rejected with an *EncodingError, never truncated.
//
// # Errors
//
// Every error returned by this package matches one of ErrConfiguration,
// ErrParse or ErrEncoding under errors.Is, and can be unpacked into the
// corresponding typed error with errors.As.
package vertexid
