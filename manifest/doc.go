// Package manifest persists shard-set descriptors through a blob store.
//
// # Overview
//
// A shard set is a graph whose vertices were dealt across shards by a
// vertexid.Translator. Readers must use the exact same translator the writer
// used, so the configuration is stored next to the shard files as a small
// manifest named "<name>/SHARDS".
//
// # Binary Format
//
//	Header (16 bytes):
//	  Magic    (4 bytes) - 0x56494453 ("VIDS")
//	  Version  (4 bytes) - Format version (currently 1)
//	  Checksum (4 bytes) - CRC32C of payload
//	  Length   (4 bytes) - Payload length in bytes
//
//	Payload:
//	  Name        (string)  - Shard-set name
//	  Descriptor  (string)  - vertexid.Translator.String()
//	  VertexCount (8 bytes) - Number of vertices written
//	  CreatedAt   (8 bytes) - Unix nanoseconds, MinInt64 when unset
//
// Strings are length-prefixed (2-byte length + bytes). All integers are
// little-endian.
//
// # Creating versus saving
//
// Create refuses to overwrite an existing manifest and returns ErrExists. On
// stores implementing blobstore.ConditionalPutter (LocalStore, MemoryStore,
// S3 and the DynamoDB commit store) this is atomic across processes. Save
// replaces unconditionally.
//
// # Thread Safety
//
// Store is safe for concurrent use. Concurrent Load calls for the same name
// share a single read.
package manifest
