// Package codec encodes lists of vertex packets into self-describing blocks.
//
// A block is what an adjacency index stores per vertex: the packets of all
// its out-edges (neighbour id plus edge-value offset). Packets are written as
// zig-zag varint deltas, so sorted adjacency lists shrink to a byte or two per
// edge before compression, and then optionally compressed with LZ4 (hot data)
// or ZSTD (cold data).
//
// Layout (little-endian):
//
//	Magic       (2 bytes)  "VP"
//	Version     (1 byte)
//	Compression (1 byte)   None, LZ4 or ZSTD as actually stored
//	Count       (4 bytes)  number of packets
//	RawSize     (4 bytes)  size of the uncompressed delta stream
//	Checksum    (4 bytes)  CRC32C of the stored payload
//	Payload     (...)
//
// Compression is skipped when it saves less than 10%; the header then says
// None and DecodeBlock reads the payload as is.
//
// Header sizes are checked against the payload before anything is allocated:
// RawSize is capped at MaxRawSize and at the largest size the stored
// compression can expand the payload to.
//
// Changing the layout is a breaking-change boundary: bump Version.
package codec
