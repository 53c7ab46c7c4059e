// Package hash provides the checksums used by persisted vertexid formats.
//
// Packet blocks and shard-set manifests are protected with CRC32-Castagnoli,
// which Go's hash/crc32 accelerates on x86-64 (SSE4.2) and ARM64 (CRC).
//
//	checksum := hash.CRC32C(payload)
//
// Headers that are checksummed in pieces use UpdateCRC32C:
//
//	crc := hash.CRC32C(header)
//	crc = hash.UpdateCRC32C(crc, body)
package hash
