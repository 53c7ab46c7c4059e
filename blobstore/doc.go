// Package blobstore provides the storage abstraction shard-set manifests are
// persisted through.
//
// BlobStore is the interface for reading and writing small, whole blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests
//   - LocalStore: local filesystem with atomic rename writes
//   - ThrottledStore: rate-limited wrapper around any store
//   - s3.Store / s3.DDBCommitStore: Amazon S3, optionally with DynamoDB
//     guarding creates
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Conditional Creates
//
// Stores that can create a blob atomically only if it is absent implement
// ConditionalPutter. The package-level PutIfAbsent helper uses it when
// available and falls back to a check-then-write otherwise:
//
//	err := blobstore.PutIfAbsent(ctx, store, "graph/SHARDS", data)
//	if errors.Is(err, blobstore.ErrExists) { ... }
package blobstore
