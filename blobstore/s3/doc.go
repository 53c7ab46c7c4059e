// Package s3 implements blobstore.BlobStore on Amazon S3.
//
//	store, err := s3.NewFromDefaultConfig(ctx, "my-bucket", "graphs/")
//
// Store.PutIfAbsent uses S3 conditional writes (If-None-Match). Where those
// are unavailable or a single source of truth for names is wanted,
// DDBCommitStore records every name in a DynamoDB table with a conditional
// PutItem before the object is written.
package s3
