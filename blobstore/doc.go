// Package blobstore provides the sources XMAP inputs are read from.
//
// BlobStore opens named, immutable blobs. WritableStore adds Put and Delete
// for storing augmented or filtered outputs next to their inputs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local directory, blobs are memory mapped
//   - MemoryStore: in-memory map, for tests and pipelines
//   - s3.Store: Amazon S3 through aws-sdk-go-v2
//   - minio.Store: MinIO and other S3-compatible services
//
// # Compressed Inputs
//
// OpenReader detects gzip, zstd and LZ4 frame inputs by their magic bytes and
// returns the decompressed text:
//
//	r, err := blobstore.OpenReader(ctx, store, "sample.xmap.zst")
//	if err != nil { ... }
//	defer r.Close()
//
// NewWriter produces the same formats for outputs.
package blobstore
