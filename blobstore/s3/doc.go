// Package s3 provides an Amazon S3 implementation of blobstore.WritableStore.
//
// # Usage
//
//	store, err := s3.NewStoreFromConfig(ctx, "my-bucket", "runs/2024-05/",
//	    s3.WithParallelDownload(8<<20, 4),
//	)
//
//	ds, err := opticalmapping.Load(ctx, store, "sample.xmap.zst")
//
// # Features
//
//   - Range reads; a whole-blob scan is a single request
//   - Optional multi-part parallel download for large inputs
//   - Uploads through the s3 manager (multipart above the part size)
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
