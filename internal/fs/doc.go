// Package fs abstracts the filesystem writes of blobstore.LocalStore.
//
//   - [FileSystem]: the operations an atomic write needs (temp file, rename).
//   - [LocalFS]: production implementation on the os package.
//   - [FaultyFS]: test wrapper that injects write, sync and rename errors.
//
// Production code uses fs.Default:
//
//	f, err := fs.Default.CreateTemp(dir, ".tmp-*")
//
// Tests inject a FaultyFS to exercise the failure paths:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.FailWritesAfter(1024)
//	store := blobstore.NewLocalStore(dir, blobstore.WithFileSystem(ffs))
package fs
