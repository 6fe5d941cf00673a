package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is a source of XMAP inputs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// List returns the names under prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// WritableStore is a BlobStore that can also store blobs, e.g. augmented or
// filtered outputs.
type WritableStore interface {
	BlobStore
	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
}

// Blob is a read-only handle to an input.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
	// ReadRange streams length bytes from off. Remote stores serve it with a
	// single request, so it is the preferred way to scan a whole blob.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// rangeOf clamps [off, off+length) to a blob of size bytes.
func rangeOf(size, off, length int64) (int64, int64, error) {
	if off < 0 || length < 0 {
		return 0, 0, os.ErrInvalid
	}
	if off > size {
		off = size
	}
	end := off + length
	if end > size || end < off {
		end = size
	}
	return off, end, nil
}
