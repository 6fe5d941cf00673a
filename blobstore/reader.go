package blobstore

import (
	"context"
	"errors"
	"io"

	"github.com/sauloal/opticalmapping/internal/resource"
)

// ReaderOption configures OpenReader.
type ReaderOption func(*readerOptions)

type readerOptions struct {
	rc *resource.Controller
}

// WithController throttles raw reads and charges the blob size against the
// controller's memory budget until the reader is closed.
func WithController(rc *resource.Controller) ReaderOption {
	return func(o *readerOptions) {
		o.rc = rc
	}
}

// Reader streams the decompressed contents of a blob.
type Reader struct {
	blob        Blob
	body        io.ReadCloser
	dec         io.ReadCloser
	compression Compression
	rc          *resource.Controller
	reserved    int64
}

// OpenReader opens name in store and returns its decompressed contents.
// The compression format is detected from the leading bytes.
func OpenReader(ctx context.Context, store BlobStore, name string, optFns ...ReaderOption) (*Reader, error) {
	var opts readerOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	size := blob.Size()
	if err := opts.rc.AcquireMemory(size); err != nil {
		blob.Close()
		return nil, err
	}

	body, err := blob.ReadRange(ctx, 0, size)
	if err != nil {
		opts.rc.ReleaseMemory(size)
		blob.Close()
		return nil, err
	}

	var raw io.Reader = body
	if opts.rc != nil {
		raw = resource.NewRateLimitedReader(ctx, body, opts.rc)
	}

	dec, c, err := NewReader(raw)
	if err != nil {
		opts.rc.ReleaseMemory(size)
		body.Close()
		blob.Close()
		return nil, err
	}

	return &Reader{
		blob:        blob,
		body:        body,
		dec:         dec,
		compression: c,
		rc:          opts.rc,
		reserved:    size,
	}, nil
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	return r.dec.Read(p)
}

// Compression returns the detected format.
func (r *Reader) Compression() Compression {
	return r.compression
}

// Size returns the raw (possibly compressed) blob size.
func (r *Reader) Size() int64 {
	return r.blob.Size()
}

// Close releases the decoder, the stream and the blob.
func (r *Reader) Close() error {
	err := errors.Join(r.dec.Close(), r.body.Close(), r.blob.Close())
	r.rc.ReleaseMemory(r.reserved)
	r.reserved = 0
	return err
}
