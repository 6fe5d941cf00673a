package opticalmapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/sauloal/opticalmapping/alignment"
	"github.com/sauloal/opticalmapping/blobstore"
	"github.com/sauloal/opticalmapping/filter"
	"github.com/sauloal/opticalmapping/index"
	"github.com/sauloal/opticalmapping/internal/conv"
	"github.com/sauloal/opticalmapping/internal/resource"
	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/stats"
	"github.com/sauloal/opticalmapping/xmap"
)

// Sentinel errors raised by the packages of this module, re-exported so
// callers can match them with errors.Is without importing each package.
var (
	// ErrSchema reports an invalid registry, header or column.
	ErrSchema = schema.ErrSchema
	// ErrMalformedCode reports an undecodable HitEnum, Alignment or
	// Orientation cell.
	ErrMalformedCode = alignment.ErrMalformedCode
	// ErrMismatchedArity reports a data line whose column count differs from
	// the "#h" header.
	ErrMismatchedArity = xmap.ErrMismatchedArity
	// ErrBadFilterSyntax reports an expression that is not field:op:value.
	ErrBadFilterSyntax = filter.ErrBadFilterSyntax
	// ErrUnknownField reports a filter on a field the registry lacks.
	ErrUnknownField = filter.ErrUnknownField
	// ErrUnknownOperator reports a filter with an unknown operator.
	ErrUnknownOperator = filter.ErrUnknownOperator
	// ErrEmptyGroup reports statistics over an empty group or a zero divisor.
	ErrEmptyGroup = stats.ErrEmptyGroup
	// ErrShapeMismatch reports shards indexed on different columns.
	ErrShapeMismatch = index.ErrShapeMismatch
	// ErrNotFound reports a missing input.
	ErrNotFound = blobstore.ErrNotFound
	// ErrMemoryLimitExceeded reports an input over the WithMemoryLimit budget.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
	// ErrOverflow reports a dataset with more records than a position can
	// address.
	ErrOverflow = conv.ErrOverflow
)

// ErrCorruptInput reports a compressed input that could not be decoded.
var ErrCorruptInput = errors.New("corrupt input")

// ErrLineTooLong reports an input line over the WithMaxLineSize limit.
var ErrLineTooLong = errors.New("line too long")

// ErrNoInputs is returned by LoadShards when no shard names are given.
var ErrNoInputs = errors.New("no inputs")

// ShardError identifies the shard a LoadShards failure came from.
type ShardError struct {
	Shard int
	Name  string
	cause error
}

func (e *ShardError) Error() string {
	return "shard " + e.Name + ": " + e.cause.Error()
}

func (e *ShardError) Unwrap() error { return e.cause }

// translateError maps decoder and scanner errors of the lower layers to the
// errors of this package. Errors it does not know pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: %w", ErrLineTooLong, err)
	}

	// Decompression failures.
	for _, target := range []error{
		io.ErrUnexpectedEOF,
		gzip.ErrChecksum,
		gzip.ErrHeader,
		zstd.ErrMagicMismatch,
		zstd.ErrCRCMismatch,
		lz4.ErrInvalidFrame,
		lz4.ErrInvalidBlockChecksum,
		lz4.ErrInvalidFrameChecksum,
	} {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %w", ErrCorruptInput, err)
		}
	}
	return err
}
