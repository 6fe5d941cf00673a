package xmap

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sauloal/opticalmapping/index"
	"github.com/sauloal/opticalmapping/internal/conv"
	"github.com/sauloal/opticalmapping/schema"
)

const (
	// DefaultMaxLineSize bounds a single line. HitEnum and Alignment cells of
	// long contigs run to hundreds of kilobytes.
	DefaultMaxLineSize = 16 << 20

	ctxCheckInterval = 4096
)

// Result is the outcome of a successful parse.
type Result struct {
	Header  Header
	Records []*schema.Record
	Index   *index.Index
	Groups  *index.GroupIndex
	// Lines is the number of lines read, including comments and blanks.
	Lines int
}

// Parser reads XMAP text into records and builds the indices in the same pass.
type Parser struct {
	reg         *schema.Registry
	fields      []schema.FieldID
	pairs       []index.Pair
	maxLineSize int
	logger      *slog.Logger
}

// Option defines a configuration option for the Parser.
type Option func(*Parser)

// WithLogger sets the logger for the parser.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = l
	}
}

// WithIndexFields sets the columns of the single-column index.
func WithIndexFields(fields ...schema.FieldID) Option {
	return func(p *Parser) {
		p.fields = fields
	}
}

// WithGroupPairs sets the column pairs of the group index.
func WithGroupPairs(pairs ...index.Pair) Option {
	return func(p *Parser) {
		p.pairs = pairs
	}
}

// WithMaxLineSize sets the longest accepted line in bytes.
func WithMaxLineSize(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxLineSize = n
		}
	}
}

// NewParser creates a parser for the fields of reg.
func NewParser(reg *schema.Registry, opts ...Option) *Parser {
	p := &Parser{
		reg:         reg,
		fields:      index.DefaultFields(),
		pairs:       index.DefaultPairs(),
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads every line of r.
//
// Any error aborts the whole parse and no partial result is returned: a data
// line before "#h", an unknown column, a column count mismatch or a cell its
// field parser rejects.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*Result, error) {
	res := &Result{
		Index:  index.NewIndex(p.fields...),
		Groups: index.NewGroupIndex(p.pairs...),
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, p.maxLineSize)), p.maxLineSize)

	for sc.Scan() {
		res.Lines++
		if res.Lines%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		raw := strings.TrimRight(sc.Text(), "\r")
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if line[0] == '#' {
			if err := p.parseComment(&res.Header, line, res.Lines); err != nil {
				return nil, err
			}
			continue
		}

		if err := p.parseData(res, raw, res.Lines); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("xmap: read line %d: %w", res.Lines+1, err)
	}

	if p.logger != nil {
		p.logger.Debug("xmap parsed",
			"lines", res.Lines,
			"records", len(res.Records),
			"queries", res.Index.Cardinality(schema.QryContigID),
			"references", res.Index.Cardinality(schema.RefContigID),
		)
	}

	return res, nil
}

func (p *Parser) parseComment(h *Header, line string, lineNo int) error {
	h.Comments = append(h.Comments, line)

	if len(line) == 1 {
		return nil
	}

	switch {
	case isFilterLine(line):
		h.Filters = append(h.Filters, parseFilterLine(line))

	case isNamesLine(line):
		names := splitColumns(tagBody(line))
		fields := make([]schema.FieldID, len(names))
		seen := make(map[string]struct{}, len(names))
		for i, n := range names {
			spec, ok := p.reg.Lookup(n)
			if !ok {
				return &LineError{Line: lineNo, cause: fmt.Errorf("%w: unknown column %q", schema.ErrSchema, n)}
			}
			if _, dup := seen[n]; dup {
				return &LineError{Line: lineNo, cause: fmt.Errorf("%w: duplicate column %q", schema.ErrSchema, n)}
			}
			seen[n] = struct{}{}
			fields[i] = spec.ID
		}
		h.Names = names
		h.Fields = fields

	case isTypesLine(line):
		tags := splitColumns(tagBody(line))
		if len(tags) != len(h.Names) {
			return &ArityError{Line: lineNo, Want: len(h.Names), Got: len(tags)}
		}
		types := make([]schema.FieldType, len(tags))
		for i, tag := range tags {
			ft, err := schema.ParseFieldType(tag)
			if err != nil {
				return &LineError{Line: lineNo, cause: err}
			}
			types[i] = ft
			if want, _ := p.reg.Type(h.Names[i]); want != ft && p.logger != nil {
				p.logger.Warn("declared type differs from schema",
					"field", h.Names[i],
					"declared", ft.String(),
					"schema", want.String(),
				)
			}
		}
		h.Types = types

	case strings.Contains(line, refMapsMarker):
		h.ReferenceMapsFrom = markerValue(line, refMapsMarker)

	case strings.Contains(line, queryMapsMarker):
		h.QueryMapsFrom = markerValue(line, queryMapsMarker)
	}

	return nil
}

func (p *Parser) parseData(res *Result, line string, lineNo int) error {
	h := &res.Header
	if len(h.Names) == 0 {
		return &LineError{Line: lineNo, cause: fmt.Errorf("%w: data line before #h header", schema.ErrSchema)}
	}

	cols := splitColumns(line)
	if len(cols) != len(h.Fields) {
		return &ArityError{Line: lineNo, Want: len(h.Fields), Got: len(cols)}
	}

	b := schema.NewBuilder()
	for i, cell := range cols {
		id := h.Fields[i]
		if cell == "" && id.IsMeta() {
			continue
		}
		v, err := p.reg.Parse(id, cell)
		if err != nil {
			return &LineError{Line: lineNo, cause: err}
		}
		b.Set(id, v)
	}
	rec := b.Record()

	pos, err := conv.Position(len(res.Records))
	if err != nil {
		return &LineError{Line: lineNo, cause: err}
	}
	res.Index.Add(pos, rec)
	res.Groups.Add(pos, rec)
	res.Records = append(res.Records, rec)

	return nil
}

// Parse reads r with a default parser for reg.
func Parse(ctx context.Context, reg *schema.Registry, r io.Reader, opts ...Option) (*Result, error) {
	return NewParser(reg, opts...).Parse(ctx, r)
}
