package opticalmapping

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/sauloal/opticalmapping/blobstore"
	"github.com/sauloal/opticalmapping/codec"
	"github.com/sauloal/opticalmapping/filter"
	"github.com/sauloal/opticalmapping/index"
	"github.com/sauloal/opticalmapping/schema"
)

// Config is the file form of the options. Zero values keep the defaults.
//
//	index_fields    = ["QryContigID", "RefContigID", "Orientation"]
//	group_pairs     = ["RefContigID:QryContigID", "QryContigID:RefContigID"]
//	concurrency     = 4
//	read_rate_limit = 104857600
//	memory_limit    = 1073741824
//	codec           = "go-json"
//	compression     = "zstd"
//	filters         = ["Confidence:ge:10.0"]
//
//	[log]
//	level  = "debug"
//	format = "json"
type Config struct {
	IndexFields   []string  `toml:"index_fields"`
	GroupPairs    []string  `toml:"group_pairs"`
	Concurrency   int       `toml:"concurrency"`
	ReadRateLimit int64     `toml:"read_rate_limit"`
	MemoryLimit   int64     `toml:"memory_limit"`
	MaxLineSize   int       `toml:"max_line_size"`
	Codec         string    `toml:"codec"`
	Compression   string    `toml:"compression"`
	Filters       []string  `toml:"filters"`
	Log           LogConfig `toml:"log"`
}

// LogConfig selects the logger built by Config.Options.
type LogConfig struct {
	// Level is a slog level name: debug, info, warn or error.
	Level string `toml:"level"`
	// Format is "text" or "json". Empty disables logging.
	Format string `toml:"format"`
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML configuration text.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: config: %w", ErrSchema, err)
	}
	return cfg, nil
}

// Options resolves the configuration against reg into options. A nil reg
// means schema.Default().
func (c *Config) Options(reg *schema.Registry) ([]Option, error) {
	if reg == nil {
		reg = schema.Default()
	}
	opts := []Option{WithRegistry(reg)}

	if len(c.IndexFields) > 0 {
		fields := make([]schema.FieldID, 0, len(c.IndexFields))
		for _, name := range c.IndexFields {
			spec, ok := reg.Lookup(strings.TrimSpace(name))
			if !ok {
				return nil, fmt.Errorf("%w: index field %q", ErrUnknownField, name)
			}
			fields = append(fields, spec.ID)
		}
		opts = append(opts, WithIndexFields(fields...))
	}

	if len(c.GroupPairs) > 0 {
		pairs := make([]index.Pair, 0, len(c.GroupPairs))
		for _, s := range c.GroupPairs {
			p, err := index.ParsePair(reg, s)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p)
		}
		opts = append(opts, WithGroupPairs(pairs...))
	}

	if c.Concurrency > 0 {
		opts = append(opts, WithConcurrency(c.Concurrency))
	}
	if c.ReadRateLimit > 0 {
		opts = append(opts, WithReadRateLimit(c.ReadRateLimit))
	}
	if c.MemoryLimit > 0 {
		opts = append(opts, WithMemoryLimit(c.MemoryLimit))
	}
	if c.MaxLineSize > 0 {
		opts = append(opts, WithMaxLineSize(c.MaxLineSize))
	}

	if c.Codec != "" {
		cd, ok := codec.ByName(c.Codec)
		if !ok {
			return nil, fmt.Errorf("%w: unknown codec %q", ErrSchema, c.Codec)
		}
		opts = append(opts, WithCodec(cd))
	}

	if c.Compression != "" {
		comp, err := blobstore.ParseCompression(c.Compression)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCompression(comp))
	}

	logger, err := c.Log.logger()
	if err != nil {
		return nil, err
	}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}

	return opts, nil
}

// Chain parses the configured filters against reg. A nil reg means
// schema.Default().
func (c *Config) Chain(reg *schema.Registry) (filter.Chain, error) {
	if reg == nil {
		reg = schema.Default()
	}
	return filter.NewEngine(reg).ParseAll(c.Filters)
}

func (lc LogConfig) logger() (*Logger, error) {
	if lc.Format == "" {
		return nil, nil
	}

	level := slog.LevelInfo
	if lc.Level != "" {
		if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
			return nil, fmt.Errorf("%w: log level: %w", ErrSchema, err)
		}
	}

	switch strings.ToLower(lc.Format) {
	case "text":
		return NewTextLogger(level), nil
	case "json":
		return NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", ErrSchema, lc.Format)
	}
}
