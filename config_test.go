package opticalmapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauloal/opticalmapping/blobstore"
	"github.com/sauloal/opticalmapping/index"
	"github.com/sauloal/opticalmapping/schema"
)

const configTOML = `
index_fields    = ["QryContigID", "Confidence"]
group_pairs     = ["RefContigID:Orientation"]
concurrency     = 4
read_rate_limit = 1048576
memory_limit    = 67108864
max_line_size   = 4096
codec           = "go-json"
compression     = "zstd"
filters         = ["Confidence:ge:10.0", "Orientation:eq:+"]

[log]
level  = "debug"
format = "json"
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opticalmapping.toml")
	require.NoError(t, os.WriteFile(path, []byte(configTOML), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"QryContigID", "Confidence"}, cfg.IndexFields)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, int64(67108864), cfg.MemoryLimit)
	assert.Equal(t, "debug", cfg.Log.Level)

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	o := applyOptions(opts)

	assert.Equal(t, []schema.FieldID{schema.QryContigID, schema.Confidence, schema.XmapEntryID}, o.indexFields)
	assert.Equal(t, index.Pair{A: schema.RefContigID, B: schema.Orientation}, o.groupPairs[0])
	assert.Len(t, o.groupPairs, 4)
	assert.Equal(t, 4, o.concurrency)
	assert.Equal(t, int64(1048576), o.readRateLimit)
	assert.Equal(t, 4096, o.maxLineSize)
	assert.Equal(t, "go-json", o.codec.Name())
	require.NotNil(t, o.compression)
	assert.Equal(t, blobstore.CompressionZstd, *o.compression)
	assert.True(t, o.logger.Enabled(t.Context(), -4))

	rc := o.controller()
	assert.Equal(t, int64(67108864), rc.Config().MemoryLimitBytes)

	chain, err := cfg.Chain(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Confidence:ge:10.0", "Orientation:eq:+"}, chain.Strings())
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		is   error
	}{
		{"syntax", "concurrency = [", ErrSchema},
		{"index field", `index_fields = ["Bogus"]`, ErrUnknownField},
		{"group pair", `group_pairs = ["RefContigID"]`, ErrSchema},
		{"codec", `codec = "xml"`, ErrSchema},
		{"log format", "[log]\nformat = \"yaml\"", ErrSchema},
		{"log level", "[log]\nformat = \"text\"\nlevel = \"loud\"", ErrSchema},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.toml))
			if err == nil {
				_, err = cfg.Options(nil)
			}
			assert.ErrorIs(t, err, tt.is)
		})
	}

	cfg, err := ParseConfig([]byte(`compression = "brotli"`))
	require.NoError(t, err)
	_, err = cfg.Options(nil)
	assert.Error(t, err)
}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	o := applyOptions(opts)

	assert.Equal(t, 1, o.concurrency)
	assert.Nil(t, o.compression)
	assert.Equal(t, index.DefaultFields(), o.indexFields)
	assert.Len(t, o.groupPairs, len(index.DefaultPairs()))
}
