package opticalmapping

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	l.WithSource("a.xmap").LogLoad(ctx, "a.xmap", 4, 0, nil)
	assert.Contains(t, buf.String(), "load completed")
	assert.Contains(t, buf.String(), "records=4")

	buf.Reset()
	l.LogFilter(ctx, []string{"Confidence:ge:10.0"}, 4, 3, nil)
	assert.Contains(t, buf.String(), "records_out=3")

	buf.Reset()
	l.WithGroup(1, 10).LogAugment(ctx, 2, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "ref=1 qry=10")

	buf.Reset()
	NoopLogger().LogSave(ctx, "x", 1, nil)
	assert.Empty(t, buf.String())
}
