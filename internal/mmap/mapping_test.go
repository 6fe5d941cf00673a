package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.xmap")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMapping_ReadAt(t *testing.T) {
	content := "#h XmapEntryID\tQryContigID\n1\t141\n"
	m, err := Open(writeTemp(t, content))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, len(content), m.Size())
	assert.Equal(t, []byte(content), m.Bytes())
	require.NoError(t, m.Advise(AccessSequential))

	buf := make([]byte, 11)
	n, err := m.ReadAt(buf, 3)
	require.NoError(t, err)
	assert.Equal(t, "XmapEntryID", string(buf[:n]))

	tail := make([]byte, 16)
	n, err = m.ReadAt(tail, int64(len(content)-6))
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "1\t141\n", string(tail[:n]))

	_, err = m.ReadAt(buf, int64(len(content)))
	assert.Equal(t, io.EOF, err)

	_, err = m.ReadAt(buf, -1)
	assert.ErrorIs(t, err, ErrInvalidOffset)
}

func TestMapping_Empty(t *testing.T) {
	m, err := Open(writeTemp(t, ""))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 0, m.Size())
	assert.Empty(t, m.Bytes())
	assert.NoError(t, m.Advise(AccessRandom))
}

func TestMapping_Close(t *testing.T) {
	m, err := Open(writeTemp(t, "data"))
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessWillNeed), ErrClosed)
	_, err = m.ReadAt(make([]byte, 1), 0)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xmap"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
