package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zzzzer91/bytekit/streamio"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, streamio.DefaultBufSize, c.Copy.BufferSize)
	assert.Equal(t, 4096, c.Chunks.BufferSize)
	assert.Empty(t, c.Relays)
}

func TestLoadConf(t *testing.T) {
	path := writeConf(t, `
copy:
  buffer_size: 1024
relays:
  - name: web
    listen: 127.0.0.1:9530
    target: 127.0.0.1:8080
  - name: db
    listen: 127.0.0.1:9531
    target: 127.0.0.1:5432
    buffer_size: 512
`)
	c, err := LoadConf(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, c.Copy.BufferSize)
	assert.Equal(t, 4096, c.Chunks.BufferSize)
	require.Len(t, c.Relays, 2)

	web := c.FindRelay("web")
	require.NotNil(t, web)
	assert.Equal(t, "127.0.0.1:8080", web.Target)
	assert.Equal(t, 1024, web.BufferSize)
	assert.Equal(t, 512, c.FindRelay("db").BufferSize)
	assert.Nil(t, c.FindRelay("missing"))
}

func TestLoadConfErrors(t *testing.T) {
	_, err := LoadConf(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConf(writeConf(t, "copy: [not, a, map]"))
	assert.Error(t, err)
}
