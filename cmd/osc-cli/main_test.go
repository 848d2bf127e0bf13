package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenProtocolLog(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "camera.osclog")
	l, err := openProtocolLog(file, "0f8fad5b-d9cb")
	require.NoError(t, err)
	assert.Equal(t, file, l.Path())
	require.NoError(t, l.Close())

	l, err = openProtocolLog(dir, "0f8fad5b-d9cb")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(l.Path()))
	assert.True(t, strings.HasSuffix(l.Path(), "-0f8fad5b.osclog"), l.Path())
	require.NoError(t, l.Close())

	nested := filepath.Join(dir, "captures") + string(filepath.Separator)
	l, err = openProtocolLog(nested, "abc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "captures"), filepath.Dir(l.Path()))
	require.NoError(t, l.Close())
}
