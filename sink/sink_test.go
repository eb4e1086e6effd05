package sink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dunst0/waitui/sink"
)

func TestBufferAccumulates(t *testing.T) {
	b := sink.NewBuffer()
	_, err := b.WriteString("hello ")
	require.NoError(t, err)
	_, err = b.Write([]byte("world"))
	require.NoError(t, err)

	assert.Equal(t, "hello world", b.String())
	assert.Equal(t, 11, b.Len())
	assert.NoError(t, b.Close())
}

func TestFileWritesAndFlushesOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.dot")
	f, err := sink.NewFile(path)
	require.NoError(t, err)

	_, err = f.WriteString("digraph AST {}")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "digraph AST {}", string(data))
}
