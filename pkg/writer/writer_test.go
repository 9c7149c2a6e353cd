package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIfChanged(t *testing.T) {
	t.Run("first write creates the file and parents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "components", "Card", "Card.scss")

		written, err := WriteIfChanged(path, []byte("a"))
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a", string(got))
	})

	t.Run("identical content is a no-op", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		_, err := WriteIfChanged(path, []byte("same"))
		require.NoError(t, err)

		before, err := os.Stat(path)
		require.NoError(t, err)

		written, err := WriteIfChanged(path, []byte("same"))
		require.NoError(t, err)
		assert.False(t, written)

		after, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime(), "no-op write must not touch the file")
	})

	t.Run("changed content overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		_, err := WriteIfChanged(path, []byte("old"))
		require.NoError(t, err)

		written, err := WriteIfChanged(path, []byte("new"))
		require.NoError(t, err)
		assert.True(t, written)

		got, _ := os.ReadFile(path)
		assert.Equal(t, "new", string(got))
	})
}
