package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	newFile := func() *jen.File {
		f := jen.NewFile("mapper")
		f.Func().Id("Now").Params().Qual("time", "Time").Block(jen.Return(jen.Qual("time", "Now").Call()))
		return f
	}

	w := NewWriter(dir).WithWorkers(2)
	w.AddFile("now.go", newFile())
	w.AddFile("nil.go", nil)
	w.AddRaw("tb.snapshot", []byte{1, 2, 3})
	require.NoError(t, w.Write(context.Background()))

	m := w.Metrics()
	assert.Equal(t, 2, m.FilesWritten)
	assert.Equal(t, 0, m.FilesSkipped)
	assert.Positive(t, m.TotalBytes)

	code, err := os.ReadFile(filepath.Join(dir, "now.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), `import "time"`)
	assert.Contains(t, string(code), "func Now() time.Time {")
	_, err = os.Stat(filepath.Join(dir, "nil.go"))
	assert.True(t, os.IsNotExist(err))

	t.Run("Unchanged", func(t *testing.T) {
		w := NewWriter(dir)
		w.AddFile("now.go", newFile())
		w.AddRaw("tb.snapshot", []byte{1, 2, 3})
		require.NoError(t, w.Write(context.Background()))
		assert.Equal(t, 0, w.Metrics().FilesWritten)
		assert.Equal(t, 2, w.Metrics().FilesSkipped)
	})

	t.Run("Changed", func(t *testing.T) {
		w := NewWriter(dir)
		w.AddRaw("tb.snapshot", []byte{4})
		require.NoError(t, w.Write(context.Background()))
		assert.Equal(t, 1, w.Metrics().FilesWritten)
	})
}

func TestWriter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := NewWriter(t.TempDir())
	w.AddRaw("a", []byte("a"))
	assert.ErrorIs(t, w.Write(ctx), context.Canceled)
}
