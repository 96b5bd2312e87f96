package matcache_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/qkdcore/ldpc4qkd/format"
	"github.com/qkdcore/ldpc4qkd/internal/matcache"
	"github.com/qkdcore/ldpc4qkd/matrix"
	"github.com/stretchr/testify/require"
)

func writeTempCSCMat(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "h.cscmat")
	content := "# test matrix\n3 7 12\n0 1 2 4 5 7 9 12\n\n0 1 0 1 2 0 2 1 2 0 1 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCache_MemoizesByContent(t *testing.T) {
	var calls int32
	c := matcache.New(func(path string, data []byte) (*matrix.MotherMatrix, error) {
		atomic.AddInt32(&calls, 1)
		return format.ReadCSCMat(path)
	})

	path := writeTempCSCMat(t)

	mm1, err := c.Get(path)
	require.NoError(t, err)
	mm2, err := c.Get(path)
	require.NoError(t, err)

	require.Same(t, mm1, mm2)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCache_MissesOnContentChange(t *testing.T) {
	var calls int32
	c := matcache.New(func(path string, data []byte) (*matrix.MotherMatrix, error) {
		atomic.AddInt32(&calls, 1)
		return format.ReadCSCMat(path)
	})

	path := writeTempCSCMat(t)
	_, err := c.Get(path)
	require.NoError(t, err)

	// Rewrite with different content under the same path.
	content := "# test matrix v2\n1 1 1\n0 1\n\n0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	_, err = c.Get(path)
	require.NoError(t, err)

	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
