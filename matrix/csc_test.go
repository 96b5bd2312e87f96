package matrix_test

import (
	"testing"

	"github.com/qkdcore/ldpc4qkd/matrix"
	"github.com/stretchr/testify/require"
)

// fixtureColPtrRowIdx builds a small 3x7 mother matrix:
//
//	H = [[1,0,1,0,1,0,1],
//	     [0,1,1,0,0,1,1],
//	     [0,0,0,1,1,1,1]]
func fixtureColPtrRowIdx() (colPtr, rowIdx []int) {
	// column-major non-zeros:
	// c0:{0} c1:{1} c2:{0,1} c3:{2} c4:{0,2} c5:{1,2} c6:{0,1,2}
	rowIdx = []int{0, 1, 0, 1, 2, 0, 2, 1, 2, 0, 1, 2}
	colPtr = []int{0, 1, 2, 4, 5, 7, 9, 12}
	return
}

func TestNewMotherMatrixFromCSC_DerivesSortedAdjacency(t *testing.T) {
	colPtr, rowIdx := fixtureColPtrRowIdx()
	mm, err := matrix.NewMotherMatrixFromCSC(colPtr, rowIdx)
	require.NoError(t, err)
	require.Equal(t, 3, mm.M())
	require.Equal(t, 7, mm.N())
	require.Equal(t, 12, mm.NNZ())

	adj := mm.MotherAdjacency()
	require.Equal(t, [][]int{{0, 2, 4, 6}, {1, 2, 5, 6}, {3, 4, 5, 6}}, [][]int(adj))
}

func TestNewMotherMatrixFromCSC_Rejections(t *testing.T) {
	t.Run("empty row idx", func(t *testing.T) {
		_, err := matrix.NewMotherMatrixFromCSC([]int{0, 0}, nil)
		require.ErrorIs(t, err, matrix.ErrEmptyRowIdx)
	})
	t.Run("bad start", func(t *testing.T) {
		_, err := matrix.NewMotherMatrixFromCSC([]int{1, 2}, []int{0})
		require.ErrorIs(t, err, matrix.ErrColPtrBadStart)
	})
	t.Run("bad end", func(t *testing.T) {
		_, err := matrix.NewMotherMatrixFromCSC([]int{0, 1}, []int{0, 1})
		require.ErrorIs(t, err, matrix.ErrColPtrBadEnd)
	})
	t.Run("not monotonic", func(t *testing.T) {
		_, err := matrix.NewMotherMatrixFromCSC([]int{0, 2, 1}, []int{0, 1})
		require.ErrorIs(t, err, matrix.ErrColPtrNotMonotonic)
	})
}

func TestNewMotherMatrixFromAdjacency(t *testing.T) {
	adj := matrix.Adjacency{{0, 2, 4, 6}, {1, 2, 5, 6}, {3, 4, 5, 6}}
	mm, err := matrix.NewMotherMatrixFromAdjacency(adj)
	require.NoError(t, err)
	require.Equal(t, 3, mm.M())
	require.Equal(t, 7, mm.N())
	require.Equal(t, adj, mm.MotherAdjacency())
}

func TestNewMotherMatrixFromAdjacency_RejectsDuplicates(t *testing.T) {
	adj := matrix.Adjacency{{0, 0, 1}}
	_, err := matrix.NewMotherMatrixFromAdjacency(adj)
	require.ErrorIs(t, err, matrix.ErrDuplicateRowEntry)
}
