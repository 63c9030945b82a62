package sparse_test

import (
	"testing"

	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
	"github.com/stretchr/testify/require"
)

func TestVectorSetAndExtractElement(t *testing.T) {
	v := sparse.NewVector[float64](5)
	require.Equal(t, core.Index(5), v.Size())
	require.Equal(t, 0, v.Nvals())

	require.NoError(t, v.SetElement(3, 1.5))
	require.NoError(t, v.SetElement(1, 2.5))
	require.Equal(t, 2, v.Nvals())

	val, err := v.ExtractElement(1)
	require.NoError(t, err)
	require.Equal(t, 2.5, val)

	_, err = v.ExtractElement(0)
	require.ErrorIs(t, err, core.ErrNoValue)

	_, err = v.ExtractElement(5)
	require.ErrorIs(t, err, core.ErrIndexOutOfBounds)

	err = v.SetElement(5, 9.0)
	require.ErrorIs(t, err, core.ErrIndexOutOfBounds)
}

func TestVectorSetElementOverwrite(t *testing.T) {
	v := sparse.NewVector[int](3)
	require.NoError(t, v.SetElement(0, 1))
	require.NoError(t, v.SetElement(0, 2))
	require.Equal(t, 1, v.Nvals())
	val, err := v.ExtractElement(0)
	require.NoError(t, err)
	require.Equal(t, 2, val)
}

func TestVectorContentsSortedOrder(t *testing.T) {
	v := sparse.NewVector[int](10)
	require.NoError(t, v.SetElement(7, 70))
	require.NoError(t, v.SetElement(2, 20))
	require.NoError(t, v.SetElement(5, 50))

	c := v.Contents()
	require.Len(t, c, 3)
	require.Equal(t, core.Index(2), c[0].Index)
	require.Equal(t, core.Index(5), c[1].Index)
	require.Equal(t, core.Index(7), c[2].Index)
}

func TestVectorRemoveElementAndClear(t *testing.T) {
	v := sparse.NewVector[int](4)
	require.NoError(t, v.SetElement(1, 10))
	require.NoError(t, v.SetElement(2, 20))

	v.RemoveElement(1)
	require.False(t, v.HasElement(1))
	require.True(t, v.HasElement(2))

	v.RemoveElement(99) // absent, not an error

	v.Clear()
	require.Equal(t, 0, v.Nvals())
	require.Equal(t, core.Index(4), v.Size())
}

func TestVectorStructIndicesIgnoresValue(t *testing.T) {
	v := sparse.NewVector[bool](3)
	require.NoError(t, v.SetElement(0, false))
	require.NoError(t, v.SetElement(2, false))

	require.ElementsMatch(t, []core.Index{0, 2}, v.StructIndices())
}

func TestVectorClone(t *testing.T) {
	v := sparse.NewVector[int](3)
	require.NoError(t, v.SetElement(1, 5))

	c := v.Clone()
	require.NoError(t, c.SetElement(2, 9))

	require.False(t, v.HasElement(2))
	require.True(t, c.HasElement(2))
}
