package linearset_test

import (
	"testing"

	"github.com/arjun-meyer/lal/linearset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertContainsLen(t *testing.T) {
	s := linearset.New(5)
	assert.Equal(t, 0, s.Len())
	s.Insert(2)
	s.Insert(4)
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(0))
	assert.Equal(t, 2, s.Len())
}

func TestRemoveSwapsLastIntoHole(t *testing.T) {
	s := linearset.New(5)
	s.Insert(0)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	require.Equal(t, 0, s.PositionOf(0))

	s.Remove(0)
	assert.False(t, s.Contains(0))
	require.Equal(t, 3, s.Len())
	// The last-inserted value (3) should have been swapped into 0's slot.
	assert.Equal(t, 3, s.At(0))
	assert.Equal(t, 0, s.PositionOf(3))
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s := linearset.New(3)
	s.Insert(1)
	s.Remove(2)
	assert.Equal(t, 1, s.Len())
}

func TestPositionOfAbsentIsNegativeOne(t *testing.T) {
	s := linearset.New(3)
	assert.Equal(t, -1, s.PositionOf(1))
}

func TestReorderRepairsPositions(t *testing.T) {
	s := linearset.New(4)
	s.Insert(0)
	s.Insert(1)
	s.Insert(2)
	s.Reorder([]int{2, 0, 1})
	assert.Equal(t, []int{2, 0, 1}, s.Values())
	assert.Equal(t, 0, s.PositionOf(2))
	assert.Equal(t, 1, s.PositionOf(0))
	assert.Equal(t, 2, s.PositionOf(1))
}

func TestCloneIsIndependent(t *testing.T) {
	s := linearset.New(3)
	s.Insert(0)
	c := s.Clone()
	c.Insert(1)
	assert.False(t, s.Contains(1))
	assert.True(t, c.Contains(1))
}
