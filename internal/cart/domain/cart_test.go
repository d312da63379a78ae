package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id int, price int64, qty int) CartLine {
	return CartLine{ID: id, Title: "p", Price: price, Quantity: qty}
}

func TestCart_AddMergesByID(t *testing.T) {
	var c Cart
	c.Add(line(1, 8500, 1))
	c.Add(line(2, 2400, 1))
	c.Add(line(1, 8500, 1))

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 1, c.Lines[0].ID)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, 2, c.Lines[1].ID)
	assert.Equal(t, 3, c.TotalQuantity())
	assert.Equal(t, int64(8500*2+2400), c.TotalPrice())
}

func TestCart_RemovePreservesOrder(t *testing.T) {
	var c Cart
	c.Add(line(1, 1, 1))
	c.Add(line(2, 1, 1))
	c.Add(line(3, 1, 1))

	assert.True(t, c.Remove(2))
	assert.Equal(t, []int{1, 3}, []int{c.Lines[0].ID, c.Lines[1].ID})

	t.Run("missing id -> unchanged", func(t *testing.T) {
		before := c.Snapshot()
		assert.False(t, c.Remove(42))
		assert.Equal(t, before, c.Snapshot())
	})
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	c.Add(line(1, 100, 3))
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalQuantity())
	assert.Equal(t, int64(0), c.TotalPrice())
}

func TestNewCart_Validation(t *testing.T) {
	t.Run("valid -> ok", func(t *testing.T) {
		c, err := NewCart([]CartLine{line(1, 10, 1), line(2, 20, 2)})
		require.NoError(t, err)
		assert.Len(t, c.Lines, 2)
	})

	t.Run("zero quantity -> invalid", func(t *testing.T) {
		_, err := NewCart([]CartLine{line(1, 10, 0)})
		assert.True(t, errors.Is(err, ErrInvalidCart))
	})

	t.Run("negative price -> invalid", func(t *testing.T) {
		_, err := NewCart([]CartLine{line(1, -10, 1)})
		assert.True(t, errors.Is(err, ErrInvalidCart))
	})

	t.Run("duplicate id -> invalid", func(t *testing.T) {
		_, err := NewCart([]CartLine{line(1, 10, 1), line(1, 10, 1)})
		assert.True(t, errors.Is(err, ErrInvalidCart))
	})
}

func TestCart_SnapshotIsACopy(t *testing.T) {
	var c Cart
	c.Add(line(1, 10, 1))
	snap := c.Snapshot()
	snap[0].Quantity = 99

	assert.Equal(t, 1, c.Lines[0].Quantity)
}
