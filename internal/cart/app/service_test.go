package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/kikuchan-store/internal/cart/app"
	"github.com/dwikikusuma/kikuchan-store/internal/cart/domain"
	"github.com/dwikikusuma/kikuchan-store/internal/cart/infra/fs"
	"github.com/dwikikusuma/kikuchan-store/internal/cart/infra/memory"
)

type fakeFinder map[int]app.Product

func (f fakeFinder) FindProduct(id int) (app.Product, bool) {
	p, ok := f[id]
	return p, ok
}

var catalog = fakeFinder{
	1: {ID: 1, Title: "クッション", Price: 8500, Category: "Equipment", Image: "https://img/1"},
	2: {ID: 2, Title: "ハーブティー", Price: 2400, Category: "Food", Image: "https://img/2"},
}

type failingSlot struct{}

func (failingSlot) Load(ctx context.Context) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingSlot) Save(ctx context.Context, data []byte) error { return errors.New("disk gone") }

func setup(t *testing.T) (*app.Service, *memory.Slot, *[]app.Change) {
	t.Helper()
	slot := memory.NewSlot()
	svc := app.NewService(catalog, slot, nil)
	var changes []app.Change
	svc.Subscribe(func(ctx context.Context, ch app.Change) { changes = append(changes, ch) })
	svc.Load(context.Background())
	return svc, slot, &changes
}

func persisted(t *testing.T, slot app.Slot) domain.Cart {
	t.Helper()
	data, err := slot.Load(context.Background())
	require.NoError(t, err)
	c, err := app.DecodeCart(data)
	require.NoError(t, err)
	return c
}

func TestAddSameProductTwice(t *testing.T) {
	ctx := context.Background()
	svc, slot, _ := setup(t)

	svc.Add(ctx, 1)
	svc.Add(ctx, 1)

	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(17000), svc.TotalPrice())
	assert.Equal(t, 2, svc.TotalQuantity())

	stored := persisted(t, slot)
	assert.Equal(t, svc.TotalPrice(), stored.TotalPrice())
	assert.Equal(t, svc.TotalQuantity(), stored.TotalQuantity())

	svc.Remove(ctx, 1)
	assert.True(t, svc.IsEmpty())
	assert.Equal(t, int64(0), svc.TotalPrice())
}

func TestAddUnknownProductIsNoop(t *testing.T) {
	svc, slot, changes := setup(t)
	*changes = nil

	svc.Add(context.Background(), 99)

	assert.True(t, svc.IsEmpty())
	assert.Equal(t, 0, slot.Saves())
	assert.Empty(t, *changes)
}

func TestAddPreservesPosition(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setup(t)

	svc.Add(ctx, 1)
	svc.Add(ctx, 2)
	svc.Add(ctx, 1)

	lines := svc.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, []int{1, 2}, []int{lines[0].ID, lines[1].ID})
	assert.Equal(t, []int{2, 1}, []int{lines[0].Quantity, lines[1].Quantity})
	assert.Equal(t, "Equipment", lines[0].Category)
}

func TestRemoveMissingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, slot, changes := setup(t)
	svc.Add(ctx, 2)
	before := svc.Lines()
	*changes = nil

	svc.Remove(ctx, 1)

	assert.Equal(t, before, svc.Lines())
	assert.Equal(t, before, persisted(t, slot).Lines)
	require.Len(t, *changes, 1)
	assert.Equal(t, app.ChangeRemoved, (*changes)[0].Kind)
}

func TestClearPersistsEmptySequence(t *testing.T) {
	ctx := context.Background()
	svc, slot, _ := setup(t)
	svc.Add(ctx, 1)
	svc.Add(ctx, 2)

	svc.Clear(ctx)

	assert.Equal(t, 0, svc.TotalQuantity())
	assert.Equal(t, int64(0), svc.TotalPrice())
	data, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestListenersSeeSavedState(t *testing.T) {
	ctx := context.Background()
	slot := memory.NewSlot()
	svc := app.NewService(catalog, slot, nil)

	var seen []int
	svc.Subscribe(func(ctx context.Context, ch app.Change) {
		if ch.Kind == app.ChangeAdded {
			seen = append(seen, persisted(t, slot).TotalQuantity())
		}
	})
	svc.Load(ctx)

	svc.Add(ctx, 1)
	svc.Add(ctx, 2)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip -> same ids, quantities, order", func(t *testing.T) {
		dir := t.TempDir()
		first := app.NewService(catalog, fs.NewSlot(fs.SlotConfig{BaseDir: dir}), nil)
		first.Load(ctx)
		first.Add(ctx, 2)
		first.Add(ctx, 1)
		first.Add(ctx, 2)

		second := app.NewService(catalog, fs.NewSlot(fs.SlotConfig{BaseDir: dir}), nil)
		second.Load(ctx)

		assert.Equal(t, first.Lines(), second.Lines())
		assert.Equal(t, int64(2400*2+8500), second.TotalPrice())
	})

	t.Run("malformed json -> empty", func(t *testing.T) {
		svc := app.NewService(catalog, memory.NewSlotWith([]byte(`{not json`)), nil)
		svc.Load(ctx)
		assert.True(t, svc.IsEmpty())
	})

	t.Run("object instead of array -> empty", func(t *testing.T) {
		svc := app.NewService(catalog, memory.NewSlotWith([]byte(`{"id":1}`)), nil)
		svc.Load(ctx)
		assert.True(t, svc.IsEmpty())
	})

	t.Run("duplicate ids -> empty", func(t *testing.T) {
		svc := app.NewService(catalog, memory.NewSlotWith([]byte(`[{"id":1,"price":1,"quantity":1},{"id":1,"price":1,"quantity":1}]`)), nil)
		svc.Load(ctx)
		assert.True(t, svc.IsEmpty())
	})

	t.Run("null -> empty", func(t *testing.T) {
		svc := app.NewService(catalog, memory.NewSlotWith([]byte(`null`)), nil)
		svc.Load(ctx)
		assert.True(t, svc.IsEmpty())
	})

	t.Run("unreadable slot -> empty", func(t *testing.T) {
		svc := app.NewService(catalog, failingSlot{}, nil)
		svc.Load(ctx)
		assert.True(t, svc.IsEmpty())
	})
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(catalog, failingSlot{}, nil)
	svc.Load(ctx)

	svc.Add(ctx, 1)

	assert.Equal(t, 1, svc.TotalQuantity())
}
