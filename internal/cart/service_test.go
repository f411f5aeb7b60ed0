package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nazhan-shop/internal/store"
	"nazhan-shop/internal/ui"
)

type recordingUI struct {
	notifications []string
	renders       []ui.View
}

func (r *recordingUI) Notify(message string, _ ui.Severity) {
	r.notifications = append(r.notifications, message)
}

func (r *recordingUI) Render(view ui.View) {
	r.renders = append(r.renders, view)
}

func newTestCart(t *testing.T) (*Cart, *store.MemStore, *recordingUI) {
	t.Helper()
	st := store.NewMemStore()
	rec := &recordingUI{}
	return New(st, rec, rec), st, rec
}

func TestAdd_MergesSameProduct(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCart(t)

	_, err := c.Add(ctx, "zaatar-1", "Zaatar Mix", 15000, "img.png", 2)
	require.NoError(t, err)

	totals, err := c.Add(ctx, "zaatar-1", "Zaatar Mix", 15000, "img.png", 3)
	require.NoError(t, err)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 5, c.Lines()[0].Quantity)
	assert.Equal(t, Totals{Items: 5, Price: 75000}, totals)
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCart(t)

	_, err := c.Add(ctx, "zaatar-1", "Zaatar Mix", 15000, "", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = c.Add(ctx, "  ", "Nameless", 100, "", 1)
	assert.ErrorIs(t, err, ErrInvalidLine)

	_, err = c.Add(ctx, "x", "Negative", -1, "", 1)
	assert.ErrorIs(t, err, ErrInvalidLine)

	assert.Equal(t, 0, c.Len())
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCart(t)

	_, err := c.Add(ctx, "zaatar-1", "Zaatar Mix", 15000, "", 1)
	require.NoError(t, err)

	t.Run("updates existing line", func(t *testing.T) {
		c.SetQuantity(ctx, "zaatar-1", 4)
		assert.Equal(t, Totals{Items: 4, Price: 60000}, c.Totals())
	})

	t.Run("zero removes the line", func(t *testing.T) {
		c.SetQuantity(ctx, "zaatar-1", 0)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		c.SetQuantity(ctx, "ghost", 3)
		assert.Equal(t, 0, c.Len())
	})
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCart(t)

	_, err := c.Add(ctx, "zaatar-1", "Zaatar Mix", 15000, "", 1)
	require.NoError(t, err)

	c.Remove(ctx, "ghost")
	assert.Equal(t, 1, c.Len())

	c.Remove(ctx, "zaatar-1")
	assert.Equal(t, 0, c.Len())
}

func TestTotals_NeverDrift(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCart(t)

	_, err := c.Add(ctx, "a", "A", 100, "", 2)
	require.NoError(t, err)
	_, err = c.Add(ctx, "b", "B", 250, "", 1)
	require.NoError(t, err)
	c.SetQuantity(ctx, "a", 5)
	c.Remove(ctx, "b")
	_, err = c.Add(ctx, "c", "C", 30, "", 3)
	require.NoError(t, err)

	var wantItems int
	var wantPrice int64
	for _, l := range c.Lines() {
		wantItems += l.Quantity
		wantPrice += l.UnitPrice * int64(l.Quantity)
	}
	assert.Equal(t, Totals{Items: wantItems, Price: wantPrice}, c.Totals())
	assert.Equal(t, Totals{Items: 8, Price: 590}, c.Totals())
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	c, st, rec := newTestCart(t)

	_, err := c.Add(ctx, "a", "A", 100, "", 2)
	require.NoError(t, err)

	c.Clear(ctx)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Totals{}, c.Totals())
	assert.Contains(t, rec.notifications, "Cart cleared")

	// Persisted state is the empty sequence, not the old lines.
	var stored []Line
	assert.True(t, st.Get("cart", &stored))
	assert.Empty(t, stored)
}

func TestNew_ReloadsPersistedCart(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()

	c1 := New(st, nil, nil)
	_, err := c1.Add(ctx, "zaatar-1", "Zaatar Mix", 15000, "img.png", 2)
	require.NoError(t, err)

	c2 := New(st, nil, nil)
	assert.Equal(t, c1.Lines(), c2.Lines())
	assert.Equal(t, Totals{Items: 2, Price: 30000}, c2.Totals())
}

func TestNew_DropsInvalidStoredLines(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Set("cart", []Line{
		{ID: "ok", Name: "OK", UnitPrice: 10, Quantity: 1},
		{ID: "", Name: "no id", UnitPrice: 10, Quantity: 1},
		{ID: "zero", Name: "zero qty", UnitPrice: 10, Quantity: 0},
	}))

	c := New(st, nil, nil)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "ok", c.Lines()[0].ID)
}

func TestMutationsRenderCartView(t *testing.T) {
	ctx := context.Background()
	c, _, rec := newTestCart(t)

	_, err := c.Add(ctx, "a", "A", 100, "", 1)
	require.NoError(t, err)
	c.SetQuantity(ctx, "a", 2)
	c.Remove(ctx, "a")
	c.Clear(ctx)

	require.Len(t, rec.renders, 4)
	for _, v := range rec.renders {
		assert.Equal(t, ui.ViewCart, v)
	}
}
