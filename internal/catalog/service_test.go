package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nazhan-shop/internal/store"
)

type fakeAuth struct {
	adminCap string
}

func (f fakeAuth) VerifyAdmin(capability string) error {
	if capability == f.adminCap {
		return nil
	}
	return ErrAdminOnly
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()
	auth := fakeAuth{adminCap: "admin-cap"}

	t.Run("requires admin", func(t *testing.T) {
		o := NewOverlay(store.NewMemStore(), auth, nil)

		_, err := o.AddProduct(ctx, "other-cap", "Thyme Blend", 9000, "thyme.png")
		assert.ErrorIs(t, err, ErrAdminOnly)
		assert.Empty(t, o.List())
	})

	t.Run("validates input", func(t *testing.T) {
		o := NewOverlay(store.NewMemStore(), auth, nil)

		_, err := o.AddProduct(ctx, "admin-cap", "", 9000, "thyme.png")
		assert.ErrorIs(t, err, ErrInvalidProduct)
		_, err = o.AddProduct(ctx, "admin-cap", "Thyme Blend", 0, "thyme.png")
		assert.ErrorIs(t, err, ErrInvalidProduct)
		_, err = o.AddProduct(ctx, "admin-cap", "Thyme Blend", -5, "thyme.png")
		assert.ErrorIs(t, err, ErrInvalidProduct)
		_, err = o.AddProduct(ctx, "admin-cap", "Thyme Blend", 9000, "  ")
		assert.ErrorIs(t, err, ErrInvalidProduct)

		assert.Empty(t, o.List())
	})

	t.Run("appends with slugged id", func(t *testing.T) {
		st := store.NewMemStore()
		o := NewOverlay(st, auth, nil)

		id, err := o.AddProduct(ctx, "admin-cap", "Thyme Blend", 9000, "thyme.png")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(id, "thyme-blend-"), id)

		products := o.List()
		require.Len(t, products, 1)
		assert.Equal(t, Product{ID: id, Name: "Thyme Blend", Price: 9000, Image: "thyme.png"}, products[0])

		// Persisted and reloadable.
		reloaded := NewOverlay(st, auth, nil)
		assert.Equal(t, products, reloaded.List())
	})

	t.Run("insertion order kept", func(t *testing.T) {
		o := NewOverlay(store.NewMemStore(), auth, nil)

		_, err := o.AddProduct(ctx, "admin-cap", "First", 100, "a.png")
		require.NoError(t, err)
		_, err = o.AddProduct(ctx, "admin-cap", "Second", 200, "b.png")
		require.NoError(t, err)

		products := o.List()
		require.Len(t, products, 2)
		assert.Equal(t, "First", products[0].Name)
		assert.Equal(t, "Second", products[1].Name)
	})
}

func TestAll_LayersOverlayOverStatic(t *testing.T) {
	ctx := context.Background()
	o := NewOverlay(store.NewMemStore(), fakeAuth{adminCap: "admin-cap"}, nil)

	base := len(Static())
	assert.Len(t, o.All(), base)

	_, err := o.AddProduct(ctx, "admin-cap", "Thyme Blend", 9000, "thyme.png")
	require.NoError(t, err)

	all := o.All()
	require.Len(t, all, base+1)
	assert.Equal(t, "Thyme Blend", all[base].Name)
}
