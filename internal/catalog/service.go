package catalog

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"nazhan-shop/internal/logger"
	"nazhan-shop/internal/store"
	"nazhan-shop/internal/ui"
	"nazhan-shop/internal/utils"
)

const storageKey = "productsOverlay"

// Authorizer verifies the admin capability supplied by callers of
// role-gated operations.
type Authorizer interface {
	VerifyAdmin(capability string) error
}

// Overlay is the locally persisted list of admin-added products layered
// over the static catalog. Entries are append-only; there is no edit or
// delete. One instance per session; not goroutine-safe.
type Overlay struct {
	store  store.Store
	auth   Authorizer
	notify ui.Notifier

	products []Product
}

// NewOverlay loads persisted overlay entries. An absent or unreadable
// value yields an empty overlay.
func NewOverlay(st store.Store, auth Authorizer, notify ui.Notifier) *Overlay {
	if notify == nil {
		notify = ui.NopNotifier{}
	}

	o := &Overlay{store: st, auth: auth, notify: notify}
	st.Get(storageKey, &o.products)
	return o
}

// AddProduct appends an admin-added product and returns its generated
// id. Requires a valid admin capability; validation failures mutate
// nothing.
func (o *Overlay) AddProduct(ctx context.Context, capability, name string, price int64, image string) (string, error) {
	if err := o.auth.VerifyAdmin(capability); err != nil {
		o.notify.Notify("Only an admin can add products", ui.SeverityError)
		return "", ErrAdminOnly
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(image) == "" || price <= 0 {
		o.notify.Notify("Please enter complete product details", ui.SeverityError)
		return "", ErrInvalidProduct
	}

	id := utils.Slug(name) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	o.products = append(o.products, Product{
		ID:    id,
		Name:  name,
		Price: price,
		Image: image,
	})

	if err := o.store.Set(storageKey, o.products); err != nil {
		logger.FromCtx(ctx).Warn("product overlay not persisted", zap.Error(err))
	}

	logger.FromCtx(ctx).Info("product added", zap.String("product_id", id))
	o.notify.Notify(name+" added to the catalog", ui.SeveritySuccess)
	return id, nil
}

// List returns the overlay entries in insertion order.
func (o *Overlay) List() []Product {
	out := make([]Product, len(o.products))
	copy(out, o.products)
	return out
}

// Static returns the fixed storefront catalog.
func Static() []Product {
	out := make([]Product, len(static))
	copy(out, static)
	return out
}

// All returns the static catalog with the overlay layered on top.
func (o *Overlay) All() []Product {
	return append(Static(), o.List()...)
}
