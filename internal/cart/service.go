package cart

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"nazhan-shop/internal/logger"
	"nazhan-shop/internal/store"
	"nazhan-shop/internal/ui"
)

const storageKey = "cart"

// Cart is the active session's shopping cart: an ordered sequence of
// lines, at most one per product id, synchronized to the store after
// every mutation. It is owned by a single session and is not
// goroutine-safe.
type Cart struct {
	store  store.Store
	notify ui.Notifier
	render ui.ViewRenderer
	lines  []Line
}

// New loads the cart persisted under the "cart" key. An absent or
// unreadable value yields an empty cart.
func New(st store.Store, notify ui.Notifier, render ui.ViewRenderer) *Cart {
	if notify == nil {
		notify = ui.NopNotifier{}
	}
	if render == nil {
		render = ui.NopRenderer{}
	}

	c := &Cart{store: st, notify: notify, render: render}

	var stored []Line
	if st.Get(storageKey, &stored) {
		for _, l := range stored {
			// Drop entries a hand-edited or stale file could contain.
			if l.ID == "" || l.Quantity < 1 || l.UnitPrice < 0 {
				logger.L().Warn("dropping invalid stored cart line", zap.String("id", l.ID))
				continue
			}
			c.lines = append(c.lines, l)
		}
	}
	return c
}

// Add puts qty units of a product into the cart. Adding a product that
// is already present merges into the existing line.
func (c *Cart) Add(ctx context.Context, id, name string, unitPrice int64, image string, qty int) (Totals, error) {
	if strings.TrimSpace(id) == "" || unitPrice < 0 {
		return c.Totals(), ErrInvalidLine
	}
	if qty < 1 {
		return c.Totals(), ErrInvalidQuantity
	}

	merged := false
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		c.lines = append(c.lines, Line{
			ID:        id,
			Name:      name,
			UnitPrice: unitPrice,
			Image:     image,
			Quantity:  qty,
		})
	}

	c.persist(ctx)
	c.render.Render(ui.ViewCart)
	c.notify.Notify(fmt.Sprintf("%s added to cart", name), ui.SeveritySuccess)

	return c.Totals(), nil
}

// Remove deletes the line with the given id. Removing an absent id is a
// no-op, not an error.
func (c *Cart) Remove(ctx context.Context, id string) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	c.lines = kept

	c.persist(ctx)
	c.render.Render(ui.ViewCart)
}

// SetQuantity sets a line's quantity. A quantity of zero or less removes
// the line; an absent id is ignored.
func (c *Cart) SetQuantity(ctx context.Context, id string, qty int) {
	if qty <= 0 {
		c.Remove(ctx, id)
		return
	}

	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = qty
			c.persist(ctx)
			c.render.Render(ui.ViewCart)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) {
	c.lines = nil
	c.persist(ctx)
	c.render.Render(ui.ViewCart)
	c.notify.Notify("Cart cleared", ui.SeverityInfo)
}

// Totals recomputes the item count and price sum from the current lines.
func (c *Cart) Totals() Totals {
	var t Totals
	for _, l := range c.lines {
		t.Items += l.Quantity
		t.Price += l.Total()
	}
	return t
}

// Lines returns a copy of the cart's lines in insertion order. Callers
// may hold on to it; later cart mutations do not alter it.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) persist(ctx context.Context) {
	// Persist the whole value; storage failure degrades to in-memory
	// state and must not fail the user action.
	lines := c.lines
	if lines == nil {
		lines = []Line{}
	}
	if err := c.store.Set(storageKey, lines); err != nil {
		logger.FromCtx(ctx).Warn("cart not persisted", zap.Error(err))
	}
}
