package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nazhan-shop/internal/cart"
	"nazhan-shop/internal/logger"
	"nazhan-shop/internal/store"
	"nazhan-shop/internal/ui"
	"nazhan-shop/internal/utils"
)

const storageKey = "orders"

// Authorizer verifies the admin capability supplied by callers of
// role-gated operations.
type Authorizer interface {
	VerifyAdmin(capability string) error
}

// Ledger is the append-only, newest-first list of placed orders. Orders
// are never deleted; an admin may only move their status through the
// transition table. One instance per session; not goroutine-safe.
type Ledger struct {
	store  store.Store
	cart   *cart.Cart
	auth   Authorizer
	notify ui.Notifier
	render ui.ViewRenderer

	deliveryFee    int64
	whatsAppNumber string

	orders []Order
}

// NewLedger loads persisted orders. An absent or unreadable value yields
// an empty ledger.
func NewLedger(
	st store.Store,
	c *cart.Cart,
	auth Authorizer,
	notify ui.Notifier,
	render ui.ViewRenderer,
	deliveryFee int64,
	whatsAppNumber string,
) *Ledger {
	if notify == nil {
		notify = ui.NopNotifier{}
	}
	if render == nil {
		render = ui.NopRenderer{}
	}

	l := &Ledger{
		store:          st,
		cart:           c,
		auth:           auth,
		notify:         notify,
		render:         render,
		deliveryFee:    deliveryFee,
		whatsAppNumber: whatsAppNumber,
	}
	st.Get(storageKey, &l.orders)
	return l
}

// PlaceOrder turns the current cart into a pending order: snapshots the
// lines, prices the order with the delivery fee, prepends it to the
// ledger and clears the cart. Validation failures mutate nothing.
func (l *Ledger) PlaceOrder(ctx context.Context, customer Customer, method PaymentMethod) (*Order, error) {
	// 1. Validate input before touching any state.
	if strings.TrimSpace(customer.Name) == "" ||
		strings.TrimSpace(customer.Phone) == "" ||
		strings.TrimSpace(customer.Address) == "" {
		l.notify.Notify("Please fill in all required fields", ui.SeverityError)
		return nil, ErrMissingCustomerInfo
	}
	if !method.Valid() {
		l.notify.Notify("Please choose a payment method", ui.SeverityError)
		return nil, ErrInvalidPayment
	}

	// 2. Snapshot the cart. Lines() is already a deep copy, so later
	// cart mutations cannot reach into the stored order.
	items := l.cart.Lines()
	if len(items) == 0 {
		l.notify.Notify("Your cart is empty", ui.SeverityError)
		return nil, ErrEmptyCart
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.Total()
	}

	o := Order{
		ID:            uuid.NewString(),
		Number:        utils.GenerateOrderNumber(),
		Customer:      customer,
		Items:         items,
		PaymentMethod: method,
		Subtotal:      subtotal,
		DeliveryFee:   l.deliveryFee,
		Total:         subtotal + l.deliveryFee,
		PlacedAt:      time.Now(),
		Status:        StatusPending,
	}

	// 3. Prepend (newest first) and persist.
	l.orders = append([]Order{o}, l.orders...)
	l.persist(ctx)

	// 4. Checkout empties the cart.
	l.cart.Clear(ctx)

	logger.FromCtx(ctx).Info("order placed",
		zap.String("order_number", o.Number),
		zap.Int64("total", o.Total))

	l.notify.Notify("Order "+o.Number+" placed", ui.SeveritySuccess)
	l.render.Render(ui.ViewCheckout)
	l.render.Render(ui.ViewAdminOrders)

	placed := copyOrder(o)
	return &placed, nil
}

// SetStatus moves the order at the given ledger position (0 = newest) to
// a new status. Requires a valid admin capability; illegal transitions
// are rejected, reapplying the current status is an idempotent success.
func (l *Ledger) SetStatus(ctx context.Context, capability string, index int, next Status) error {
	if err := l.auth.VerifyAdmin(capability); err != nil {
		l.notify.Notify("Only an admin can update order status", ui.SeverityError)
		return ErrAdminOnly
	}
	if index < 0 || index >= len(l.orders) {
		return ErrOrderNotFound
	}
	if !next.Valid() {
		return ErrInvalidStatus
	}

	o := &l.orders[index]
	if o.Status == next {
		return nil
	}
	if !o.Status.CanTransitionTo(next) {
		l.notify.Notify("Order cannot move from "+string(o.Status)+" to "+string(next), ui.SeverityError)
		return ErrIllegalTransition
	}

	prev := o.Status
	o.Status = next
	l.persist(ctx)

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_number", o.Number),
		zap.String("from", string(prev)),
		zap.String("to", string(next)))

	l.notify.Notify("Order "+o.Number+" is now "+string(next), ui.SeveritySuccess)
	l.render.Render(ui.ViewAdminOrders)
	l.render.Render(ui.ViewMyOrders)
	return nil
}

// SetStatusByNumber addresses the order by its display number instead of
// its ledger position.
func (l *Ledger) SetStatusByNumber(ctx context.Context, capability, number string, next Status) error {
	for i := range l.orders {
		if l.orders[i].Number == number {
			return l.SetStatus(ctx, capability, i, next)
		}
	}
	// Authorization is still checked first so a probe cannot tell a
	// missing order apart from a denied one.
	if err := l.auth.VerifyAdmin(capability); err != nil {
		return ErrAdminOnly
	}
	return ErrOrderNotFound
}

// List returns the orders newest first. The result is a snapshot: the
// caller cannot reach the ledger's state through it.
func (l *Ledger) List() []Order {
	out := make([]Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = copyOrder(o)
	}
	return out
}

// FindByNumber returns a copy of the order with the given display number.
func (l *Ledger) FindByNumber(number string) (*Order, bool) {
	for _, o := range l.orders {
		if o.Number == number {
			c := copyOrder(o)
			return &c, true
		}
	}
	return nil, false
}

// Len reports the number of placed orders.
func (l *Ledger) Len() int {
	return len(l.orders)
}

func copyOrder(o Order) Order {
	items := make([]cart.Line, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

func (l *Ledger) persist(ctx context.Context) {
	orders := l.orders
	if orders == nil {
		orders = []Order{}
	}
	if err := l.store.Set(storageKey, orders); err != nil {
		logger.FromCtx(ctx).Warn("orders not persisted", zap.Error(err))
	}
}
