package order

import (
	"fmt"
	"net/url"
	"strings"
)

const shopName = "Nazhan Zaatar Mill"

// Invoice renders a plain-text invoice for a placed order, suitable for
// saving or printing.
func Invoice(o *Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nOrder invoice\n\n", shopName)
	fmt.Fprintf(&b, "Order number: %s\n", o.Number)
	fmt.Fprintf(&b, "Date: %s\n\n", o.PlacedAt.Format("2006-01-02 15:04"))

	b.WriteString("Customer:\n")
	fmt.Fprintf(&b, "Name: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", o.Customer.Phone)
	fmt.Fprintf(&b, "Address: %s\n\n", o.Customer.Address)

	b.WriteString("Items:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "%s × %d = %d SYP\n", item.Name, item.Quantity, item.Total())
	}

	fmt.Fprintf(&b, "\nSubtotal: %d SYP\n", o.Subtotal)
	fmt.Fprintf(&b, "Delivery fee: %d SYP\n", o.DeliveryFee)
	fmt.Fprintf(&b, "Total: %d SYP\n\n", o.Total)
	fmt.Fprintf(&b, "Payment method: %s\n\n", o.PaymentMethod.Label())
	fmt.Fprintf(&b, "Thank you for your trust\n%s\n", shopName)

	return b.String()
}

// WhatsAppURL composes the outbound order notification as a wa.me deep
// link. Opening it is the caller's business; the core performs no
// network IO and never waits for a response.
func (l *Ledger) WhatsAppURL(o *Order) string {
	var b strings.Builder

	b.WriteString("Hello! New order:\n\n")
	fmt.Fprintf(&b, "Order number: %s\n", o.Number)
	fmt.Fprintf(&b, "Customer: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", o.Customer.Phone)
	fmt.Fprintf(&b, "Address: %s\n\n", o.Customer.Address)

	b.WriteString("Items:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "- %s × %d = %d SYP\n", item.Name, item.Quantity, item.Total())
	}

	fmt.Fprintf(&b, "\nTotal: %d SYP\n", o.Total)
	fmt.Fprintf(&b, "Payment method: %s\n", o.PaymentMethod.Label())
	fmt.Fprintf(&b, "Date: %s", o.PlacedAt.Format("2006-01-02 15:04"))

	return "https://wa.me/" + l.whatsAppNumber + "?text=" + url.QueryEscape(b.String())
}
