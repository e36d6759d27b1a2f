package notifications

import (
	"fmt"
	"strings"

	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
)

// FormatOrderMessage renders the plain-text summary the merchant receives
// when an order is placed. Prices come from the order snapshot, never from
// the live catalog.
func FormatOrderMessage(order *models.Order, customer *models.User) string {
	var b strings.Builder

	b.WriteString("New order " + order.OrderNumber + "\n")
	if customer != nil {
		b.WriteString("Customer: " + customer.FullName() + "\n")
		if customer.Email != "" {
			b.WriteString("Email: " + customer.Email + "\n")
		}
		if customer.Phone != "" {
			b.WriteString("Phone: " + customer.Phone + "\n")
		}
		if customer.Address != "" {
			b.WriteString("Address: " + customer.Address + "\n")
		}
	}

	b.WriteString("\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%s x %d = %s\n", item.Name, item.Quantity, item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s", order.Total.StringFixed(2))

	return b.String()
}
