package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/electromart/electromart-backend/pkg/models"
)

const baseURL = "https://wa.me/"

// NormalizeNumber strips the leading '+' wa.me does not accept.
func NormalizeNumber(number string) string {
	return strings.TrimPrefix(strings.TrimSpace(number), "+")
}

// OrderMessage renders the pre-filled vendor message for a checkout: one line
// per item plus the computed total.
func OrderMessage(items []models.CartItem, total float64) string {
	var b strings.Builder
	b.WriteString("Hello, I want to order:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s x%d\n", item.Title, item.Quantity)
	}
	// FormatFloat keeps large totals in plain notation where %g would flip
	// to scientific form.
	b.WriteString("Total: " + strconv.FormatFloat(total, 'f', -1, 64))
	return b.String()
}

// OrderLink builds the deep link that opens a chat with the vendor's number
// pre-filled with the order message.
func OrderLink(whatsappNumber string, items []models.CartItem, total float64) string {
	return baseURL + NormalizeNumber(whatsappNumber) + "?text=" + url.QueryEscape(OrderMessage(items, total))
}
