package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/electromart/electromart-backend/pkg/models"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+2348012345678", "2348012345678"},
		{"2348012345678", "2348012345678"},
		{" +49151234567 ", "49151234567"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeNumber(tt.in); got != tt.want {
			t.Fatalf("NormalizeNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOrderMessageListsItemsAndTotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p1", Title: "USB-C Hub", Quantity: 2, Price: 10},
		{ProductID: "p2", Title: "HDMI Cable", Quantity: 1, Price: 5},
	}

	msg := OrderMessage(items, 25)
	for _, want := range []string{"- USB-C Hub x2", "- HDMI Cable x1", "Total: 25"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestOrderMessageLargeTotalStaysPlain(t *testing.T) {
	items := []models.CartItem{{ProductID: "p1", Title: "Generator", Quantity: 1, Price: 1234567}}

	msg := OrderMessage(items, 1234567)
	if !strings.Contains(msg, "Total: 1234567") {
		t.Fatalf("large total not rendered in plain notation:\n%s", msg)
	}
	if strings.Contains(msg, "e+") {
		t.Fatalf("total rendered in scientific notation:\n%s", msg)
	}
}

func TestOrderLinkEncodesMessage(t *testing.T) {
	items := []models.CartItem{{ProductID: "p1", Title: "Power Bank", Quantity: 3, Price: 12.5}}

	link := OrderLink("+2348012345678", items, 37.5)
	if !strings.HasPrefix(link, "https://wa.me/2348012345678?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	text := parsed.Query().Get("text")
	if !strings.Contains(text, "Power Bank x3") {
		t.Fatalf("decoded text missing item line: %q", text)
	}
	if !strings.Contains(text, "Total: 37.5") {
		t.Fatalf("decoded text missing total: %q", text)
	}
}
