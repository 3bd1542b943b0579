package mailer

import (
	"context"
	"fmt"

	"github.com/electromart/electromart-backend/pkg/logger"
	"github.com/electromart/electromart-backend/pkg/models"
)

// Dispatcher sends notification mail without ever failing the request that
// triggered it. Delivery runs in a goroutine; failures are logged and dropped.
type Dispatcher struct {
	sender Sender
	logg   *logger.Logger
}

// NewDispatcher wires a dispatcher. A nil sender disables delivery entirely,
// which keeps local development working without an SMTP relay.
func NewDispatcher(sender Sender, logg *logger.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, logg: logg}
}

func (d *Dispatcher) dispatch(ctx context.Context, msg Message) {
	if d == nil || d.sender == nil {
		return
	}
	if msg.To == "" {
		return
	}
	logg := d.logg
	go func() {
		// Detached from the request context so an answered request does not
		// cancel the delivery.
		if err := d.sender.Send(context.WithoutCancel(ctx), msg); err != nil && logg != nil {
			logg.Error(logg.WithField(ctx, "mail_to", msg.To), "mail.delivery_failed", err)
		}
	}()
}

// SendWelcome greets a freshly registered user.
func (d *Dispatcher) SendWelcome(ctx context.Context, to, name, role string) {
	d.dispatch(ctx, Message{
		To:      to,
		Subject: "Welcome to E-Electro!",
		HTML: fmt.Sprintf(`<p>Hello %s,</p>
<p>Welcome to E-Electro! Your account has been registered as a <strong>%s</strong>.</p>
<p>Happy selling and shopping!</p>`, name, role),
	})
}

// SendShopSaved confirms a shop create/update to its vendor.
func (d *Dispatcher) SendShopSaved(ctx context.Context, to string, shop models.Shop) {
	d.dispatch(ctx, Message{
		To:      to,
		Subject: "Your shop details were saved",
		HTML: fmt.Sprintf(`<p>Hello,</p>
<p>Your shop <strong>%s</strong> has been saved. It will be visible to customers once an administrator approves it.</p>`, shop.Name),
	})
}

// SendApprovalRequest asks the admins to review a pending shop.
func (d *Dispatcher) SendApprovalRequest(ctx context.Context, adminEmails []string, shop models.Shop) {
	for _, to := range adminEmails {
		d.dispatch(ctx, Message{
			To:      to,
			Subject: "Shop approval requested",
			HTML: fmt.Sprintf(`<p>The shop <strong>%s</strong> (vendor %s) is waiting for approval.</p>`,
				shop.Name, shop.VendorID),
		})
	}
}

// SendShopApproved tells the vendor their shop went live.
func (d *Dispatcher) SendShopApproved(ctx context.Context, to string, shop models.Shop) {
	d.dispatch(ctx, Message{
		To:      to,
		Subject: "Your shop has been approved",
		HTML: fmt.Sprintf(`<p>Congratulations!</p>
<p>Your shop <strong>%s</strong> has been approved and is now live on E-Electro.</p>`, shop.Name),
	})
}

// SendProductCreated confirms a new listing to its vendor.
func (d *Dispatcher) SendProductCreated(ctx context.Context, to string, product models.Product) {
	d.dispatch(ctx, Message{
		To:      to,
		Subject: "Product listed",
		HTML: fmt.Sprintf(`<p>Your product <strong>%s</strong> has been listed at %g.</p>`,
			product.Title, product.Price),
	})
}
