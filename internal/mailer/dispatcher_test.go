package mailer

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electromart/electromart-backend/pkg/logger"
	"github.com/electromart/electromart-backend/pkg/models"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []Message
}

func (r *recordingSender) Send(ctx context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingSender) messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.sent...)
}

func newDispatcherLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("error"), Output: io.Discard})
}

func TestDispatcherSendsWelcome(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	d := NewDispatcher(sender, newDispatcherLogger())

	d.SendWelcome(context.Background(), "ada@example.com", "Ada", "customer")

	require.Eventually(t, func() bool {
		return len(sender.messages()) == 1
	}, time.Second, 10*time.Millisecond)

	msg := sender.messages()[0]
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, "Welcome to E-Electro!", msg.Subject)
	assert.Contains(t, msg.HTML, "customer")
}

func TestDispatcherFansOutApprovalRequests(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	d := NewDispatcher(sender, newDispatcherLogger())

	d.SendApprovalRequest(context.Background(), []string{"a@example.com", "b@example.com"}, models.Shop{
		VendorID: "vendor-1",
		Name:     "Electro Hub",
	})

	require.Eventually(t, func() bool {
		return len(sender.messages()) == 2
	}, time.Second, 10*time.Millisecond)

	for _, msg := range sender.messages() {
		assert.Contains(t, msg.HTML, "Electro Hub")
	}
}

func TestDispatcherSkipsEmptyRecipient(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	d := NewDispatcher(sender, newDispatcherLogger())

	d.SendShopSaved(context.Background(), "", models.Shop{Name: "Electro Hub"})

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, sender.messages())
}

func TestDispatcherNilSenderIsNoOp(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(nil, newDispatcherLogger())
	// Must not panic or spawn work.
	d.SendWelcome(context.Background(), "ada@example.com", "Ada", "customer")
	d.SendProductCreated(context.Background(), "ada@example.com", models.Product{Title: "Kettle"})
}
