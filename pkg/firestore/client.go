package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/electromart/electromart-backend/pkg/config"
	"github.com/electromart/electromart-backend/pkg/logger"
)

// Collection names used across the repositories.
const (
	CollectionUsers    = "users"
	CollectionShops    = "shops"
	CollectionProducts = "products"
	CollectionCarts    = "carts"
	CollectionOrders   = "orders"
	CollectionReviews  = "reviews"
)

// Client wraps the shared Firestore connection.
type Client struct {
	conn *firestore.Client
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New boots the Firebase app and returns a Firestore client for it.
func New(ctx context.Context, cfg config.FirebaseConfig, logg *logger.Logger) (*Client, error) {
	app, err := NewApp(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return FromApp(ctx, app, logg)
}

// FromApp opens a Firestore client on an already initialized app, so Auth and
// Firestore can share one.
func FromApp(ctx context.Context, app *firebase.App, logg *logger.Logger) (*Client, error) {
	conn, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening firestore client: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "firestore connection established")
	}

	return &Client{conn: conn}, nil
}

// NewApp initializes the Firebase app shared by Firestore and Auth.
func NewApp(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firebase project id is required")
	}

	opts := []option.ClientOption{}
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	return app, nil
}

// Conn returns the underlying Firestore client.
func (c *Client) Conn() *firestore.Client {
	return c.conn
}

// Ping verifies the datasource is reachable by reading one document from the
// users collection. An empty collection still answers, which is all we need.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.conn == nil {
		return fmt.Errorf("firestore client not initialized")
	}
	_, err := c.conn.Collection(CollectionUsers).Limit(1).Documents(ctx).GetAll()
	return err
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
