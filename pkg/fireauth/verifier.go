package fireauth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// Identity is the authenticated principal attached to a request after the
// bearer token checks out.
type Identity struct {
	UID    string
	Claims map[string]any
}

// TokenVerifier validates an opaque bearer credential. The production
// implementation talks to Firebase Auth; tests substitute a fake.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

// Verifier verifies Firebase ID tokens.
type Verifier struct {
	client *auth.Client
}

// NewVerifier builds a TokenVerifier backed by the Firebase app's auth client.
func NewVerifier(ctx context.Context, app *firebase.App) (*Verifier, error) {
	if app == nil {
		return nil, fmt.Errorf("firebase app is required")
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase auth client: %w", err)
	}
	return &Verifier{client: client}, nil
}

// VerifyToken decodes and validates the ID token.
func (v *Verifier) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return &Identity{UID: decoded.UID, Claims: decoded.Claims}, nil
}
