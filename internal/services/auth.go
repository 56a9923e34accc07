// Package services contains the application services of the CLI: the
// password-grant auth flow, device cache refresh and name resolution, and
// sensor/timeline reads. Services sit between the cobra commands and the
// API client and own all interaction with the persistent store.
package services

import (
	"context"
	"fmt"

	"github.com/dklimov/pointctl/internal/point"
)

// TokenStore is the part of the persistent store the auth flow needs.
type TokenStore interface {
	SetToken(token string) error
	Clear() error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Authenticate: exchange credentials for a bearer token and persist it.
//     On rejection the store is left untouched. Refreshing the device cache
//     afterwards is the caller's next step, not part of the exchange.
//   - Logout: wipe all persisted state (token and device cache).
type AuthService interface {
	Authenticate(ctx context.Context, clientID, username, password string) error
	Logout() error
}

type authService struct {
	client point.Client
	store  TokenStore
}

// NewAuthService constructs an AuthService bound to the given API client
// and store. The client needs no token; the token endpoint is the one
// unauthenticated call.
func NewAuthService(client point.Client, store TokenStore) AuthService {
	return &authService{client: client, store: store}
}

func (s *authService) Authenticate(ctx context.Context, clientID, username, password string) error {
	token, err := s.client.Token(ctx, clientID, username, password)
	if err != nil {
		return err
	}
	if err := s.store.SetToken(token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

func (s *authService) Logout() error {
	return s.store.Clear()
}
