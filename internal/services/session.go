package service

import (
	"context"
	"sync"

	"github.com/candleworks/storefront/internal/client"
	"github.com/candleworks/storefront/internal/errors"
	"github.com/candleworks/storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Session holds the authenticated user and, for store owners, the associated
// store. It is constructor-injected wherever needed rather than living in a
// package-level variable, so services can be exercised without a UI harness.
type Session struct {
	mu     sync.RWMutex
	user   *models.User
	store  *models.Store
	token  string
	claims *models.Claims
	cart   *Cart
	stores client.StoreClient
}

func NewSession(cart *Cart, stores client.StoreClient) *Session {
	return &Session{cart: cart, stores: stores}
}

func (s *Session) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
}

func (s *Session) SetStore(store *models.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store = store
}

// SetToken stores the bearer token and extracts its claims for display and
// expiry checks. The signature is not verified here; only the backend holds
// the signing key.
func (s *Session) SetToken(token string) error {
	claims := &models.Claims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return errors.ValidationError("Malformed authentication token").WithError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.claims = claims

	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *Session) Claims() *models.Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.claims
}

func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

func (s *Session) Store() *models.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil
}

// IsStoreReady reports whether checkout is permitted: an authenticated user
// with a fully registered store.
func (s *Session) IsStoreReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil && s.store != nil
}

// Logout clears the user, store and token, and empties the cart.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.store = nil
	s.token = ""
	s.claims = nil
	s.mu.Unlock()

	s.cart.Clear()
}

// ResolveStore returns the session's store, resolving it when absent.
// Resolution order: the store already attached to the session, then the
// user's direct retailStore relation, then a scan of all stores matching the
// user's contact email. The scan exists because some backend responses omit
// the relation; the direct relation is always preferred.
func (s *Session) ResolveStore(ctx context.Context) (*models.Store, error) {
	s.mu.RLock()
	user, store := s.user, s.store
	s.mu.RUnlock()

	if store != nil {
		return store, nil
	}

	if user == nil {
		return nil, errors.UnauthenticatedError("Not logged in")
	}

	if user.RetailStore != nil {
		s.SetStore(user.RetailStore)

		return user.RetailStore, nil
	}

	if user.ContactDetails == nil || user.ContactDetails.Email == "" {
		return nil, errors.NotFoundError("No store is linked to this account")
	}

	stores, err := s.stores.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range stores {
		candidate := &stores[i]
		if candidate.ContactDetails != nil && candidate.ContactDetails.Email == user.ContactDetails.Email {
			s.SetStore(candidate)

			return candidate, nil
		}
	}

	return nil, errors.NotFoundError("No store is linked to this account")
}
