package service

import (
	"context"
	"log/slog"

	"github.com/candleworks/storefront/internal/client"
	"github.com/candleworks/storefront/internal/errors"
	"github.com/candleworks/storefront/internal/models"
	"github.com/go-playground/validator/v10"
)

// AccountService handles login and registration for store owners and admins.
// Inputs are validated locally before any network call; validation failures
// never reach the backend.
type AccountService struct {
	auth     client.AuthClient
	stores   client.StoreClient
	admins   client.AdminClient
	session  *Session
	validate *validator.Validate
}

func NewAccountService(auth client.AuthClient, stores client.StoreClient, admins client.AdminClient, session *Session) *AccountService {
	return &AccountService{
		auth:     auth,
		stores:   stores,
		admins:   admins,
		session:  session,
		validate: validator.New(),
	}
}

func (s *AccountService) LoginStore(ctx context.Context, username, password string) (*models.LoginResult, error) {
	req := &models.LoginRequest{User: models.Credentials{Username: username, Password: password}}

	if err := s.validateInput(req); err != nil {
		return nil, err
	}

	result, err := s.stores.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	s.establish(result, models.RoleStoreOwner)
	s.fetchToken(ctx, req.User, result)

	return result, nil
}

func (s *AccountService) LoginAdmin(ctx context.Context, username, password string) (*models.LoginResult, error) {
	req := &models.LoginRequest{User: models.Credentials{Username: username, Password: password}}

	if err := s.validateInput(req); err != nil {
		return nil, err
	}

	result, err := s.admins.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	s.establish(result, models.RoleAdmin)
	s.fetchToken(ctx, req.User, result)

	return result, nil
}

func (s *AccountService) RegisterStore(ctx context.Context, req *models.RegisterStoreRequest) (*models.LoginResult, error) {
	if err := s.validateInput(req); err != nil {
		return nil, err
	}

	result, err := s.stores.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	s.establish(result, models.RoleStoreOwner)
	slog.Info("store registered", slog.String("storeName", req.StoreName), slog.String("username", req.User.Username))

	return result, nil
}

func (s *AccountService) RegisterAdmin(ctx context.Context, req *models.RegisterAdminRequest) (*models.LoginResult, error) {
	if err := s.validateInput(req); err != nil {
		return nil, err
	}

	result, err := s.admins.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	s.establish(result, models.RoleAdmin)

	return result, nil
}

// establish populates the session from a successful login or registration.
// Store owners also get their store attached when the response carried it;
// otherwise Session.ResolveStore falls back to the email scan later.
func (s *AccountService) establish(result *models.LoginResult, role models.Role) {
	user := result.User
	if user == nil {
		return
	}

	if user.Role == "" {
		user.Role = role
	}

	s.session.SetUser(user)

	if result.Token != "" {
		if err := s.session.SetToken(result.Token); err != nil {
			slog.Warn("discarding malformed token", slog.String("error", err.Error()))
		}
	}

	if role != models.RoleStoreOwner {
		return
	}

	switch {
	case result.RetailStore != nil:
		s.session.SetStore(result.RetailStore)
	case user.RetailStore != nil:
		s.session.SetStore(user.RetailStore)
	}
}

// fetchToken obtains a bearer token from /auth/login when the login
// response did not already carry one. Best effort: the session works
// without a token, so a failure here only logs.
func (s *AccountService) fetchToken(ctx context.Context, creds models.Credentials, result *models.LoginResult) {
	if result.Token != "" {
		return
	}

	token, err := s.auth.Login(ctx, creds)
	if err != nil {
		slog.Warn("token fetch failed", slog.String("error", err.Error()))

		return
	}

	if token == "" {
		return
	}

	if err := s.session.SetToken(token); err != nil {
		slog.Warn("discarding malformed token", slog.String("error", err.Error()))
	}
}

func (s *AccountService) validateInput(data any) error {
	err := s.validate.Struct(data)
	if err == nil {
		return nil
	}

	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		first := validationErrs[0]

		return errors.AddValidationError(first.Field(), first.Tag())
	}

	return errors.ValidationError("Invalid input").WithError(err)
}
