// internal/service/auth.go
package service

import (
	"context"
	"log/slog"

	"medadmin/internal/auth"
	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/validate"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout() error
}

type authService struct {
	api    *client.Client
	tokens auth.TokenStore
	logger *slog.Logger
}

func NewAuthService(api *client.Client, tokens auth.TokenStore, logger *slog.Logger) AuthService {
	return &authService{api: api, tokens: tokens, logger: logger}
}

// Login exchanges credentials for a bearer token and persists it. The login
// endpoint has returned the token under access, access_token and token at
// various times; all three are accepted.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	req := &model.LoginRequest{Email: email, Password: password}
	if err := validate.Struct(req); err != nil {
		return "", err
	}

	var resp model.LoginResponse
	if err := s.api.Post(ctx, "/admin/auth/login/", req, &resp); err != nil {
		return "", err
	}

	token := resp.BearerToken()
	if token == "" {
		return "", model.NewAPIError(502, "login response carried no token")
	}
	if err := s.tokens.Save(token); err != nil {
		return "", err
	}
	s.logger.Info("logged in", slog.String("email", email))
	return token, nil
}

func (s *authService) Logout() error {
	return s.tokens.Clear()
}
