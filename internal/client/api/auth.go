package api

import (
	"context"
	"net/http"

	"github.com/heartmarshall/daybook-backend/internal/apimodel"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Session is a token pair plus the user it belongs to.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

func (c *Client) authCall(ctx context.Context, path string, in any) (*Session, error) {
	var out apimodel.AuthResponse
	if err := c.do(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	return &Session{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken, User: out.User.Domain()}, nil
}

// Register creates an email/password account and signs it in.
func (c *Client) Register(ctx context.Context, email, password string) (*Session, error) {
	return c.authCall(ctx, "/auth/register", apimodel.RegisterRequest{Email: email, Password: password})
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	return c.authCall(ctx, "/auth/login/password", apimodel.LoginPasswordRequest{Email: email, Password: password})
}

// LoginWithGoogle exchanges a Google authorization code for a session.
func (c *Client) LoginWithGoogle(ctx context.Context, code string) (*Session, error) {
	return c.authCall(ctx, "/auth/login", apimodel.LoginRequest{Provider: string(domain.AuthMethodGoogle), Code: code})
}

// Refresh rotates the token pair. The old refresh token stops working.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	return c.authCall(ctx, "/auth/refresh", apimodel.RefreshRequest{RefreshToken: refreshToken})
}

// Logout revokes every refresh token of the signed-in user.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
