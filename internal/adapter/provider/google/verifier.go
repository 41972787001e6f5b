// Package google verifies Google OAuth authorization codes.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/daybook-backend/internal/auth"
	"github.com/heartmarshall/daybook-backend/internal/config"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

const (
	defaultTokenURL    = "https://oauth2.googleapis.com/token"
	defaultUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	retryBackoff       = 500 * time.Millisecond
)

var (
	// ErrInvalidCode is returned when Google rejects the code or the account
	// is not usable for sign-in.
	ErrInvalidCode = fmt.Errorf("google: invalid or expired code: %w", domain.ErrUnauthorized)
	// ErrUnavailable is returned when Google cannot be reached or answers with garbage.
	ErrUnavailable = errors.New("google: provider unavailable")
)

// Endpoints are the Google URLs the verifier talks to.
type Endpoints struct {
	Token    string
	Userinfo string
}

// Verifier exchanges Google OAuth authorization codes for user identity.
type Verifier struct {
	clientID     string
	clientSecret string
	redirectURI  string
	endpoints    Endpoints
	httpClient   *http.Client
	log          *slog.Logger
}

// NewVerifier creates a Google OAuth verifier from the auth config.
func NewVerifier(cfg config.AuthConfig, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURI:  cfg.GoogleRedirectURI,
		endpoints:    Endpoints{Token: defaultTokenURL, Userinfo: defaultUserinfoURL},
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "google_oauth"),
	}
}

// WithEndpoints returns a copy of v that talks to e instead of Google.
func (v *Verifier) WithEndpoints(e Endpoints) *Verifier {
	c := *v
	c.endpoints = e
	return &c
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type userinfoResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// VerifyCode exchanges an authorization code for the account's identity.
// Only "google" is accepted as provider.
func (v *Verifier) VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error) {
	if provider != string(domain.AuthMethodGoogle) {
		return nil, fmt.Errorf("google: unsupported provider %q: %w", provider, domain.ErrValidation)
	}

	accessToken, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := v.fetchUserinfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if !info.VerifiedEmail {
		v.log.WarnContext(ctx, "google account email not verified", slog.String("provider_id", info.ID))
		return nil, ErrInvalidCode
	}

	identity := &auth.OAuthIdentity{
		Email:      strings.ToLower(info.Email),
		ProviderID: info.ID,
	}
	if info.Name != "" {
		identity.DisplayName = &info.Name
	}
	if info.Picture != "" {
		identity.PhotoURL = &info.Picture
	}

	v.log.DebugContext(ctx, "google oauth success", slog.String("provider_id", info.ID))
	return identity, nil
}

func (v *Verifier) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {v.clientID},
		"client_secret": {v.clientSecret},
		"redirect_uri":  {v.redirectURI},
	}.Encode()

	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoints.Token, strings.NewReader(form))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	}

	resp, err := v.doWithRetry(ctx, newReq)
	if err != nil {
		v.log.ErrorContext(ctx, "google token exchange failed", slog.String("error", err.Error()))
		return "", ErrUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", ErrUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)
		v.log.ErrorContext(ctx, "google token exchange rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("error", errResp.Error))
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			return "", ErrInvalidCode
		}
		return "", ErrUnavailable
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		v.log.ErrorContext(ctx, "google token response malformed")
		return "", ErrUnavailable
	}
	return tok.AccessToken, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*userinfoResponse, error) {
	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoints.Userinfo, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		return req, nil
	}

	resp, err := v.doWithRetry(ctx, newReq)
	if err != nil {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.String("error", err.Error()))
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "google userinfo rejected", slog.Int("status", resp.StatusCode))
		return nil, ErrUnavailable
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.ID == "" || info.Email == "" {
		v.log.ErrorContext(ctx, "google userinfo malformed")
		return nil, ErrUnavailable
	}
	return &info, nil
}

// doWithRetry retries once after a network error or a 5xx answer.
func (v *Verifier) doWithRetry(ctx context.Context, newReq func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := newReq()
		if err != nil {
			return nil, err
		}

		resp, err := v.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode >= 500 && attempt == 0 {
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			continue
		}
		return resp, nil
	}
	return nil, lastErr
}
