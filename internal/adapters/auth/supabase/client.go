package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"med-reminders/internal/platform/httpclient"
	"med-reminders/internal/ports/auth"
)

var (
	ErrSupabaseNotConfigured = errors.New("supabase client not configured")
	ErrSupabaseUnauthorized  = errors.New("supabase unauthorized")
	ErrSupabaseUpstream      = errors.New("supabase upstream error")
)

// Config del cliente Supabase (GoTrue).
// BaseURL y AnonKey normalmente vienen de SUPABASE_URL / SUPABASE_ANON_KEY.
type Config struct {
	BaseURL string
	AnonKey string

	// Timeout HTTP; si <= 0 se usa el default de httpclient.
	Timeout time.Duration
}

type Client struct {
	anonKey string
	http    *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		anonKey: strings.TrimSpace(cfg.AnonKey),
		http:    hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.anonKey != ""
}

// GetUser valida el access token contra GoTrue y trae el usuario.
// El group_id viene en app_metadata (lo setea el backend al dar de alta
// al cuidador en su grupo).
func (c *Client) GetUser(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrSupabaseNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrSupabaseUnauthorized
	}

	var out struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		AppMetadata struct {
			GroupID string `json:"group_id"`
		} `json:"app_metadata"`
	}

	headers := map[string]string{
		"apikey":        c.anonKey,
		"Authorization": "Bearer " + token,
	}

	err := c.http.DoJSON(ctx, http.MethodGet, "/auth/v1/user", headers, nil, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return auth.Claims{}, ErrSupabaseUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrSupabaseUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrSupabaseUpstream, err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Claims{}, errors.New("supabase response missing user id")
	}

	return auth.Claims{
		UserID:  out.ID,
		Email:   strings.TrimSpace(out.Email),
		GroupID: strings.TrimSpace(out.AppMetadata.GroupID),
	}, nil
}
