package plansfeatures

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"med-reminders/internal/platform/httpclient"
)

var (
	ErrPlansNotConfigured = errors.New("plans-features client not configured")
	ErrPlansUnauthorized  = errors.New("plans-features unauthorized")
	ErrPlansUpstream      = errors.New("plans-features upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: header donde viaja la API key. Vacío => "X-Api-Key".
	APIKeyHeader string
	Timeout      time.Duration
}

type Client struct {
	apiKey       string
	apiKeyHeader string
	http         *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		http:         hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

// FeaturesResponse es el contrato con plans-features.
// Ejemplo: {"features": {"history:extended": true}}
type FeaturesResponse struct {
	Features map[string]bool `json:"features"`
}

// GetFeatures trae las features habilitadas para un usuario.
func (c *Client) GetFeatures(ctx context.Context, userID string) (FeaturesResponse, error) {
	if !c.IsConfigured() {
		return FeaturesResponse{}, ErrPlansNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return FeaturesResponse{}, errors.New("userID required")
	}

	path := "/v1/features?user_id=" + url.QueryEscape(userID)
	headers := map[string]string{c.apiKeyHeader: c.apiKey}

	var out FeaturesResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, path, headers, nil, &out); err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return FeaturesResponse{}, ErrPlansUnauthorized
			}
			return FeaturesResponse{}, fmt.Errorf("%w: status=%d", ErrPlansUpstream, httpErr.StatusCode)
		}
		return FeaturesResponse{}, fmt.Errorf("%w: %v", ErrPlansUpstream, err)
	}

	if out.Features == nil {
		out.Features = map[string]bool{}
	}
	return out, nil
}
