// Package oauth exchanges expired Gmail access tokens for fresh ones via
// the provider's token endpoint.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadflow/internal/config/configs"
	"leadflow/internal/core/domain"
)

// Refresher implements port.TokenRefresher against an OAuth2 token endpoint
// using the refresh_token grant. The refresh token itself is retained; only
// the access token and expiry change.
type Refresher struct {
	tokenURL     string
	clientID     string
	clientSecret string
	http         *http.Client
}

func NewRefresher(cfg configs.OAuth) *Refresher {
	return &Refresher{
		tokenURL:     cfg.TokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Refresher) Refresh(ctx context.Context, t domain.OAuthToken) (*domain.OAuthToken, error) {
	if t.RefreshToken == "" {
		return nil, errors.New("no refresh token stored")
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {t.RefreshToken},
		"client_id":     {r.clientID},
		"client_secret": {r.clientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.New("token endpoint returned " + resp.Status + ": " + string(body))
	}

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, errors.New("token endpoint returned no access token")
	}

	return &domain.OAuthToken{
		AccessToken:  out.AccessToken,
		RefreshToken: t.RefreshToken,
		Expiry:       time.Now().Add(time.Duration(out.ExpiresIn) * time.Second),
	}, nil
}
