package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/datagov-metrics/cloudgov/internal/constants"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// ClientCredentialsConfig configures the client_credentials token exchange.
type ClientCredentialsConfig struct {
	// TokenURL is the full OAuth2 token endpoint.
	TokenURL string

	// ClientID and ClientSecret identify the service account.
	ClientID     string
	ClientSecret string

	// HTTPTimeout bounds the token request. Defaults to 30 seconds.
	HTTPTimeout time.Duration
}

// ClientCredentialsTokenManager implements TokenManager using the OAuth2
// client_credentials grant. A token is requested on first use and held for
// the lifetime of the manager; a failed exchange holds nothing, so the next
// GetToken tries again.
type ClientCredentialsTokenManager struct {
	config     *ClientCredentialsConfig
	store      *TokenStore
	httpClient *http.Client
}

// NewClientCredentialsTokenManager creates a token manager for the given
// endpoint and credentials. No network traffic happens until GetToken.
func NewClientCredentialsTokenManager(config *ClientCredentialsConfig) *ClientCredentialsTokenManager {
	timeout := config.HTTPTimeout
	if timeout == 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	return &ClientCredentialsTokenManager{
		config: config,
		store:  NewTokenStore(),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetToken returns the held token, performing the token exchange first when
// none is held yet.
func (m *ClientCredentialsTokenManager) GetToken(ctx context.Context) (string, error) {
	if token, ok := m.store.Get(); ok {
		return token, nil
	}

	return m.requestToken(ctx)
}

// SetToken replaces the held access token.
func (m *ClientCredentialsTokenManager) SetToken(token string) {
	m.store.Set(token)
}

// Authenticated reports whether a token is currently held.
func (m *ClientCredentialsTokenManager) Authenticated() bool {
	return m.store.Has()
}

// requestToken performs the client_credentials exchange and stores the
// resulting token.
func (m *ClientCredentialsTokenManager) requestToken(ctx context.Context) (string, error) {
	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return "", cloudgov.ErrMissingCredentials
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}

	req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", &cloudgov.AuthError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &cloudgov.AuthError{Err: fmt.Errorf("reading token response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &cloudgov.AuthError{StatusCode: resp.StatusCode, Body: body}
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}

	err = json.Unmarshal(body, &tokenResp)
	if err != nil {
		return "", &cloudgov.AuthError{Err: fmt.Errorf("parsing token response: %w", err)}
	}

	if tokenResp.AccessToken == "" {
		return "", &cloudgov.AuthError{Err: cloudgov.ErrNoAccessToken}
	}

	m.store.Set(tokenResp.AccessToken)

	return tokenResp.AccessToken, nil
}
