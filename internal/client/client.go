package client

import (
	"context"
	"fmt"

	"github.com/datagov-metrics/cloudgov/internal/auth"
	"github.com/datagov-metrics/cloudgov/internal/constants"
	"github.com/datagov-metrics/cloudgov/internal/http"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// Client implements the cloudgov.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	config       *cloudgov.Config
	logger       cloudgov.Logger

	// Resource clients
	apps     cloudgov.AppsClient
	datasets cloudgov.DatasetsClient
}

// createTokenManager creates a token manager when credentials are configured.
func createTokenManager(config *cloudgov.Config) auth.TokenManager {
	if config.APIKey != "" || config.APISecret != "" {
		return auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
			TokenURL:     config.APIEndpoint + constants.TokenPath,
			ClientID:     config.APIKey,
			ClientSecret: config.APISecret,
			HTTPTimeout:  config.HTTPTimeout,
		})
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *cloudgov.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new cloud.gov API client. No request is made until the
// first operation needs one.
func New(config *cloudgov.Config) (*Client, error) {
	if config == nil {
		return nil, cloudgov.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, cloudgov.ErrAPIEndpointRequired
	}

	logger := config.Logger
	if logger == nil {
		logger = &noopLogger{}
	}

	// Create token manager based on available credentials
	tokenManager := createTokenManager(config)

	// Create HTTP client options
	httpOpts := createHTTPClientOptions(config)

	// Create HTTP client
	httpClient := http.NewClient(config.APIEndpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		config:       config,
		logger:       logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.apps = NewAppsClient(c.httpClient)
	c.datasets = NewDatasetsClient(c.httpClient, c.config, c.logger)
}

// Authenticate performs the token exchange now instead of on the first
// request. A failure leaves the session unauthenticated and the next
// call starts a fresh exchange.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.tokenManager == nil {
		return cloudgov.ErrMissingCredentials
	}

	_, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		c.logger.Error("authentication failed", map[string]interface{}{
			"endpoint": c.config.APIEndpoint,
			"error":    err.Error(),
		})

		return fmt.Errorf("authenticating with %s: %w", c.config.APIEndpoint, err)
	}

	c.logger.Info("authenticated", map[string]interface{}{
		"endpoint": c.config.APIEndpoint,
	})

	return nil
}

// Status reports the current session state from memory only.
func (c *Client) Status() cloudgov.ConnectionStatus {
	return cloudgov.ConnectionStatus{
		Endpoint:      c.config.APIEndpoint,
		Authenticated: c.tokenManager != nil && c.tokenManager.Authenticated(),
		Org:           c.config.Org,
		Space:         c.config.Space,
	}
}

// Apps returns the AppsClient.
func (c *Client) Apps() cloudgov.AppsClient {
	return c.apps
}

// Datasets returns the DatasetsClient.
func (c *Client) Datasets() cloudgov.DatasetsClient {
	return c.datasets
}

// noopLogger discards all log output.
type noopLogger struct{}

func (n *noopLogger) Debug(msg string, fields map[string]interface{}) {}
func (n *noopLogger) Info(msg string, fields map[string]interface{})  {}
func (n *noopLogger) Warn(msg string, fields map[string]interface{})  {}
func (n *noopLogger) Error(msg string, fields map[string]interface{}) {}
