// Package cgclient provides the main entry point for creating cloud.gov API clients
package cgclient

import (
	"os"
	"strings"

	"github.com/datagov-metrics/cloudgov/internal/client"
	"github.com/datagov-metrics/cloudgov/internal/constants"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// New creates a new cloud.gov API client. An empty endpoint falls back to
// the production API, https://api.fr.cloud.gov.
func New(config *cloudgov.Config) (cloudgov.Client, error) {
	if config == nil {
		return nil, cloudgov.ErrConfigRequired
	}

	// Normalization happens on a copy so the caller's config stays untouched.
	cfg := *config

	if cfg.APIEndpoint == "" {
		cfg.APIEndpoint = constants.DefaultAPIEndpoint
	}

	cfg.APIEndpoint = normalizeEndpoint(cfg.APIEndpoint)

	return client.New(&cfg)
}

// normalizeEndpoint trims trailing slashes and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithClientCredentials creates a new client using OAuth2 client credentials.
func NewWithClientCredentials(endpoint, apiKey, apiSecret string) (cloudgov.Client, error) {
	return New(&cloudgov.Config{
		APIEndpoint: endpoint,
		APIKey:      apiKey,
		APISecret:   apiSecret,
	})
}

// NewFromEnv creates a new client configured from the CLOUDGOV_* environment
// variables: CLOUDGOV_API_URL, CLOUDGOV_API_KEY, CLOUDGOV_API_SECRET,
// CLOUDGOV_ORG, and CLOUDGOV_SPACE.
func NewFromEnv() (cloudgov.Client, error) {
	return New(&cloudgov.Config{
		APIEndpoint: os.Getenv(constants.EnvAPIURL),
		APIKey:      os.Getenv(constants.EnvAPIKey),
		APISecret:   os.Getenv(constants.EnvAPISecret),
		Org:         os.Getenv(constants.EnvOrg),
		Space:       os.Getenv(constants.EnvSpace),
	})
}
