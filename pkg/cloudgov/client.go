package cloudgov

import (
	"context"
	"time"
)

// Client is the entry point for talking to the cloud.gov API as a service
// account. Implementations hold a single session that moves from
// unauthenticated to authenticated at most once; a failed authentication
// leaves the session unauthenticated and the next operation tries again.
type Client interface {
	// Authenticate performs the OAuth2 client_credentials exchange now
	// instead of waiting for the first API operation. It is idempotent:
	// once a token is held, it returns immediately.
	Authenticate(ctx context.Context) error

	// Apps returns the client for application resources.
	Apps() AppsClient

	// Datasets returns the client for dataset release operations.
	Datasets() DatasetsClient

	// Status reports the session state without performing any network or
	// file I/O.
	Status() ConnectionStatus
}

// AppsClient lists applications visible to the service account.
type AppsClient interface {
	List(ctx context.Context) (*ResourceList, error)
}

// DatasetsClient marks datasets as released.
type DatasetsClient interface {
	// Release marks the dataset as released. A nil metadata map means
	// "use the local metadata file if one exists"; any non-nil map,
	// including an empty one, is sent verbatim.
	Release(ctx context.Context, datasetID string, metadata map[string]interface{}) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cloudgov.Client.
//
// # Credentials
//
// APIKey and APISecret are the cloud.gov service account client ID and
// secret. They are required before any API operation: clients are
// constructed without touching the network, and the first operation that
// needs the API fails fast with ErrMissingCredentials when either is empty.
//
// # Endpoint
//
// APIEndpoint is the base URL for the cloud.gov API. cgclient.New
// normalizes this value by trimming a trailing slash and adding "https://"
// if no scheme is present, and falls back to the production endpoint
// https://api.fr.cloud.gov when the field is empty. The OAuth2 token
// endpoint is always derived from it as APIEndpoint + "/oauth/token".
//
// # Retries
//
// Requests are sent exactly once unless RetryMax is set above zero. When it
// is, transient failures (>=500, 429, and connection errors) are retried
// with backoff between RetryWaitMin and RetryWaitMax.
type Config struct {
	// APIEndpoint: base URL for the cloud.gov API.
	APIEndpoint string

	// APIKey: OAuth2 client ID of the service account.
	APIKey string
	// APISecret: OAuth2 client secret of the service account.
	APISecret string

	// Org: organization name attached to release payloads.
	Org string
	// Space: space name attached to release payloads.
	Space string

	// MetadataPath: overrides the location of the optional metadata.json
	// file consulted when Release is called with nil metadata. If empty,
	// the file is looked up in the directory above the running executable.
	MetadataPath string

	// HTTPTimeout: timeout applied to each HTTP request, including the
	// token exchange. Defaults to 30 seconds when zero.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. Zero
	// keeps the single-attempt behavior.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and release
	// operations.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
